// ABOUTME: Root command: config loading, logger setup, client wiring.
// ABOUTME: All subcommands share one Config and one copyparty client.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/harper/copyparty-mcp/internal/config"
	"github.com/harper/copyparty-mcp/internal/copyparty"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	client *copyparty.Client
	logger *slog.Logger

	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "copyparty-mcp",
	Short: "MCP server for a copyparty file server",
	Long: `copyparty-mcp exposes a copyparty file server's HTTP API as tools
under the Model Context Protocol, so AI agents can list, upload,
download, move, share, and search files.`,
	Version:       fmt.Sprintf("%s (%s, %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}

		client, err = copyparty.New(cfg.URL, cfg.Password,
			copyparty.WithTimeout(cfg.Timeout),
			copyparty.WithLogger(logger.With("component", "copyparty")),
		)
		return err
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
