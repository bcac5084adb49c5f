// ABOUTME: MCP command to start the MCP server on stdio.
// ABOUTME: This is how AI agents talk to the adapter.

package main

import (
	"github.com/harper/copyparty-mcp/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long:  `Start the Model Context Protocol server on stdio for AI agent integration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(client, cfg, logger.With("component", "mcp"), version)
		if err != nil {
			return err
		}
		logger.Info("serving", "url", cfg.URL, "auth", client.HasAuth())
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
