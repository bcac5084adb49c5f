// ABOUTME: Ls command: list a remote directory from the terminal.
// ABOUTME: Human-formatted counterpart of the list_files tool.

package main

import (
	"fmt"

	"github.com/harper/copyparty-mcp/internal/ui"
	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "List a directory on the copyparty server",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/"
		if len(args) == 1 {
			path = args[0]
		}
		dotfiles, _ := cmd.Flags().GetBool("all")

		listing, err := client.List(cmd.Context(), path, dotfiles)
		if err != nil {
			return fmt.Errorf("list %s: %w", path, err)
		}

		fmt.Print(ui.FormatListingHeader(listing.Path, len(listing.Dirs), len(listing.Files)))
		for _, d := range listing.Dirs {
			fmt.Print(ui.FormatEntry(d))
		}
		for _, f := range listing.Files {
			fmt.Print(ui.FormatEntry(f))
		}
		return nil
	},
}

var sharesCmd = &cobra.Command{
	Use:   "shares",
	Short: "List active shares",
	RunE: func(cmd *cobra.Command, args []string) error {
		shares, err := client.ListShares(cmd.Context())
		if err != nil {
			return err
		}
		if len(shares) == 0 {
			fmt.Println("No active shares.")
			return nil
		}
		for _, s := range shares {
			fmt.Print(ui.FormatShare(s))
		}
		return nil
	},
}

func init() {
	lsCmd.Flags().BoolP("all", "a", false, "include dotfiles")
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(sharesCmd)
}
