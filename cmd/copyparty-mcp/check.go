// ABOUTME: Check command: probe the configured copyparty server.
// ABOUTME: Prints connection state for quick setup debugging.

package main

import (
	"fmt"

	"github.com/harper/copyparty-mcp/internal/ui"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the connection to the copyparty server",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("server:      %s\n", cfg.URL)
		fmt.Printf("environment: %s\n", cfg.Environment)
		auth := "anonymous"
		if client.HasAuth() {
			auth = "password configured"
		}
		fmt.Printf("auth:        %s\n", auth)

		header, err := client.Ping(cmd.Context())
		if err != nil {
			fmt.Println(ui.Error(fmt.Sprintf("unreachable: %v", err)))
			return err
		}
		msg := "connected"
		if header != "" {
			msg = "connected (" + header + ")"
		}
		fmt.Println(ui.Success(msg))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
