// Package cmd contains all CLI command definitions.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mcp-delete",
	Short: "MCP server exposing file deletion to AI agents",
	Long: `mcp-delete is a Model Context Protocol (MCP) server that exposes a
single delete_file tool over JSON-RPC on stdio.

AI agents and orchestration tools that cannot touch the local filesystem
call delete_file with a path; the server resolves it against the working
directory and an optional fallback root, removes the file, and reports
the outcome.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("dir", "d", ".", "Working directory for path resolution and local configuration")
}

// exitWithError prints an error message and exits with code 1.
func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
