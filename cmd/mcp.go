// mcp.go implements the "snapname mcp" command for MCP server operation.
//
// Unlike other commands that run and exit, mcp blocks indefinitely handling
// MCP requests over stdio.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dadap/snapd/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Exposes the name, tag and instance validators as MCP tools so agents can
check identifiers before using them in filesystem paths or cgroup names.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true
		return mcp.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
