// Package mcp implements the Model Context Protocol server, exposing
// the snap identifier validators to LLMs. This lets AI assistants
// check names, tags and instance names through a standardised protocol
// instead of shelling out to the CLI.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio. Uses stdio transport for
// compatibility with Claude Desktop and other MCP clients.
func Serve() error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := server.NewMCPServer(
		"snapname",
		Version,
		server.WithToolCapabilities(true),
	)

	registerTools(s, &handlers{})

	slog.Info("snapname MCP server ready", "version", Version, "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers. The validators are pure
// functions, so there is no state to carry; the struct exists to keep
// the registration shape uniform.
type handlers struct{}

// registerTools exposes the validators as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("snap_validate_name",
			mcp.WithDescription("Check a snap package name against the snap name grammar. Returns the exact rule violated when invalid."),
			mcp.WithString("name", mcp.Required(), mcp.Description("The snap name to validate")),
		),
		h.validateName,
	)

	s.AddTool(
		mcp.NewTool("snap_verify_tag",
			mcp.WithDescription("Verify that a security tag (snap.<name>.<app> or snap.<name>.hook.<hook>) is well formed and belongs to the expected snap."),
			mcp.WithString("tag", mcp.Required(), mcp.Description("The security tag to verify")),
			mcp.WithString("snap_name", mcp.Required(), mcp.Description("The snap name the tag must belong to")),
		),
		h.verifyTag,
	)

	s.AddTool(
		mcp.NewTool("snap_split_instance",
			mcp.WithDescription("Split a snap instance name (<name>_<key>) into its snap name and instance key, optionally validating both parts."),
			mcp.WithString("instance_name", mcp.Required(), mcp.Description("The instance name to split")),
			mcp.WithBoolean("validate", mcp.Description("Also validate the name and key against the grammar")),
		),
		h.splitInstance,
	)

	s.AddTool(
		mcp.NewTool("snap_suggest_name",
			mcp.WithDescription("Derive the closest valid snap name from arbitrary input, with a character diff of the changes."),
			mcp.WithString("input", mcp.Required(), mcp.Description("The raw identifier to sanitise")),
		),
		h.suggestName,
	)

	s.AddTool(
		mcp.NewTool("snap_guide",
			mcp.WithDescription("Read the snapname documentation pages (names, tags, instances)."),
			mcp.WithString("topic", mcp.Description("Guide page name; empty for the overview")),
		),
		h.getGuide,
	)
}
