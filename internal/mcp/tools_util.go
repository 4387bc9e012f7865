// tools_util.go centralises parameter extraction and result encoding
// for the tool handlers. Optional parameters are extracted permissively
// (default on error) because an LLM omitting an optional parameter
// should not produce a cryptic type error.

package mcp

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// getString extracts a string parameter, returning def when missing.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getBool extracts a boolean parameter from the raw argument map; JSON
// booleans decode as Go bool, so a type assertion suffices.
func getBool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// jsonResult serialises v as indented JSON and wraps it in an MCP text
// result. Marshalling failures become MCP error results rather than Go
// errors so all failures reach the client the same way.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
