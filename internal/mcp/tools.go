// tools.go implements the MCP tool handlers. Each handler runs the
// corresponding validator, audit-logs the decision and reports the
// outcome as structured JSON so the client can branch on "valid"
// without parsing prose.

package mcp

import (
	"context"
	"fmt"

	"github.com/dadap/snapd/guide"
	"github.com/dadap/snapd/internal/log"
	"github.com/dadap/snapd/internal/naming"
	"github.com/dadap/snapd/internal/sanitize"
	"github.com/mark3labs/mcp-go/mcp"
)

// errTagMismatch is logged when a tag fails verification; the verifier
// itself reports only a boolean.
var errTagMismatch = fmt.Errorf("security tag is malformed or does not match the snap name")

// validateName handles snap_validate_name tool calls.
func (h *handlers) validateName(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx required by mcp-go
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	verr := naming.ValidateSnapName(name)
	log.Event("mcp:snap_validate_name", "validate-name").Subject(name).Write(verr)

	result := map[string]any{"valid": verr == nil}
	if verr != nil {
		result["reason"] = verr.Error()
	}
	return jsonResult(result)
}

// verifyTag handles snap_verify_tag tool calls.
func (h *handlers) verifyTag(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx required by mcp-go
	tag, err := req.RequireString("tag")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	snapName, err := req.RequireString("snap_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ok := naming.VerifySecurityTag(tag, snapName)
	var verr error
	if !ok {
		verr = errTagMismatch
	}
	log.Event("mcp:snap_verify_tag", "verify-tag").Subject(tag).Expected(snapName).Write(verr)

	return jsonResult(map[string]any{"valid": ok})
}

// splitInstance handles snap_split_instance tool calls.
func (h *handlers) splitInstance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx required by mcp-go
	instanceName, err := req.RequireString("instance_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	validate := getBool(req, "validate", false)

	snap, key := naming.SplitInstanceName(instanceName)

	var verr error
	if validate {
		verr = naming.ValidateInstanceName(instanceName)
	}
	log.Event("mcp:snap_split_instance", "split-instance").Subject(instanceName).Write(verr)

	result := map[string]any{
		"name":         snap,
		"instance_key": key,
	}
	if validate {
		result["valid"] = verr == nil
		if verr != nil {
			result["reason"] = verr.Error()
		}
	}
	return jsonResult(result)
}

// suggestName handles snap_suggest_name tool calls.
func (h *handlers) suggestName(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx required by mcp-go
	input, err := req.RequireString("input")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	suggested, serr := sanitize.Name(input)
	log.Event("mcp:snap_suggest_name", "suggest").Subject(input).Write(serr)

	if serr != nil {
		return jsonResult(map[string]any{
			"error": "no valid snap name can be derived from the input",
		})
	}
	r := sanitize.Explain(input, suggested)
	return jsonResult(map[string]any{
		"suggested": suggested,
		"diff":      r.Diff,
		"unchanged": input == suggested,
	})
}

// getGuide handles snap_guide tool calls.
func (h *handlers) getGuide(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx required by mcp-go
	topic := getString(req, "topic", "")

	content, err := guide.Get(topic)
	if err != nil {
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return jsonResult(map[string]any{
			"error":            err.Error(),
			"available_topics": topics,
		})
	}
	return mcp.NewToolResultText(content), nil
}
