// Package tools defines the MCP tools exposed by the file deletion server.
package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/qpd-v/mcp-delete/internal/fileops"
)

// Handler provides the dependencies needed by tool handlers.
type Handler struct {
	Resolver *fileops.Resolver
	Logger   *slog.Logger
}

// NewHandler creates a new Handler with the given dependencies.
func NewHandler(resolver *fileops.Resolver, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Resolver: resolver,
		Logger:   logger,
	}
}

// Catalog returns the descriptors for every tool this server exposes, in
// registration order.
func Catalog() []*mcp.Tool {
	return []*mcp.Tool{
		DeleteFileTool(),
	}
}

// HandleToolCall routes a tool invocation by name. Unrecognized names fail
// without touching the filesystem.
func (h *Handler) HandleToolCall(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	switch name {
	case "delete_file":
		return h.handleDeleteFile(ctx, args)
	default:
		h.Logger.Warn("unknown tool requested", "tool", name)
		return nil, fmt.Errorf("Unknown tool: %s", name)
	}
}

// ToolHandler adapts HandleToolCall for registration with the MCP runtime.
func (h *Handler) ToolHandler(name string) func(ctx context.Context, req *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, any, error) {
		result, err := h.HandleToolCall(ctx, name, args)
		return result, nil, err
	}
}

// textResult wraps a plain text message in a successful tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}
