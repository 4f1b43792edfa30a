package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/qpd-v/mcp-delete/internal/fileops"
)

// DeleteFileTool returns the tool definition for delete_file.
func DeleteFileTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delete_file",
		Description: "Delete a file at the specified path. Relative paths are tried as given, then against the server working directory, then against the configured fallback root.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"path": {
					Type:        "string",
					Description: "Path to the file to delete",
				},
			},
			Required: []string{"path"},
		},
	}
}

// handleDeleteFile handles the delete_file tool call.
func (h *Handler) handleDeleteFile(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	_ = ctx

	path, err := pathArgument(args)
	if err != nil {
		h.Logger.Warn("delete_file rejected", "error", err)
		return nil, err
	}

	h.Logger.Info("delete_file", "path", path)

	if err := h.Resolver.Delete(path); err != nil {
		var pathErr *fileops.PathError
		if errors.As(err, &pathErr) {
			h.Logger.Error("delete_file failed", "path", path, "kind", pathErr.Kind.String(), "error", err)
		} else {
			h.Logger.Error("delete_file failed", "path", path, "error", err)
		}
		return nil, err
	}

	h.Logger.Info("delete_file complete", "path", path)
	return textResult(fmt.Sprintf("Successfully deleted file: %s", path)), nil
}

// pathArgument extracts and validates the path argument. The server does not
// trust clients to have validated against the schema: only a non-empty JSON
// string proceeds to resolution.
func pathArgument(args map[string]any) (string, error) {
	value, ok := args["path"]
	if !ok || value == nil {
		return "", errors.New("File path is required")
	}
	path, ok := value.(string)
	if !ok || path == "" {
		return "", errors.New("File path is required")
	}
	return path, nil
}
