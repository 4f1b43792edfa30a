// Package mcp wires the file deletion tools into the Model Context Protocol runtime.
package mcp

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/qpd-v/mcp-delete/internal/fileops"
	"github.com/qpd-v/mcp-delete/internal/mcp/tools"
)

const (
	ServerName    = "mcp-delete"
	ServerVersion = "0.1.0"
)

// Server wraps the MCP server with the file deletion tool set.
type Server struct {
	mcpServer *mcp.Server
	handler   *tools.Handler
	logger    *slog.Logger
}

// NewServer creates a new mcp-delete server.
func NewServer(resolver *fileops.Resolver, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		handler:   tools.NewHandler(resolver, logger),
		logger:    logger,
	}

	s.registerTools()
	return s
}

// registerTools adds every catalog tool to the server.
func (s *Server) registerTools() {
	for _, tool := range tools.Catalog() {
		mcp.AddTool(s.mcpServer, tool, s.handler.ToolHandler(tool.Name))
	}
}

// HTTPHandler returns an http.Handler for the MCP server.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(
		func(r *http.Request) *mcp.Server {
			return s.mcpServer
		},
		&mcp.StreamableHTTPOptions{
			Logger: s.logger,
		},
	)
}

// Run starts the MCP server over stdio (for CLI usage)
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
