package mcp

import (
	"io"
	"log/slog"
	"testing"

	"github.com/qpd-v/mcp-delete/internal/fileops"
)

func TestNewServer(t *testing.T) {
	resolver := fileops.NewResolver(t.TempDir(), "")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s := NewServer(resolver, logger)
	if s == nil {
		t.Fatal("expected a server")
	}
	if s.mcpServer == nil {
		t.Error("expected the underlying MCP server to be constructed")
	}
	if s.handler == nil {
		t.Error("expected the tool handler to be constructed")
	}
}

func TestNewServer_NilLoggerUsesDefault(t *testing.T) {
	s := NewServer(fileops.NewResolver(t.TempDir(), ""), nil)
	if s.logger == nil {
		t.Error("expected a default logger when none is provided")
	}
}

func TestHTTPHandler(t *testing.T) {
	resolver := fileops.NewResolver(t.TempDir(), "")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s := NewServer(resolver, logger)
	if s.HTTPHandler() == nil {
		t.Error("expected an HTTP handler")
	}
}
