package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/qpd-v/mcp-delete/internal/config"
	"github.com/qpd-v/mcp-delete/internal/fileops"
	mcpserver "github.com/qpd-v/mcp-delete/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol (MCP) server that allows AI agents
to delete files via JSON-RPC over stdio.

This command is typically invoked by AI agents rather than directly by
users. Relative paths supplied by the agent are tried as given, then
against the working directory, then against the configured fallback root
(set MCP_DELETE_FALLBACK_ROOT or use 'mcp-delete config set').

By default the server speaks the protocol on stdin/stdout; with --http it
serves the streamable HTTP transport instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		absDir, err := filepath.Abs(dir)
		if err != nil {
			exitWithError(fmt.Errorf("invalid directory: %w", err))
		}
		if _, err := os.Stat(absDir); os.IsNotExist(err) {
			exitWithError(fmt.Errorf("directory does not exist: %s", absDir))
		}

		cfg, err := config.Load(absDir)
		if err != nil {
			exitWithError(fmt.Errorf("failed to load config: %w", err))
		}

		// Log to stderr (stdout is for MCP protocol)
		logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.Level(),
		}))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			logger.Info("shutting down...")
			cancel()
		}()

		resolver := fileops.NewResolver(absDir, cfg.FallbackRoot)
		server := mcpserver.NewServer(resolver, logger)

		httpMode, _ := cmd.Flags().GetBool("http")
		if httpMode {
			port, _ := cmd.Flags().GetInt("port")
			addr := fmt.Sprintf(":%d", port)
			httpServer := &http.Server{
				Addr:              addr,
				Handler:           server.HTTPHandler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			go func() {
				<-ctx.Done()
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				_ = httpServer.Shutdown(shutdownCtx)
			}()

			logger.Info("starting HTTP server", "addr", addr, "working_dir", absDir, "fallback_root", cfg.FallbackRoot)
			if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
				exitWithError(fmt.Errorf("HTTP server error: %w", err))
			}
			return
		}

		fmt.Fprintf(os.Stderr, "MCP file deletion server running on stdio\n")
		fmt.Fprintf(os.Stderr, "Working directory: %s\n", absDir)

		logger.Info("starting MCP server on stdio", "working_dir", absDir, "fallback_root", cfg.FallbackRoot)
		if err := server.Run(ctx); err != nil {
			exitWithError(fmt.Errorf("MCP server error: %w", err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Bool("http", false, "Serve the streamable HTTP transport instead of stdio")
	serveCmd.Flags().Int("port", 8080, "HTTP port to listen on (only used with --http)")
}
