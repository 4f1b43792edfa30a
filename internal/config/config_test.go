package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/qpd-v/mcp-delete/internal/config"
)

func TestLoad_WithValidEnvFile(t *testing.T) {
	tmpDir := t.TempDir()
	root := t.TempDir()
	envContent := "MCP_DELETE_FALLBACK_ROOT=" + root + "\nMCP_DELETE_LOG_LEVEL=debug\n"
	if err := os.WriteFile(filepath.Join(tmpDir, ".env"), []byte(envContent), 0644); err != nil {
		t.Fatalf("Failed to create test .env file: %v", err)
	}

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.FallbackRoot != root {
		t.Errorf("Expected FallbackRoot to be '%s', got '%s'", root, cfg.FallbackRoot)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected LogLevel to be 'debug', got '%s'", cfg.LogLevel)
	}
}

func TestLoad_WithMissingEnvFile(t *testing.T) {
	// Clear env so defaults apply regardless of the host environment
	t.Setenv("MCP_DELETE_FALLBACK_ROOT", "")
	t.Setenv("MCP_DELETE_LOG_LEVEL", "")

	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() should not error without a .env file: %v", err)
	}

	if cfg.FallbackRoot != "" {
		t.Errorf("Expected fallback root to default to disabled, got '%s'", cfg.FallbackRoot)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected LogLevel to default to 'info', got '%s'", cfg.LogLevel)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	root := t.TempDir()
	t.Setenv("MCP_DELETE_FALLBACK_ROOT", root)
	t.Setenv("MCP_DELETE_LOG_LEVEL", "warn")

	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.FallbackRoot != root {
		t.Errorf("Expected FallbackRoot from environment '%s', got '%s'", root, cfg.FallbackRoot)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected LogLevel from environment 'warn', got '%s'", cfg.LogLevel)
	}
}

func TestLoad_RejectsRelativeFallbackRoot(t *testing.T) {
	tmpDir := t.TempDir()
	envContent := "MCP_DELETE_FALLBACK_ROOT=relative/path\n"
	if err := os.WriteFile(filepath.Join(tmpDir, ".env"), []byte(envContent), 0644); err != nil {
		t.Fatalf("Failed to create test .env file: %v", err)
	}

	if _, err := config.Load(tmpDir); err == nil {
		t.Error("Expected Load() to reject a relative fallback root")
	}
}

func TestLoad_RejectsUnknownLogLevel(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ".env"), []byte("MCP_DELETE_LOG_LEVEL=verbose\n"), 0644); err != nil {
		t.Fatalf("Failed to create test .env file: %v", err)
	}

	if _, err := config.Load(tmpDir); err == nil {
		t.Error("Expected Load() to reject an unknown log level")
	}
}

func TestSetAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	root := t.TempDir()

	if err := config.Set(tmpDir, config.KeyFallbackRoot, root); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	value, err := config.Get(tmpDir, config.KeyFallbackRoot)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if value != root {
		t.Errorf("Expected '%s', got '%s'", root, value)
	}
}

func TestGet_MissingKey(t *testing.T) {
	tmpDir := t.TempDir()
	if err := config.Set(tmpDir, config.KeyLogLevel, "info"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	if _, err := config.Get(tmpDir, "MCP_DELETE_MISSING"); err == nil {
		t.Error("Expected Get() to fail for a missing key")
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{"debug", "DEBUG"},
		{"info", "INFO"},
		{"warn", "WARN"},
		{"error", "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &config.Config{LogLevel: tt.level}
			if got := cfg.Level().String(); got != tt.want {
				t.Errorf("Level() for '%s': expected %s, got %s", tt.level, tt.want, got)
			}
		})
	}
}
