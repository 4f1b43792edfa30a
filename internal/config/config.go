// Package config manages application configuration from environment variables and .env files.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Configuration keys recognized in .env files and the environment.
const (
	KeyFallbackRoot = "MCP_DELETE_FALLBACK_ROOT"
	KeyLogLevel     = "MCP_DELETE_LOG_LEVEL"
)

// Config holds the application configuration.
type Config struct {
	// FallbackRoot is the base directory tried as the last resolution
	// candidate for relative paths. Empty disables the fallback candidate.
	FallbackRoot string
	LogLevel     string
}

// Load reads configuration from a .env file in the specified directory.
// If the .env file doesn't exist, it falls back to the global config
// (~/.mcp-delete/config), then to environment variables and defaults.
func Load(dir string) (*Config, error) {
	localEnvMap, err := godotenv.Read(GetConfigPath(dir))
	if err != nil {
		// If file doesn't exist, use empty map
		localEnvMap = make(map[string]string)
	}

	globalEnvMap, err := godotenv.Read(GetGlobalConfigPath())
	if err != nil {
		// If file doesn't exist, use empty map
		globalEnvMap = make(map[string]string)
	}

	// Precedence: local > global > env > default
	getValueWithFallback := func(key, defaultValue string) string {
		if value, ok := localEnvMap[key]; ok && value != "" {
			return value
		}
		if value, ok := globalEnvMap[key]; ok && value != "" {
			return value
		}
		if value := os.Getenv(key); value != "" {
			return value
		}
		return defaultValue
	}

	cfg := &Config{
		FallbackRoot: getValueWithFallback(KeyFallbackRoot, ""),
		LogLevel:     getValueWithFallback(KeyLogLevel, "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.FallbackRoot != "" && !filepath.IsAbs(c.FallbackRoot) {
		return fmt.Errorf("%s must be an absolute path, got '%s'", KeyFallbackRoot, c.FallbackRoot)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%s must be one of debug, info, warn, error, got '%s'", KeyLogLevel, c.LogLevel)
	}
	return nil
}

// Level returns the slog level corresponding to the configured log level.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// GetConfigPath returns the full path to the .env file in the given directory.
func GetConfigPath(dir string) string {
	return filepath.Join(dir, ".env")
}

// Set updates or creates a configuration value in the .env file.
func Set(dir, key, value string) error {
	envPath := GetConfigPath(dir)

	envMap, err := godotenv.Read(envPath)
	if err != nil {
		// If file doesn't exist, create new map
		envMap = make(map[string]string)
	}

	envMap[key] = value

	return godotenv.Write(envMap, envPath)
}

// Get retrieves a configuration value from the .env file.
func Get(dir, key string) (string, error) {
	envMap, err := godotenv.Read(GetConfigPath(dir))
	if err != nil {
		return "", fmt.Errorf("failed to read config: %w", err)
	}

	value, ok := envMap[key]
	if !ok {
		return "", fmt.Errorf("key '%s' not found in configuration", key)
	}

	return value, nil
}
