package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/qpd-v/mcp-delete/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration settings",
	Long:  `View and modify configuration settings for mcp-delete.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the .env file (local or global).

Use --global flag to set in the global configuration (~/.mcp-delete/config).
Otherwise, sets in the local .env file.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]
		value := args[1]
		global, _ := cmd.Flags().GetBool("global")

		var err error
		if global {
			err = config.SetGlobalConfig(key, value)
			if err == nil {
				fmt.Printf("✓ Set %s (global)\n", key)
			}
		} else {
			dir, _ := cmd.Flags().GetString("dir")
			absDir, pathErr := filepath.Abs(dir)
			if pathErr != nil {
				exitWithError(fmt.Errorf("invalid directory: %w", pathErr))
			}

			err = config.Set(absDir, key, value)
			if err == nil {
				fmt.Printf("✓ Set %s (local)\n", key)
			}
		}

		if err != nil {
			exitWithError(err)
		}
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Get a configuration value",
	Long:  `Retrieve a configuration value from the .env file.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		absDir, err := filepath.Abs(dir)
		if err != nil {
			exitWithError(fmt.Errorf("invalid directory: %w", err))
		}

		key := args[0]
		value, err := config.Get(absDir, key)
		if err != nil {
			exitWithError(err)
		}

		fmt.Printf("%s=%s\n", key, value)
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Long:  `Display all configuration values from the current .env file.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		absDir, err := filepath.Abs(dir)
		if err != nil {
			exitWithError(fmt.Errorf("invalid directory: %w", err))
		}

		cfg, err := config.Load(absDir)
		if err != nil {
			exitWithError(err)
		}

		fmt.Println("Configuration:")
		fallback := cfg.FallbackRoot
		if fallback == "" {
			fallback = "(disabled)"
		}
		fmt.Printf("  %s: %s\n", config.KeyFallbackRoot, fallback)
		fmt.Printf("  %s: %s\n", config.KeyLogLevel, cfg.LogLevel)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)

	// Add --global flag to config set
	configSetCmd.Flags().Bool("global", false, "Set in global config instead of local")
}
