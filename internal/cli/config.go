package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"tsum/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tsum configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Display the configuration after merging defaults, the config file, env vars and flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("error marshaling config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long:  `Create a default configuration file at ~/.config/tsum/config.yaml (or the --config path).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			var err error
			path, err = config.DefaultUserConfigPath()
			if err != nil {
				return fmt.Errorf("error finding home directory: %w", err)
			}
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s\nUse 'tsum config show' to view it, or delete it first to recreate", path)
		}
		if err := config.Save(path, config.Default()); err != nil {
			return fmt.Errorf("error writing config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Created default configuration: %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
