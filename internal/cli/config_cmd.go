package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/carboncomply/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage carboncomply configuration",
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigValidateCmd())
	return cmd
}

// newConfigInitCmd creates the config init command for writing a default
// configuration file at ~/.carboncomply/config.yaml.
func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the configuration file with default values",
		Example: `  # Create the global configuration
  carboncomply config init

  # Overwrite an existing configuration
  carboncomply config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}

			if _, statErr := os.Stat(path); statErr == nil && !force {
				return fmt.Errorf("configuration already exists at %s (use --force to overwrite)", path)
			} else if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
				return fmt.Errorf("checking existing configuration: %w", statErr)
			}

			cfg := config.New()
			if err := cfg.Save(path); err != nil {
				return err
			}
			config.SetGlobalConfig(cfg)

			cmd.Printf("Configuration written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	return cmd
}

// newConfigValidateCmd creates the config validate command.
func newConfigValidateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file",
		Example: `  # Validate the global configuration
  carboncomply config validate

  # Validate a specific file
  carboncomply config validate --file ./config.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := file
			if path == "" {
				var err error
				path, err = config.DefaultConfigPath()
				if err != nil {
					return err
				}
			}

			if _, err := config.LoadFrom(path); err != nil {
				return err
			}
			cmd.Printf("Configuration at %s is valid\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to the configuration file to validate")
	return cmd
}
