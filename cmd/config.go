package cmd

import (
	"github.com/spf13/cobra"
)

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage cryptokey configuration",
	Long: `Provides commands for managing the user configuration.

The configuration lives at $XDG_CONFIG_HOME/cryptokey/config.toml and sets
defaults for password generation, overwriting outputs and the audit log.

Examples:
  # Write a config file with the default values
  cryptokey config init

  # Show the effective configuration
  cryptokey config show --json`,
}

func init() {
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configInitCmd)
}

// GetConfigCmd returns the ConfigCmd for testing.
func GetConfigCmd() *cobra.Command {
	return ConfigCmd
}

// resetConfigState resets all config command global variables to their default values for testing.
func resetConfigState() {
	resetConfigShowState()
	resetConfigInitState()
}
