package cmd

import (
	"context"
	"errors"
	"fmt"

	kerrors "github.com/PolarWolf314/cryptokey/internal/errors"
	"github.com/PolarWolf314/cryptokey/internal/ui"
	"github.com/PolarWolf314/cryptokey/internal/workflows"
	"github.com/spf13/cobra"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitForce = false
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file with default values",
	Long: `Writes the default configuration to $XDG_CONFIG_HOME/cryptokey/config.toml.

Examples:
  cryptokey config init
  cryptokey config init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")

		result, err := workflows.InitConfig(context.Background(), workflows.InitConfigOptions{Force: configInitForce})
		if err != nil {
			Logger.Errorf("InitConfig workflow failed: %v", err)
			if errors.Is(err, kerrors.ErrConfigExists) {
				fmt.Println(ui.Failf("%v", err))
			} else {
				fmt.Println(ui.Failf("Failed to write user config") + "\n" + ui.Error.Sprint("Error: ") + err.Error())
			}
			return reported(err)
		}

		fmt.Println(ui.Successf("Configuration written to %s", ui.Path.Sprint(result.Path)))
		fmt.Println(ui.Hintf("Run %s to view it", ui.Code.Sprint("cryptokey config show")))
		return nil
	},
}
