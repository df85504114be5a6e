package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	kerrors "github.com/PolarWolf314/cryptokey/internal/errors"
	"github.com/PolarWolf314/cryptokey/internal/ui"
	"github.com/PolarWolf314/cryptokey/internal/workflows"
	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Long: `Displays the effective cryptokey configuration.

Values missing from the config file show their defaults.

Examples:
  cryptokey config show
  cryptokey config show --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")
		Logger.Debugf("Flags: json=%t", configShowJSON)

		result, err := workflows.ShowConfig(context.Background())
		if err != nil {
			Logger.Errorf("ShowConfig workflow failed: %v", err)
			if errors.Is(err, kerrors.ErrInvalidConfig) {
				fmt.Println(ui.Failf("%v", err))
			} else {
				fmt.Println(ui.Failf("Failed to load user config") + "\n" + ui.Error.Sprint("Error: ") + err.Error())
			}
			return reported(err)
		}

		if configShowJSON {
			output, err := json.MarshalIndent(result.Config, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to marshal config to JSON: %v", err)
			}
			fmt.Println(string(output))
			return nil
		}

		source := ui.Path.Sprint(result.Path)
		if !result.Exists {
			source += " " + ui.Muted.Sprint("not found, showing defaults")
		}
		fmt.Println(ui.Info.Sprint("User Configuration") + " " + source + ":")
		fmt.Println()
		fmt.Printf("  %-26s %d\n", "password.length:", result.Config.Password.Length)
		fmt.Printf("  %-26s %t\n", "password.include_special:", result.Config.Password.IncludeSpecial)
		fmt.Printf("  %-26s %t\n", "output.force:", result.Config.Output.Force)
		fmt.Printf("  %-26s %t\n", "audit.enabled:", result.Config.Audit.Enabled)

		if !result.Exists {
			fmt.Println()
			fmt.Println(ui.Hintf("Run %s to create it", ui.Code.Sprint("cryptokey config init")))
		}
		return nil
	},
}
