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

var (
	genpassLength    int
	genpassNoSpecial bool
)

func init() {
	genpassCmd.Flags().IntVarP(&genpassLength, "length", "l", 0, "password length (defaults to password.length in the user config)")
	genpassCmd.Flags().BoolVar(&genpassNoSpecial, "no-special", false, "use only letters and digits")
}

// resetGenpassCommandState resets the genpass command's global state for testing.
func resetGenpassCommandState() {
	genpassLength = 0
	genpassNoSpecial = false
}

var genpassCmd = &cobra.Command{
	Use:   "genpass",
	Short: "Generates a strong random password",
	Long: `Generates a random password from letters, digits and, unless
--no-special is given, special characters. Defaults come from the
[password] section of the user config.

Examples:
  cryptokey genpass
  cryptokey genpass -l 32 --no-special`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting genpass command")

		if cmd.Flags().Changed("length") && genpassLength == 0 {
			err := fmt.Errorf("%w: length must be at least 1", kerrors.ErrInvalidPasswordPolicy)
			fmt.Println(ui.Failf("%v", err))
			return reported(err)
		}

		result, err := workflows.GeneratePassword(context.Background(), workflows.PasswordOptions{
			Length:    genpassLength,
			NoSpecial: genpassNoSpecial,
		})
		if err != nil {
			Logger.Errorf("GeneratePassword workflow failed: %v", err)
			switch {
			case errors.Is(err, kerrors.ErrInvalidPasswordPolicy), errors.Is(err, kerrors.ErrInvalidConfig):
				fmt.Println(ui.Failf("%v", err))
			default:
				fmt.Println(firstMessage(formatCryptoError(err), ui.Failf("%v", err)))
			}
			return reported(err)
		}

		Logger.Debugf("Generated password with length=%d, special=%t", result.Policy.Length, result.Policy.IncludeSpecial)
		fmt.Println(result.Password)
		return nil
	},
}
