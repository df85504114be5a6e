package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	kerrors "github.com/PolarWolf314/cryptokey/internal/errors"
	"github.com/PolarWolf314/cryptokey/internal/ui"
	"github.com/PolarWolf314/cryptokey/internal/utils"
	"github.com/PolarWolf314/cryptokey/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	getPassword      string
	getPasswordStdin bool
)

func init() {
	getCmd.Flags().StringVarP(&getPassword, "password", "p", "", "password used to decrypt")
	getCmd.Flags().BoolVar(&getPasswordStdin, "password-stdin", false, "read the password from stdin")
	getCmd.MarkFlagsMutuallyExclusive("password", "password-stdin")
}

// resetGetCommandState resets the get command's global state for testing.
func resetGetCommandState() {
	getPassword = ""
	getPasswordStdin = false
}

var getCmd = &cobra.Command{
	Use:   "get <file> <key>",
	Short: "Prints a single value from an encrypted TOML file",
	Long: `Decrypts a .ac.es container in memory and prints the value at a dotted
key. The plaintext is never written to disk.

Tables are printed as TOML and arrays as JSON. Array elements can be
addressed by index.

Examples:
  cryptokey get app.ac.es database.port
  cryptokey get app.ac.es servers.0.name -p "$PASSWORD"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting get command for %s", args[0])
		Logger.Debugf("Key: %s", args[1])

		password, err := resolvePassword(passwordRequest{
			flag:  getPassword,
			stdin: getPasswordStdin,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, firstMessage(formatPasswordError(err), ui.Failf("%v", err)))
			return reported(err)
		}
		defer utils.ZeroBytes(password)

		result, err := workflows.Get(context.Background(), workflows.GetOptions{
			Input:    args[0],
			Password: password,
			Key:      args[1],
		})
		if err != nil {
			Logger.Errorf("Get workflow failed: %v", err)
			fmt.Fprintln(os.Stderr, formatGetError(err))
			return reported(err)
		}

		fmt.Println(result.Formatted)
		return nil
	},
}

// formatGetError formats a get error for display to the user.
func formatGetError(err error) string {
	if msg := firstMessage(formatFileError(err), formatCryptoError(err)); msg != "" {
		return msg
	}

	switch {
	case errors.Is(err, kerrors.ErrKeyNotFound):
		return ui.Failf("%v", err)

	case errors.Is(err, kerrors.ErrInvalidTOML):
		return ui.Failf("Decrypted content is not valid TOML")

	default:
		return ui.Failf("Failed to read value") + "\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	}
}
