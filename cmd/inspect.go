package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/cryptokey/internal/ui"
	"github.com/PolarWolf314/cryptokey/internal/workflows"
	"github.com/spf13/cobra"
)

var inspectJSON bool

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "output in JSON format")
}

// resetInspectCommandState resets the inspect command's global state for testing.
func resetInspectCommandState() {
	inspectJSON = false
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Shows the header of an encrypted container without decrypting it",
	Long: `Parses a .ac.es container and prints its format version, salt, IV and
ciphertext size. No password is needed and nothing is decrypted.

Examples:
  cryptokey inspect app.ac.es
  cryptokey inspect app.ac.es --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting inspect command for %s", args[0])

		result, err := workflows.Inspect(context.Background(), args[0])
		if err != nil {
			Logger.Errorf("Inspect workflow failed: %v", err)
			fmt.Println(firstMessage(formatFileError(err), formatCryptoError(err), ui.Failf("%v", err)))
			return reported(err)
		}

		if inspectJSON {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal inspect result to JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("File:        %s\n", ui.Path.Sprint(result.Path))
		fmt.Printf("Size:        %d bytes\n", result.Size)
		fmt.Printf("Version:     %d\n", result.Version)
		fmt.Printf("Salt:        %s\n", result.Salt)
		fmt.Printf("IV:          %s\n", result.IV)
		fmt.Printf("Ciphertext:  %d bytes (%d blocks)\n", result.CiphertextLength, result.Blocks)
		fmt.Printf("Plaintext:   %d to %d bytes\n", result.MaxPlaintextLength-15, result.MaxPlaintextLength)
		return nil
	},
}
