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
	decryptInputs        []string
	decryptOutput        string
	decryptPassword      string
	decryptPasswordStdin bool
	decryptStdout        bool
	decryptForce         bool
	decryptDryRun        bool
)

func init() {
	decryptCmd.Flags().StringSliceVarP(&decryptInputs, "input", "x", nil, "input .ac.es file, directory or glob (repeatable)")
	decryptCmd.Flags().StringVarP(&decryptOutput, "output", "o", "", "output file (single input only)")
	decryptCmd.Flags().StringVarP(&decryptPassword, "password", "p", "", "password used to decrypt")
	decryptCmd.Flags().BoolVar(&decryptPasswordStdin, "password-stdin", false, "read the password from stdin")
	decryptCmd.Flags().BoolVar(&decryptStdout, "stdout", false, "print the plaintext instead of writing files")
	decryptCmd.Flags().BoolVar(&decryptForce, "force", false, "overwrite existing output files")
	decryptCmd.Flags().BoolVar(&decryptDryRun, "dry-run", false, "preview which files would be decrypted without making changes")
	decryptCmd.MarkFlagsMutuallyExclusive("password", "password-stdin")
	decryptCmd.MarkFlagsMutuallyExclusive("stdout", "output")
}

// resetDecryptCommandState resets the decrypt command's global state for testing.
func resetDecryptCommandState() {
	decryptInputs = nil
	decryptOutput = ""
	decryptPassword = ""
	decryptPasswordStdin = false
	decryptStdout = false
	decryptForce = false
	decryptDryRun = false
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt [patterns...]",
	Short: "Decrypts .ac.es containers back into .ac.esc TOML files",
	Long: `Decrypts containers created by 'cryptokey encrypt'.

The plaintext is written next to each input with a .ac.esc extension, to
--output when a single input is given, or to stdout with --stdout. With no
inputs, every .ac.es file under the current directory is decrypted.

A failure never says whether the password or the file was wrong.

Examples:
  cryptokey decrypt -x app.ac.es
  cryptokey decrypt app.ac.es --stdout
  CRYPTOKEY_PASSWORD=... cryptokey decrypt "configs/**/*.ac.es" --force`,
	RunE: runDecrypt,
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting decrypt command")
	inputs := append(append([]string{}, args...), decryptInputs...)
	Logger.Debugf("Inputs: %v, output: %q, stdout=%t, force=%t, dry-run=%t",
		inputs, decryptOutput, decryptStdout, decryptForce, decryptDryRun)

	password, err := resolvePassword(passwordRequest{
		flag:  decryptPassword,
		stdin: decryptPasswordStdin,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, firstMessage(formatPasswordError(err), ui.Failf("%v", err)))
		return reported(err)
	}
	defer utils.ZeroBytes(password)

	spinner, cleanup := startSpinner("Decrypting configuration files...", decryptStdout)
	defer cleanup()

	result, err := workflows.Decrypt(context.Background(), workflows.DecryptOptions{
		Inputs:   inputs,
		Output:   decryptOutput,
		Password: password,
		Force:    decryptForce,
		DryRun:   decryptDryRun,
		Stdout:   decryptStdout,
	})
	if err != nil {
		Logger.Errorf("Decrypt workflow failed: %v", err)
		spinner.FinalMSG = formatDecryptError(err)
		return reported(err)
	}

	if result.DryRun {
		spinner.FinalMSG = formatDecryptDryRun(result)
		return nil
	}

	warnings := ""
	for _, w := range result.Warnings() {
		warnings += ui.Warnf("%s", w) + "\n"
	}

	if decryptStdout {
		for i := range result.Files {
			_, werr := os.Stdout.Write(result.Files[i].Plaintext)
			utils.ZeroBytes(result.Files[i].Plaintext)
			if werr != nil {
				return fmt.Errorf("writing plaintext to stdout: %w", werr)
			}
		}
		spinner.FinalMSG = warnings
		return nil
	}

	Logger.Infof("Decrypt command completed successfully. Created %d files", len(result.DecryptedFiles()))
	spinner.FinalMSG = warnings + ui.Successf("Configuration files decrypted successfully!") + "\n" +
		"The following files were created: " + utils.FormatPaths(result.DecryptedFiles()) +
		ui.Hintf("Never commit decrypted %s files to version control", ui.Path.Sprint(".ac.esc"))
	return nil
}

func formatDecryptDryRun(result *workflows.DecryptResult) string {
	msg := ui.Info.Sprint("Dry run:") + " the following files would be decrypted:" + "\n"
	for _, f := range result.Files {
		target := f.Output
		if target == "" {
			target = "stdout"
		}
		msg += fmt.Sprintf("    %s -> %s\n", ui.Path.Sprint(f.Source), ui.Path.Sprint(target))
	}
	for _, existing := range result.ExistingFiles {
		msg += ui.Warnf("%s already exists and would need %s", ui.Path.Sprint(existing), ui.Flag.Sprint("--force")) + "\n"
	}
	msg += ui.Hintf("No changes made. Run without %s to decrypt", ui.Flag.Sprint("--dry-run"))
	return msg
}

// formatDecryptError formats a decrypt error for display to the user.
func formatDecryptError(err error) string {
	if msg := firstMessage(formatPasswordError(err), formatFileError(err), formatCryptoError(err)); msg != "" {
		return msg
	}

	switch {
	case errors.Is(err, kerrors.ErrInvalidConfig):
		return ui.Failf("%v", err) + "\n" +
			ui.Hintf("Check %s", ui.Code.Sprint("cryptokey config show"))

	default:
		return ui.Failf("Failed to decrypt files") + "\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	}
}
