package cmd

import (
	"context"
	"errors"
	"fmt"

	kerrors "github.com/PolarWolf314/cryptokey/internal/errors"
	"github.com/PolarWolf314/cryptokey/internal/ui"
	"github.com/PolarWolf314/cryptokey/internal/utils"
	"github.com/PolarWolf314/cryptokey/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	encryptInputs        []string
	encryptOutput        string
	encryptPassword      string
	encryptPasswordStdin bool
	encryptGenPass       bool
	encryptForce         bool
	encryptDryRun        bool
)

func init() {
	encryptCmd.Flags().StringSliceVarP(&encryptInputs, "input", "x", nil, "input .ac.esc file, directory or glob (repeatable)")
	encryptCmd.Flags().StringVarP(&encryptOutput, "output", "o", "", "output .ac.es file (single input only)")
	encryptCmd.Flags().StringVarP(&encryptPassword, "password", "p", "", "password used to encrypt")
	encryptCmd.Flags().BoolVar(&encryptPasswordStdin, "password-stdin", false, "read the password from stdin")
	encryptCmd.Flags().BoolVar(&encryptGenPass, "gen-pass", false, "generate a strong random password and print it once")
	encryptCmd.Flags().BoolVar(&encryptForce, "force", false, "overwrite existing output files")
	encryptCmd.Flags().BoolVar(&encryptDryRun, "dry-run", false, "preview which files would be encrypted without making changes")
	encryptCmd.MarkFlagsMutuallyExclusive("password", "password-stdin", "gen-pass")
}

// resetEncryptCommandState resets the encrypt command's global state for testing.
func resetEncryptCommandState() {
	encryptInputs = nil
	encryptOutput = ""
	encryptPassword = ""
	encryptPasswordStdin = false
	encryptGenPass = false
	encryptForce = false
	encryptDryRun = false
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt [patterns...]",
	Short: "Encrypts .ac.esc TOML files into .ac.es containers",
	Long: `Encrypts TOML configuration files with a password.

Each input must end in .ac.esc and contain valid TOML. The encrypted
container is written next to it with a .ac.es extension, or to --output
when a single input is given. With no inputs, every .ac.esc file under
the current directory is encrypted.

Examples:
  cryptokey encrypt -x app.ac.esc -o app.ac.es
  cryptokey encrypt "configs/**/*.ac.esc" --gen-pass
  cryptokey encrypt --dry-run`,
	RunE: runEncrypt,
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting encrypt command")
	inputs := append(append([]string{}, args...), encryptInputs...)
	Logger.Debugf("Inputs: %v, output: %q, force=%t, dry-run=%t", inputs, encryptOutput, encryptForce, encryptDryRun)

	password, generated, err := encryptionPassword()
	if err != nil {
		fmt.Println(firstMessage(formatPasswordError(err), ui.Failf("%v", err)))
		return reported(err)
	}
	defer utils.ZeroBytes(password)

	spinner, cleanup := startSpinner("Encrypting configuration files...", false)
	defer cleanup()

	result, err := workflows.Encrypt(context.Background(), workflows.EncryptOptions{
		Inputs:            inputs,
		Output:            encryptOutput,
		Password:          password,
		PasswordGenerated: generated,
		Force:             encryptForce,
		DryRun:            encryptDryRun,
	})
	if err != nil {
		Logger.Errorf("Encrypt workflow failed: %v", err)
		spinner.FinalMSG = formatEncryptError(err)
		return reported(err)
	}

	if result.DryRun {
		spinner.FinalMSG = formatEncryptDryRun(result)
		return nil
	}

	Logger.Infof("Encrypt command completed successfully. Created %d files", len(result.EncryptedFiles))
	msg := ui.Successf("Configuration files encrypted successfully!") + "\n" +
		"The following files were created: " + utils.FormatPaths(result.EncryptedFiles)
	// A generated password is only shown once it protects something.
	if generated {
		msg += ui.Successf("Generated password:") + "\n" + string(password) + "\n"
	}
	spinner.FinalMSG = msg + ui.Hintf("Keep the password safe, it cannot be recovered")
	return nil
}

// encryptionPassword resolves the password, generating one when --gen-pass is set.
// A generated password is not printed here.
func encryptionPassword() ([]byte, bool, error) {
	if encryptGenPass {
		Logger.Debugf("Generating password")
		result, err := workflows.GeneratePassword(context.Background(), workflows.PasswordOptions{})
		if err != nil {
			return nil, false, err
		}
		return []byte(result.Password), true, nil
	}

	password, err := resolvePassword(passwordRequest{
		flag:    encryptPassword,
		stdin:   encryptPasswordStdin,
		confirm: true,
	})
	return password, false, err
}

func formatEncryptDryRun(result *workflows.EncryptResult) string {
	msg := ui.Info.Sprint("Dry run:") + " the following files would be encrypted:" + "\n"
	for i, src := range result.SourceFiles {
		msg += fmt.Sprintf("    %s -> %s\n", ui.Path.Sprint(src), ui.Path.Sprint(result.EncryptedFiles[i]))
	}
	for _, existing := range result.ExistingFiles {
		msg += ui.Warnf("%s already exists and would need %s", ui.Path.Sprint(existing), ui.Flag.Sprint("--force")) + "\n"
	}
	msg += ui.Hintf("No changes made. Run without %s to encrypt", ui.Flag.Sprint("--dry-run"))
	return msg
}

// formatEncryptError formats an encrypt error for display to the user.
func formatEncryptError(err error) string {
	if msg := firstMessage(formatPasswordError(err), formatFileError(err), formatCryptoError(err)); msg != "" {
		return msg
	}

	switch {
	case errors.Is(err, kerrors.ErrInvalidTOML):
		return ui.Failf("Input is not valid TOML") + "\n" +
			ui.Error.Sprint("Error: ") + err.Error()

	case errors.Is(err, kerrors.ErrInvalidConfig):
		return ui.Failf("%v", err) + "\n" +
			ui.Hintf("Check %s", ui.Code.Sprint("cryptokey config show"))

	default:
		return ui.Failf("Failed to encrypt files") + "\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	}
}
