package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	kerrors "github.com/PolarWolf314/cryptokey/internal/errors"
	"github.com/PolarWolf314/cryptokey/internal/ui"
	"github.com/PolarWolf314/cryptokey/internal/utils"
	"github.com/briandowns/spinner"
)

// PasswordEnvVar is read when no password flag is given.
const PasswordEnvVar = "CRYPTOKEY_PASSWORD"

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
// Pass quiet=true to never animate, e.g. when stdout carries data.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it.
// This ensures consistent output formatting across all commands.
func startSpinner(message string, quiet bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	err := s.Color("cyan")
	if err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !quiet && !verbose && !debug {
		Logger.Debugf("Starting spinner in non-verbose mode")
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		// Restore log output first.
		if !quiet && !verbose && !debug {
			Logger.Debugf("Restoring log output")
			log.SetOutput(os.Stdout)
		}

		// Ensure final message ends with a newline.
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !quiet && !verbose && !debug {
			Logger.Debugf("Stopping spinner")
			s.Stop()
		}

		// Print final message to stdout (for tests to capture), or stderr
		// when stdout carries data.
		if finalMsg != "" {
			if quiet {
				fmt.Fprint(os.Stderr, finalMsg)
			} else {
				fmt.Print(finalMsg)
			}
		}
	}

	return s, cleanup
}

// passwordRequest describes where a command may take its password from.
type passwordRequest struct {
	flag    string
	stdin   bool
	confirm bool
}

// resolvePassword returns the password from, in order: the --password flag,
// stdin when --password-stdin is set, $CRYPTOKEY_PASSWORD, or an interactive
// prompt. An empty password is rejected.
func resolvePassword(req passwordRequest) ([]byte, error) {
	var password []byte

	switch {
	case req.flag != "":
		Logger.Debugf("Using password from --password flag")
		password = []byte(req.flag)

	case req.stdin:
		Logger.Debugf("Reading password from stdin")
		data, err := utils.ReadStdin()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", kerrors.ErrPasswordRequired, err)
		}
		password = bytes.TrimRight(data, "\r\n")

	case os.Getenv(PasswordEnvVar) != "":
		Logger.Debugf("Using password from $%s", PasswordEnvVar)
		password = []byte(os.Getenv(PasswordEnvVar))

	default:
		if !utils.IsTerminal() && !utils.IsTTYAvailable() {
			return nil, fmt.Errorf("%w: no terminal available for a prompt", kerrors.ErrPasswordRequired)
		}
		var err error
		if req.confirm {
			password, err = utils.ReadPassphraseWithConfirm("Password: ", "Confirm password: ")
		} else {
			password, err = utils.ReadPassphrase("Password: ")
		}
		if err != nil {
			return nil, err
		}
	}

	if len(password) == 0 {
		return nil, kerrors.ErrPasswordRequired
	}

	return password, nil
}

// formatPasswordError formats password resolution failures, or returns
// an empty string when err is not one.
func formatPasswordError(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrPasswordMismatch):
		return ui.Failf("Passwords do not match")

	case errors.Is(err, kerrors.ErrPasswordRequired):
		return ui.Failf("A password is required") + "\n" +
			ui.Hintf("Use %s, %s, or set %s",
				ui.Flag.Sprint("--password"), ui.Flag.Sprint("--password-stdin"), ui.Code.Sprint(PasswordEnvVar))

	default:
		return ""
	}
}

// formatFileError formats the file resolution failures shared by commands,
// or returns an empty string when err is not one.
func formatFileError(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrNoFilesFound):
		return ui.Failf("No matching files found")

	case errors.Is(err, kerrors.ErrFileNotFound),
		errors.Is(err, kerrors.ErrInvalidFileType),
		errors.Is(err, kerrors.ErrTooManyOutputs),
		errors.Is(err, kerrors.ErrOutputExists):
		return ui.Failf("%v", err)

	default:
		return ""
	}
}

// formatCryptoError formats codec failures. Decryption failures never say
// whether the password or the file was wrong.
func formatCryptoError(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrDecryptFailed):
		return ui.Failf("Decryption failed: wrong password or corrupted file")

	case errors.Is(err, kerrors.ErrInvalidContainer):
		return ui.Failf("%v", err)

	case errors.Is(err, kerrors.ErrRandomSource):
		return ui.Failf("Could not read from the system random source") + "\n" +
			ui.Error.Sprint("Error: ") + err.Error()

	default:
		return ""
	}
}

// firstMessage returns the first non-empty message.
func firstMessage(msgs ...string) string {
	for _, m := range msgs {
		if m != "" {
			return m
		}
	}
	return ""
}
