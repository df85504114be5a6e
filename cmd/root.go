package cmd

import (
	"errors"
	"fmt"
	"os"

	logger "github.com/PolarWolf314/cryptokey/internal/logging"
	"github.com/PolarWolf314/cryptokey/internal/ui"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "cryptokey",
		Short: "Password-based encryption for TOML configuration files",
		Long: `cryptokey encrypts TOML configuration files (.ac.esc) into password
protected containers (.ac.es) and decrypts them again.

Containers use PBKDF2-SHA256 for key derivation and AES-256-CBC with
PKCS#7 padding. The password is read from --password, --password-stdin,
the CRYPTOKEY_PASSWORD environment variable, or an interactive prompt.

Examples:
  cryptokey encrypt -x app.ac.esc -o app.ac.es
  cryptokey decrypt app.ac.es --stdout
  cryptokey get app.ac.es database.port
  cryptokey genpass -l 32`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			banner := figure.NewColorFigure("cryptokey", "standard", "cyan", true)
			banner.Print()
			fmt.Println()
			fmt.Println(ui.Hintf("Run %s to see available commands", ui.Code.Sprint("cryptokey --help")))
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(inspectCmd)
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(genpassCmd)
	RootCmd.AddCommand(logCmd)
	RootCmd.AddCommand(ConfigCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		var re *reportedError
		if !errors.As(err, &re) {
			fmt.Fprintln(os.Stderr, ui.Failf("%v", err))
		}
		os.Exit(1)
	}
}

// reportedError marks an error whose message was already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetEncryptCommandState()
	resetDecryptCommandState()
	resetInspectCommandState()
	resetGetCommandState()
	resetGenpassCommandState()
	resetLogCommandState()
	resetConfigState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears the Changed bit on every flag so one test's
// flags do not leak into the next.
func resetCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetCobraFlagState(sub)
	}
}

// SetVerbose sets the verbose flag for testing.
func SetVerbose(v bool) {
	verbose = v
}

// SetDebug sets the debug flag for testing.
func SetDebug(d bool) {
	debug = d
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
