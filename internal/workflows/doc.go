// Package workflows provides high-level orchestration for cryptokey commands.
//
// Workflows coordinate multiple operations across packages (configs, secrets,
// audit) to implement complete user-facing features. Each workflow handles
// a single command's business logic, independent of CLI concerns like flag
// parsing, password prompts, spinners, and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Resolves the password (flag, environment, generator or prompt)
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Loading the user configuration
//   - Resolving input files and output paths
//   - Performing the core operation
//   - Recording audit trail entries
//
// # Available Workflows
//
//   - Encrypt: Encrypts .ac.esc files into .ac.es containers
//   - Decrypt: Decrypts .ac.es containers back to .ac.esc files or memory
//   - Inspect: Reports container header details without a password
//   - Get: Reads a single TOML value from a container without touching disk
//   - GeneratePassword: Generates a random password from the user's policy
//   - Log: Reads and filters the audit log
//   - ShowConfig, InitConfig: Display or create the user configuration
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching. Use errors.Is() to check for specific error conditions:
//
//	result, err := workflows.Decrypt(ctx, opts)
//	if errors.Is(err, kerrors.ErrDecryptFailed) {
//	    // Wrong password or corrupted file; never say which.
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// Multi-file workflows stop starting new files once the context is done.
package workflows
