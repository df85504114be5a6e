// Package utils provides shared utility functions for the cryptokey application.
//
// This package contains general-purpose helpers used across multiple packages.
// Functions are organized into logical groups:
//
// # System Utilities
//
//   - GetUsername: returns the current system username
//
// # String Utilities
//
//   - FormatPaths: formats file paths for human-readable output
//   - ZeroBytes: wipes password buffers after use
//
// # I/O Utilities
//
//   - ReadStdin: reads all data from standard input
//
// # Terminal Utilities
//
// Functions for terminal detection and hidden password input:
//   - ReadPassphrase, ReadPassphraseWithConfirm, ReadPassphraseFromTTY
//   - IsTerminal, IsTTYAvailable
package utils
