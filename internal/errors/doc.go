// Package errors provides typed error values for the cryptokey application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Crypto errors: container and decryption failures (ErrInvalidContainer, ErrDecryptFailed)
//   - Config errors: TOML and lookup failures (ErrInvalidTOML, ErrKeyNotFound)
//   - File errors: File system and naming issues (ErrNoFilesFound, ErrInvalidFileType)
//   - Input errors: missing or invalid user input (ErrPasswordRequired)
//
// # Usage
//
// The secrets package returns typed errors that unwrap to these sentinels:
//
//	plaintext, err := secrets.Decode(container, password)
//	if errors.Is(err, kerrors.ErrDecryptFailed) {
//	    // wrong password or corrupted file
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("decrypting %s: %w", path, err)
package errors
