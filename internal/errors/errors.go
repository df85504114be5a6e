package errors

import "errors"

// Cryptographic errors indicate failures during encryption or decryption operations.
var (
	// ErrInvalidContainer indicates the input is not a container produced by this format.
	ErrInvalidContainer = errors.New("not a valid encrypted container")

	// ErrDecryptFailed indicates decryption failed. The cause is deliberately
	// not distinguished between a wrong password and a corrupted file.
	ErrDecryptFailed = errors.New("wrong password or corrupted file")

	// ErrRandomSource indicates the secure random source could not be read.
	ErrRandomSource = errors.New("secure random source unavailable")
)

// Config errors indicate issues with TOML content or lookups into it.
var (
	// ErrInvalidTOML indicates the content is not valid TOML.
	ErrInvalidTOML = errors.New("invalid TOML syntax")

	// ErrKeyNotFound indicates a dotted key does not exist in a TOML document.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidConfig indicates the user configuration is malformed.
	ErrInvalidConfig = errors.New("configuration is invalid")

	// ErrConfigExists indicates a configuration file already exists.
	ErrConfigExists = errors.New("configuration already exists")
)

// File errors indicate issues with file discovery or access.
var (
	// ErrNoFilesFound indicates no files matched the provided patterns.
	ErrNoFilesFound = errors.New("no matching files found")

	// ErrFileNotFound indicates a specific file could not be located.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidFileType indicates the file does not have the expected extension.
	ErrInvalidFileType = errors.New("invalid file type")

	// ErrOutputExists indicates the output file already exists and overwriting was not requested.
	ErrOutputExists = errors.New("output file already exists")

	// ErrNoAuditLog indicates the audit log has not been written yet.
	ErrNoAuditLog = errors.New("no audit log found")

	// ErrTooManyOutputs indicates an explicit output path was given for several inputs.
	ErrTooManyOutputs = errors.New("an output path can only be used with a single input")
)

// Input errors indicate missing or invalid user input.
var (
	// ErrPasswordRequired indicates no password was provided or generated.
	ErrPasswordRequired = errors.New("a password is required")

	// ErrPasswordMismatch indicates the password confirmation did not match.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrInvalidDateFormat indicates a date filter is not in YYYY-MM-DD format.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidPasswordPolicy indicates the password generation policy is unusable.
	ErrInvalidPasswordPolicy = errors.New("invalid password policy")
)
