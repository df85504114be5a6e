// Package audit provides audit trail logging for cryptokey operations.
//
// Encrypt, decrypt and get operations are recorded in a per-user audit log
// so users can see which files were touched and when. Recording can be
// turned off with audit.enabled = false in the user config.
//
// # Log Format
//
// The audit log is stored as JSON Lines (one JSON object per line) at:
//
//	$XDG_DATA_HOME/cryptokey/audit.jsonl
//
// Each entry contains:
//   - A random UUID
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - OS username
//   - Operation name
//   - Operation-specific details (files, output path, looked-up key)
//
// Entries never contain passwords, derived keys or plaintext.
//
// # Usage
//
//	entry := audit.NewEntry("encrypt")
//	entry.Files = encryptedFiles
//	audit.Log(entry)
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails (permissions, disk full,
// etc.), the operation continues without error.
//
// # Reading Logs
//
// Use ReadEntries() to parse the audit log for display.
// Malformed entries are silently skipped to handle partial writes.
package audit
