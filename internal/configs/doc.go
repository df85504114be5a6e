// Package configs manages cryptokey's user configuration and TOML handling.
//
// # User Configuration
//
// The user config lives at $XDG_CONFIG_HOME/cryptokey/config.toml (the
// platform config directory from os.UserConfigDir) and stores:
//   - Password generation defaults (length, special characters)
//   - Whether existing output files are overwritten
//   - Whether operations are recorded in the audit log
//
// A missing file means defaults. Unknown keys are rejected so typos do not
// silently fall back to defaults.
//
// # Settings
//
// UserCryptokeySettings is initialized at startup with the config and data
// directories. Tests point these at temporary directories.
//
// # TOML Documents
//
// The files cryptokey encrypts are TOML. ParseTOML validates them before
// encryption and after decryption, and Lookup gives dotted-key access into a
// parsed document:
//
//	doc, err := configs.ParseTOML(plaintext)
//	port, err := configs.Lookup(doc, "server.port")
package configs
