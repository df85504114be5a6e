// Package secrets implements the cryptokey encryption engine.
//
// A configuration file is encrypted with a key derived from a password and
// stored in a small self-describing container. The package holds no state
// between calls: every salt, IV and derived key lives for one call only.
//
// # Key Derivation
//
// Keys are derived with PBKDF2-HMAC-SHA256, 100,000 iterations, 32 byte
// output. The iteration count and hash are part of the container format and
// do not vary.
//
// # Container Format
//
//	offset  length  field
//	0       7       "__SLE__"
//	7       1       format version (0x01)
//	8       16      salt
//	24      16      IV
//	40      16*k    AES-256-CBC ciphertext of the PKCS7 padded plaintext, k >= 1
//
// Decode rejects truncated input, a foreign header or misaligned ciphertext
// with a *FormatError before it derives any key. A wrong password almost
// always shows up as invalid padding and is reported as a *PaddingError,
// which reads the same as a corrupted file.
//
// # Randomness
//
// Salts, IVs and generated passwords come from crypto/rand unless a Codec is
// given another reader. A failing reader is a *RandomSourceError; there is
// no fallback source.
//
// # File Operations
//
// Plain configuration files use the .ac.esc extension and encrypted
// containers use .ac.es. ResolveFiles expands paths, directories and **
// globs; WriteFileAtomic replaces a file without exposing partial writes.
package secrets
