package secrets

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// Key derivation parameters. They are part of the container format and
// must never change for version 1 containers.
const (
	KDFIterations = 100_000
	KeySize       = 32 // AES-256
	SaltSize      = 16
)

// DeriveKey derives a 32 byte AES-256 key from password and salt using
// PBKDF2-HMAC-SHA256. An empty password is accepted.
func DeriveKey(password, salt []byte) []byte {
	return pbkdf2.Key(password, salt, KDFIterations, KeySize, sha256.New)
}
