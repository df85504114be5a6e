package secrets

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	kerrors "github.com/PolarWolf314/cryptokey/internal/errors"
)

// Character sets used by GeneratePassword.
const (
	PasswordLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	PasswordDigits  = "0123456789"
	PasswordSpecial = "!@#$%^&*()-_=+[]{}|;:,.<>?/"

	DefaultPasswordLength = 16
	MaxPasswordLength     = 1024
)

// PasswordPolicy controls GeneratePassword.
type PasswordPolicy struct {
	Length         int
	IncludeSpecial bool
}

// DefaultPasswordPolicy returns a 16 character policy with special characters.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{Length: DefaultPasswordLength, IncludeSpecial: true}
}

// Alphabet returns the characters a password under p is drawn from.
func (p PasswordPolicy) Alphabet() string {
	chars := PasswordLetters + PasswordDigits
	if p.IncludeSpecial {
		chars += PasswordSpecial
	}
	return chars
}

// GeneratePassword draws policy.Length characters uniformly from the
// policy's alphabet using r, or crypto/rand.Reader when r is nil.
func GeneratePassword(r io.Reader, policy PasswordPolicy) (string, error) {
	if policy.Length < 1 || policy.Length > MaxPasswordLength {
		return "", fmt.Errorf("%w: length must be between 1 and %d, got %d",
			kerrors.ErrInvalidPasswordPolicy, MaxPasswordLength, policy.Length)
	}
	if r == nil {
		r = rand.Reader
	}

	alphabet := policy.Alphabet()
	max := big.NewInt(int64(len(alphabet)))

	out := make([]byte, policy.Length)
	for i := range out {
		n, err := rand.Int(r, max)
		if err != nil {
			return "", &RandomSourceError{Err: fmt.Errorf("generating password: %w", err)}
		}
		out[i] = alphabet[n.Int64()]
	}

	return string(out), nil
}
