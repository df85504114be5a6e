package workflows

import (
	"context"
	"io"

	"github.com/PolarWolf314/cryptokey/internal/secrets"
)

// PasswordOptions configures password generation. Zero values fall back
// to the user config.
type PasswordOptions struct {
	// Length overrides password.length when greater than zero.
	Length int

	// NoSpecial drops special characters regardless of the user config.
	NoSpecial bool

	// Rand is the random source. Defaults to crypto/rand.
	Rand io.Reader
}

// PasswordResult contains a generated password and the policy used.
type PasswordResult struct {
	Password string
	Policy   secrets.PasswordPolicy
}

// GeneratePassword generates a random password.
//
// Returns ErrInvalidPasswordPolicy if the length is out of range.
// Returns ErrRandomSource if the random source fails.
func GeneratePassword(ctx context.Context, opts PasswordOptions) (*PasswordResult, error) {
	cfg, err := loadUserConfig()
	if err != nil {
		return nil, err
	}

	policy := secrets.PasswordPolicy{
		Length:         cfg.Password.Length,
		IncludeSpecial: cfg.Password.IncludeSpecial,
	}
	if opts.Length != 0 {
		policy.Length = opts.Length
	}
	if opts.NoSpecial {
		policy.IncludeSpecial = false
	}

	password, err := secrets.GeneratePassword(opts.Rand, policy)
	if err != nil {
		return nil, err
	}

	return &PasswordResult{Password: password, Policy: policy}, nil
}
