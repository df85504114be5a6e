package configs

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	kerrors "github.com/PolarWolf314/cryptokey/internal/errors"
)

type UserConfig struct {
	Password PasswordConfig `toml:"password" json:"password"`
	Output   OutputConfig   `toml:"output" json:"output"`
	Audit    AuditConfig    `toml:"audit" json:"audit"`
}

// PasswordConfig holds the defaults used when generating passwords.
type PasswordConfig struct {
	Length         int  `toml:"length" json:"length"`
	IncludeSpecial bool `toml:"include_special" json:"include_special"`
}

// OutputConfig controls how output files are written.
type OutputConfig struct {
	// Force overwrites existing output files without --force.
	Force bool `toml:"force" json:"force"`
}

// AuditConfig controls the local audit log.
type AuditConfig struct {
	Enabled bool `toml:"enabled" json:"enabled"`
}

const (
	defaultPasswordLength = 16
	maxPasswordLength     = 1024
)

// DefaultUserConfig returns the configuration used when no config file exists.
func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		Password: PasswordConfig{
			Length:         defaultPasswordLength,
			IncludeSpecial: true,
		},
		Output: OutputConfig{Force: false},
		Audit:  AuditConfig{Enabled: true},
	}
}

// LoadUserConfig loads the user configuration from the config file.
// Missing keys keep their defaults; unknown keys are rejected.
func LoadUserConfig() (*UserConfig, error) {
	configPath := UserConfigPath()
	config := DefaultUserConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	md, err := toml.DecodeFile(configPath, config)
	if err != nil {
		return nil, fmt.Errorf("failed to load user config: %w: %v", kerrors.ErrInvalidConfig, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%w: unknown keys in %s: %s", kerrors.ErrInvalidConfig, configPath, strings.Join(keys, ", "))
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveUserConfig saves the user configuration to the config file.
func SaveUserConfig(config *UserConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}

	if err := SaveTOML(UserConfigPath(), config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}

	return nil
}

// Validate checks the configuration values.
func (c *UserConfig) Validate() error {
	if c.Password.Length < 1 || c.Password.Length > maxPasswordLength {
		return fmt.Errorf("%w: password.length must be between 1 and %d, got %d",
			kerrors.ErrInvalidConfig, maxPasswordLength, c.Password.Length)
	}
	return nil
}
