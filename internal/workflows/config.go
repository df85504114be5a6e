package workflows

import (
	"context"
	"fmt"
	"os"

	"github.com/PolarWolf314/cryptokey/internal/configs"
	kerrors "github.com/PolarWolf314/cryptokey/internal/errors"
)

// ConfigResult describes the effective user configuration.
type ConfigResult struct {
	// Path is the location of the config file.
	Path string

	// Exists reports whether the file exists. When false, Config holds defaults.
	Exists bool

	Config *configs.UserConfig
}

// ShowConfig loads the effective user configuration.
//
// Returns ErrInvalidConfig if the config file is malformed.
func ShowConfig(ctx context.Context) (*ConfigResult, error) {
	cfg, err := loadUserConfig()
	if err != nil {
		return nil, err
	}

	path := configs.UserConfigPath()
	_, statErr := os.Stat(path)

	return &ConfigResult{
		Path:   path,
		Exists: statErr == nil,
		Config: cfg,
	}, nil
}

// InitConfigOptions configures the config init workflow.
type InitConfigOptions struct {
	// Force overwrites an existing config file with defaults.
	Force bool
}

// InitConfig writes the default configuration to the user config file.
//
// Returns ErrConfigExists if a config file exists and Force is not set.
func InitConfig(ctx context.Context, opts InitConfigOptions) (*ConfigResult, error) {
	path := configs.UserConfigPath()

	if _, err := os.Stat(path); err == nil && !opts.Force {
		return nil, fmt.Errorf("%w: %s (use --force to overwrite)", kerrors.ErrConfigExists, path)
	}

	cfg := configs.DefaultUserConfig()
	if err := configs.SaveUserConfig(cfg); err != nil {
		return nil, err
	}

	return &ConfigResult{
		Path:   path,
		Exists: true,
		Config: cfg,
	}, nil
}
