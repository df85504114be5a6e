package workflows

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/cryptokey/internal/audit"
	"github.com/PolarWolf314/cryptokey/internal/configs"
	kerrors "github.com/PolarWolf314/cryptokey/internal/errors"
	"github.com/PolarWolf314/cryptokey/internal/secrets"
)

// outputPerm is the mode of every file written by a workflow.
const outputPerm os.FileMode = 0600

func loadUserConfig() (*configs.UserConfig, error) {
	cfg, err := configs.LoadUserConfig()
	if err != nil {
		return nil, fmt.Errorf("loading user config: %w", err)
	}
	return cfg, nil
}

// resolveBaseDir returns dir, or the working directory when dir is empty.
func resolveBaseDir(dir string) (string, error) {
	if dir != "" {
		return filepath.Abs(dir)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return wd, nil
}

// resolveInputs expands patterns relative to baseDir. No patterns means
// every matching file under baseDir.
func resolveInputs(patterns []string, baseDir string, forEncryption bool) ([]string, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	files, err := secrets.ResolveFiles(patterns, baseDir, forEncryption)
	if err != nil {
		return nil, fmt.Errorf("resolving input files: %w", err)
	}
	return files, nil
}

// checkOutputs fails with ErrOutputExists for the first output that is
// already present, unless force is set.
func checkOutputs(outputs []string, force bool) error {
	if force {
		return nil
	}
	for _, out := range outputs {
		if _, err := os.Stat(out); err == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", kerrors.ErrOutputExists, out)
		}
	}
	return nil
}

// decodeError converts a codec failure on path into a workflow error.
// Padding failures never reveal whether the password or the file was at fault.
func decodeError(path string, err error) error {
	switch {
	case secrets.IsPaddingError(err):
		return fmt.Errorf("%s: %w", path, kerrors.ErrDecryptFailed)
	case secrets.IsFormatError(err):
		return fmt.Errorf("%s: %w", path, err)
	default:
		return fmt.Errorf("decrypting %s: %w", path, err)
	}
}

func recordAudit(cfg *configs.UserConfig, entry audit.Entry) {
	if cfg == nil || !cfg.Audit.Enabled {
		return
	}
	audit.Log(entry)
}

// findExistingFiles returns which of the given paths already exist on disk.
func findExistingFiles(paths []string) []string {
	var existing []string
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, path)
		}
	}
	return existing
}
