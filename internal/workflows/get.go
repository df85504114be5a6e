package workflows

import (
	"context"
	"fmt"
	"os"

	"github.com/PolarWolf314/cryptokey/internal/audit"
	"github.com/PolarWolf314/cryptokey/internal/configs"
	kerrors "github.com/PolarWolf314/cryptokey/internal/errors"
	"github.com/PolarWolf314/cryptokey/internal/secrets"
	"github.com/PolarWolf314/cryptokey/internal/utils"
)

// GetOptions configures the get workflow.
type GetOptions struct {
	// Input is the .ac.es file to read.
	Input string

	// Password is the decryption password. It must not be empty.
	Password []byte

	// Key is a dotted path into the decrypted TOML, e.g. "database.port".
	Key string
}

// GetResult contains the value found at a key.
type GetResult struct {
	Key   string
	Value any

	// Formatted is Value rendered for display.
	Formatted string
}

// Get decrypts a container in memory and returns the value at a dotted key.
// The plaintext is never written to disk.
//
// Returns ErrPasswordRequired if the password is empty.
// Returns ErrInvalidFileType if Input is not a .ac.es file.
// Returns ErrDecryptFailed if the password is wrong or the file is corrupted.
// Returns ErrInvalidTOML if the decrypted content is not TOML.
// Returns ErrKeyNotFound if the key does not exist.
func Get(ctx context.Context, opts GetOptions) (*GetResult, error) {
	if len(opts.Password) == 0 {
		return nil, kerrors.ErrPasswordRequired
	}
	if opts.Key == "" {
		return nil, fmt.Errorf("%w: empty key", kerrors.ErrKeyNotFound)
	}
	if !secrets.IsEncryptedFile(opts.Input) {
		return nil, fmt.Errorf("%w: %s must end in %s", kerrors.ErrInvalidFileType, opts.Input, secrets.EncryptedExt)
	}

	cfg, err := loadUserConfig()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(opts.Input)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrFileNotFound, opts.Input)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", opts.Input, err)
	}

	plaintext, err := secrets.Decode(data, opts.Password)
	if err != nil {
		return nil, decodeError(opts.Input, err)
	}
	defer utils.ZeroBytes(plaintext)

	doc, err := configs.ParseTOML(plaintext)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.Input, err)
	}

	value, err := configs.Lookup(doc, opts.Key)
	if err != nil {
		return nil, err
	}

	formatted, err := configs.FormatValue(value)
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", opts.Key, err)
	}

	entry := audit.NewEntry("get")
	entry.Files = []string{opts.Input}
	entry.Key = opts.Key
	recordAudit(cfg, entry)

	return &GetResult{
		Key:       opts.Key,
		Value:     value,
		Formatted: formatted,
	}, nil
}
