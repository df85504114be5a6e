package workflows

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"

	kerrors "github.com/PolarWolf314/cryptokey/internal/errors"
	"github.com/PolarWolf314/cryptokey/internal/secrets"
)

// InspectResult describes the header of an encrypted container.
type InspectResult struct {
	Path             string `json:"path"`
	Size             int    `json:"size"`
	Version          int    `json:"version"`
	Salt             string `json:"salt"`
	IV               string `json:"iv"`
	CiphertextLength int    `json:"ciphertext_length"`
	Blocks           int    `json:"blocks"`

	// MaxPlaintextLength is the largest plaintext the ciphertext can hold.
	// The real length is between MaxPlaintextLength-15 and MaxPlaintextLength.
	MaxPlaintextLength int `json:"max_plaintext_length"`
}

// Inspect parses the container at path without a password.
//
// Returns ErrFileNotFound if path does not exist.
// Returns ErrInvalidContainer if the file is not a well-formed container.
func Inspect(ctx context.Context, path string) (*InspectResult, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	c, err := secrets.ParseContainer(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &InspectResult{
		Path:               path,
		Size:               len(data),
		Version:            int(c.Version()),
		Salt:               hex.EncodeToString(c.Salt),
		IV:                 hex.EncodeToString(c.IV),
		CiphertextLength:   len(c.Ciphertext),
		Blocks:             c.Blocks(),
		MaxPlaintextLength: len(c.Ciphertext) - 1,
	}, nil
}
