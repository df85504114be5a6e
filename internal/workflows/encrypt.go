package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/PolarWolf314/cryptokey/internal/audit"
	"github.com/PolarWolf314/cryptokey/internal/configs"
	kerrors "github.com/PolarWolf314/cryptokey/internal/errors"
	"github.com/PolarWolf314/cryptokey/internal/secrets"
	"github.com/PolarWolf314/cryptokey/internal/utils"
	"golang.org/x/sync/errgroup"
)

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// Inputs are files, directories or glob patterns naming .ac.esc files.
	// If empty, every .ac.esc file under BaseDir is encrypted.
	Inputs []string

	// BaseDir is the directory relative inputs are resolved against.
	// Defaults to the working directory.
	BaseDir string

	// Output overrides the destination path. Only valid with a single input.
	Output string

	// Password is the encryption password. It must not be empty.
	Password []byte

	// PasswordGenerated records in the audit log that the password was generated.
	PasswordGenerated bool

	// Force overwrites existing output files.
	Force bool

	// DryRun previews which files would be encrypted without making changes.
	DryRun bool
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	// SourceFiles lists the .ac.esc files that were encrypted.
	SourceFiles []string

	// EncryptedFiles lists the .ac.es files that were written, in the same order.
	EncryptedFiles []string

	// DryRun indicates whether this was a dry-run (no files modified).
	DryRun bool

	// ExistingFiles lists outputs that already exist. Only set on dry-run.
	ExistingFiles []string
}

// Encrypt encrypts plaintext config files with a password.
//
// Every input is read, checked to be valid TOML and encrypted in memory,
// concurrently, before any output is written. An invalid input therefore
// leaves no outputs behind. Outputs are written atomically with mode 0600.
//
// Returns ErrPasswordRequired if the password is empty.
// Returns ErrNoFilesFound if no .ac.esc files match the inputs.
// Returns ErrTooManyOutputs if Output is set with more than one input.
// Returns ErrOutputExists if an output exists and Force is not set.
// Returns ErrInvalidTOML if an input is not valid TOML.
func Encrypt(ctx context.Context, opts EncryptOptions) (*EncryptResult, error) {
	if len(opts.Password) == 0 {
		return nil, kerrors.ErrPasswordRequired
	}

	cfg, err := loadUserConfig()
	if err != nil {
		return nil, err
	}

	baseDir, err := resolveBaseDir(opts.BaseDir)
	if err != nil {
		return nil, err
	}

	sources, err := resolveInputs(opts.Inputs, baseDir, true)
	if err != nil {
		return nil, err
	}

	outputs, err := encryptOutputs(sources, opts.Output, baseDir)
	if err != nil {
		return nil, err
	}

	result := &EncryptResult{
		SourceFiles:    sources,
		EncryptedFiles: outputs,
		DryRun:         opts.DryRun,
	}

	if opts.DryRun {
		result.ExistingFiles = findExistingFiles(outputs)
		return result, nil
	}

	if err := checkOutputs(outputs, opts.Force || cfg.Output.Force); err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	containers := make([][]byte, len(sources))
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := encryptFile(src, opts.Password)
			if err != nil {
				return err
			}
			containers[i] = data
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, dst := range outputs {
		if err := secrets.WriteFileAtomic(dst, containers[i], outputPerm); err != nil {
			return nil, fmt.Errorf("writing %s: %w", dst, err)
		}
	}

	entry := audit.NewEntry("encrypt")
	entry.Files = outputs
	entry.Generated = opts.PasswordGenerated
	if opts.Output != "" {
		entry.OutputPath = outputs[0]
	}
	recordAudit(cfg, entry)

	return result, nil
}

func encryptOutputs(sources []string, output, baseDir string) ([]string, error) {
	if output != "" {
		if len(sources) > 1 {
			return nil, fmt.Errorf("%w: %d inputs matched", kerrors.ErrTooManyOutputs, len(sources))
		}
		if !secrets.IsEncryptedFile(output) {
			return nil, fmt.Errorf("%w: output %s must end in %s", kerrors.ErrInvalidFileType, output, secrets.EncryptedExt)
		}
		if !filepath.IsAbs(output) {
			output = filepath.Join(baseDir, output)
		}
		return []string{output}, nil
	}

	outputs := make([]string, len(sources))
	for i, src := range sources {
		outputs[i] = secrets.EncryptedPathFor(src)
	}
	return outputs, nil
}

// encryptFile reads and validates src and returns its container bytes.
func encryptFile(src string, password []byte) ([]byte, error) {
	plaintext, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", src, err)
	}
	defer utils.ZeroBytes(plaintext)

	if err := configs.ValidateTOML(plaintext); err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}

	data, err := secrets.Encode(plaintext, password)
	if err != nil {
		return nil, fmt.Errorf("encrypting %s: %w", src, err)
	}

	return data, nil
}
