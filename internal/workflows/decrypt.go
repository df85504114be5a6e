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

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// Inputs are files, directories or glob patterns naming .ac.es files.
	// If empty, every .ac.es file under BaseDir is decrypted.
	Inputs []string

	// BaseDir is the directory relative inputs are resolved against.
	// Defaults to the working directory.
	BaseDir string

	// Output overrides the destination path. Only valid with a single input.
	Output string

	// Password is the decryption password. It must not be empty.
	Password []byte

	// Force overwrites existing output files.
	Force bool

	// DryRun previews which files would be decrypted without making changes.
	DryRun bool

	// Stdout returns the plaintext in the result instead of writing files.
	Stdout bool
}

// DecryptedFile describes one decrypted input.
type DecryptedFile struct {
	// Source is the .ac.es file that was decrypted.
	Source string

	// Output is the file written. Empty when decrypting to stdout.
	Output string

	// Plaintext is only populated when decrypting to stdout.
	Plaintext []byte

	// Warning is set when the plaintext is not valid TOML.
	Warning string
}

// DecryptResult contains the outcome of a decrypt operation.
type DecryptResult struct {
	// Files holds one entry per input, in input order.
	Files []DecryptedFile

	// DryRun indicates whether this was a dry-run (no files modified).
	DryRun bool

	// ExistingFiles lists outputs that already exist. Only set on dry-run.
	ExistingFiles []string
}

// SourceFiles returns the decrypted inputs.
func (r *DecryptResult) SourceFiles() []string {
	out := make([]string, len(r.Files))
	for i, f := range r.Files {
		out[i] = f.Source
	}
	return out
}

// DecryptedFiles returns the written outputs.
func (r *DecryptResult) DecryptedFiles() []string {
	var out []string
	for _, f := range r.Files {
		if f.Output != "" {
			out = append(out, f.Output)
		}
	}
	return out
}

// Warnings returns the warnings raised while decrypting.
func (r *DecryptResult) Warnings() []string {
	var out []string
	for _, f := range r.Files {
		if f.Warning != "" {
			out = append(out, f.Warning)
		}
	}
	return out
}

// Decrypt decrypts .ac.es containers back to plaintext config files.
//
// Every input is decrypted concurrently in memory before any output is
// written, so a wrong password or corrupt input leaves no files behind.
// Outputs are written atomically with mode 0600. Plaintext that is not
// valid TOML is still written, with a warning in the result.
//
// Returns ErrPasswordRequired if the password is empty.
// Returns ErrNoFilesFound if no .ac.es files match the inputs.
// Returns ErrInvalidContainer if an input is not an encrypted container.
// Returns ErrDecryptFailed if the password is wrong or the file is corrupted.
// Returns ErrOutputExists if an output exists and Force is not set.
func Decrypt(ctx context.Context, opts DecryptOptions) (*DecryptResult, error) {
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

	sources, err := resolveInputs(opts.Inputs, baseDir, false)
	if err != nil {
		return nil, err
	}

	result := &DecryptResult{
		Files:  make([]DecryptedFile, len(sources)),
		DryRun: opts.DryRun,
	}

	outputs, err := decryptOutputs(sources, opts.Output, baseDir)
	if err != nil {
		return nil, err
	}

	for i, src := range sources {
		result.Files[i].Source = src
		if !opts.Stdout {
			result.Files[i].Output = outputs[i]
		}
	}

	if opts.DryRun {
		if !opts.Stdout {
			result.ExistingFiles = findExistingFiles(outputs)
		}
		return result, nil
	}

	if !opts.Stdout {
		if err := checkOutputs(outputs, opts.Force || cfg.Output.Force); err != nil {
			return nil, err
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i := range result.Files {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return decryptFile(&result.Files[i], opts.Password)
		})
	}

	if err := g.Wait(); err != nil {
		result.zeroPlaintexts()
		return nil, err
	}

	if err := writeDecrypted(result.Files); err != nil {
		result.zeroPlaintexts()
		return nil, err
	}

	entry := audit.NewEntry("decrypt")
	entry.Files = sources
	if opts.Output != "" && !opts.Stdout {
		entry.OutputPath = outputs[0]
	}
	recordAudit(cfg, entry)

	return result, nil
}

func decryptOutputs(sources []string, output, baseDir string) ([]string, error) {
	if output != "" {
		if len(sources) > 1 {
			return nil, fmt.Errorf("%w: %d inputs matched", kerrors.ErrTooManyOutputs, len(sources))
		}
		if !filepath.IsAbs(output) {
			output = filepath.Join(baseDir, output)
		}
		return []string{output}, nil
	}

	outputs := make([]string, len(sources))
	for i, src := range sources {
		outputs[i] = secrets.PlainPathFor(src)
	}
	return outputs, nil
}

// decryptFile decrypts f.Source into f.Plaintext. Nothing is written here
// so that a bad input fails the run before any output exists.
func decryptFile(f *DecryptedFile, password []byte) error {
	data, err := os.ReadFile(f.Source)
	if err != nil {
		return fmt.Errorf("reading %s: %w", f.Source, err)
	}

	plaintext, err := secrets.Decode(data, password)
	if err != nil {
		return decodeError(f.Source, err)
	}

	if err := configs.ValidateTOML(plaintext); err != nil {
		f.Warning = fmt.Sprintf("%s: decrypted content is not valid TOML", f.Source)
	}

	f.Plaintext = plaintext
	return nil
}

// writeDecrypted writes every file that has an output path and drops its
// plaintext from the result. Files without an output keep their plaintext.
func writeDecrypted(files []DecryptedFile) error {
	for i := range files {
		f := &files[i]
		if f.Output == "" {
			continue
		}
		if err := secrets.WriteFileAtomic(f.Output, f.Plaintext, outputPerm); err != nil {
			return fmt.Errorf("writing %s: %w", f.Output, err)
		}
		utils.ZeroBytes(f.Plaintext)
		f.Plaintext = nil
	}
	return nil
}

func (r *DecryptResult) zeroPlaintexts() {
	for i := range r.Files {
		utils.ZeroBytes(r.Files[i].Plaintext)
		r.Files[i].Plaintext = nil
	}
}
