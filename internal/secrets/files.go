package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/cryptokey/internal/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// File extensions for plain and encrypted configuration files.
const (
	PlainExt     = ".ac.esc"
	EncryptedExt = ".ac.es"
)

// IsPlainConfigFile reports whether path names a plaintext config (.ac.esc).
func IsPlainConfigFile(path string) bool {
	base := filepath.Base(path)
	return strings.HasSuffix(base, PlainExt) && len(base) > len(PlainExt)
}

// IsEncryptedFile reports whether path names an encrypted container (.ac.es).
func IsEncryptedFile(path string) bool {
	base := filepath.Base(path)
	return strings.HasSuffix(base, EncryptedExt) && len(base) > len(EncryptedExt)
}

// EncryptedPathFor maps config.ac.esc to config.ac.es.
func EncryptedPathFor(plainPath string) string {
	return strings.TrimSuffix(plainPath, PlainExt) + EncryptedExt
}

// PlainPathFor maps config.ac.es to config.ac.esc.
func PlainPathFor(encryptedPath string) string {
	return strings.TrimSuffix(encryptedPath, EncryptedExt) + PlainExt
}

// ResolveFiles takes user-provided paths, directories or globs and returns
// the matching files, de-duplicated and in first-seen order.
// forEncryption=true keeps .ac.esc files, forEncryption=false keeps .ac.es files.
func ResolveFiles(patterns []string, baseDir string, forEncryption bool) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		resolved, err := resolvePattern(pattern, baseDir, forEncryption)
		if err != nil {
			return nil, err
		}

		for _, f := range resolved {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	if len(files) == 0 {
		return nil, kerrors.ErrNoFilesFound
	}

	return files, nil
}

func resolvePattern(pattern string, baseDir string, forEncryption bool) ([]string, error) {
	absPattern := pattern
	if !filepath.IsAbs(pattern) {
		absPattern = filepath.Join(baseDir, pattern)
	}

	info, err := os.Stat(absPattern)
	if err == nil && info.IsDir() {
		return findFilesInDir(absPattern, forEncryption)
	}

	if strings.ContainsAny(pattern, "*?[{") {
		return expandGlob(absPattern, forEncryption)
	}

	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrFileNotFound, pattern)
	}

	if !matchesKind(absPattern, forEncryption) {
		want := PlainExt
		if !forEncryption {
			want = EncryptedExt
		}
		return nil, fmt.Errorf("%w: %s does not have a %s extension", kerrors.ErrInvalidFileType, pattern, want)
	}

	return []string{absPattern}, nil
}

func expandGlob(absPattern string, forEncryption bool) ([]string, error) {
	matches, err := doublestar.FilepathGlob(absPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", absPattern, err)
	}

	var filtered []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		if matchesKind(m, forEncryption) {
			filtered = append(filtered, m)
		}
	}

	return filtered, nil
}

func findFilesInDir(dir string, forEncryption bool) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if matchesKind(path, forEncryption) {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

func matchesKind(path string, forEncryption bool) bool {
	if forEncryption {
		return IsPlainConfigFile(path)
	}
	return IsEncryptedFile(path)
}

// WriteFileAtomic writes data to a temporary file next to path and renames
// it into place, so readers never observe a partially written file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("failed to sync %s: %w", tmpPath, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		cleanup()
		return fmt.Errorf("failed to set permissions on %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move %s into place: %w", path, err)
	}

	return nil
}
