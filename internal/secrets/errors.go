package secrets

import (
	"errors"
	"fmt"

	kerrors "github.com/PolarWolf314/cryptokey/internal/errors"
)

// FormatError reports input that is not a container of this format: too
// short, wrong magic header, unsupported version or misaligned ciphertext.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s", kerrors.ErrInvalidContainer, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return kerrors.ErrInvalidContainer
}

// PaddingError reports inconsistent PKCS7 padding after decryption. The
// usual cause is a wrong password; a corrupted file looks the same.
type PaddingError struct{}

func (e *PaddingError) Error() string {
	return kerrors.ErrDecryptFailed.Error()
}

func (e *PaddingError) Unwrap() error {
	return kerrors.ErrDecryptFailed
}

// RandomSourceError reports a failure to read from the secure random source.
type RandomSourceError struct {
	Err error
}

func (e *RandomSourceError) Error() string {
	return fmt.Sprintf("%s: %v", kerrors.ErrRandomSource, e.Err)
}

func (e *RandomSourceError) Unwrap() error {
	return e.Err
}

func (e *RandomSourceError) Is(target error) bool {
	return target == kerrors.ErrRandomSource
}

// IsFormatError reports whether err is, or wraps, a *FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsPaddingError reports whether err is, or wraps, a *PaddingError.
func IsPaddingError(err error) bool {
	var pe *PaddingError
	return errors.As(err, &pe)
}
