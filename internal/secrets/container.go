package secrets

import (
	"bytes"
	"crypto/aes"
	"fmt"
)

// Container format constants.
const (
	// MagicTag identifies a cryptokey container.
	MagicTag = "__SLE__"

	// FormatVersion is the only container version this package writes and reads.
	FormatVersion byte = 0x01

	// IVSize is the CBC initialization vector length.
	IVSize = aes.BlockSize

	// MagicSize is the length of the tag plus the version byte.
	MagicSize = len(MagicTag) + 1

	// HeaderSize is the fixed overhead in front of the ciphertext.
	HeaderSize = MagicSize + SaltSize + IVSize
)

// Magic returns the full magic header for the current format version.
func Magic() []byte {
	return append([]byte(MagicTag), FormatVersion)
}

// Container is the parsed form of an encrypted file:
//
//	magic (8) | salt (16) | iv (16) | ciphertext (16*k, k >= 1)
type Container struct {
	Salt       []byte
	IV         []byte
	Ciphertext []byte

	version byte
}

// ParseContainer validates the framing of data and splits it into its
// fields. It never derives a key or decrypts anything. The returned fields
// are copies and do not alias data.
func ParseContainer(data []byte) (*Container, error) {
	if len(data) < HeaderSize {
		return nil, &FormatError{Reason: fmt.Sprintf("container is %d bytes, need at least %d", len(data), HeaderSize)}
	}

	if !bytes.Equal(data[:len(MagicTag)], []byte(MagicTag)) {
		return nil, &FormatError{Reason: "missing magic header"}
	}
	if v := data[len(MagicTag)]; v != FormatVersion {
		return nil, &FormatError{Reason: fmt.Sprintf("unsupported container version %d", v)}
	}

	body := data[MagicSize:]
	ciphertext := body[SaltSize+IVSize:]
	if len(ciphertext) == 0 {
		return nil, &FormatError{Reason: "container has no ciphertext"}
	}
	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, &FormatError{Reason: fmt.Sprintf("ciphertext length %d is not a multiple of %d", len(ciphertext), aes.BlockSize)}
	}

	return &Container{
		Salt:       bytes.Clone(body[:SaltSize]),
		IV:         bytes.Clone(body[SaltSize : SaltSize+IVSize]),
		Ciphertext: bytes.Clone(ciphertext),
		version:    data[len(MagicTag)],
	}, nil
}

// Bytes serializes the container with the current magic header.
func (c *Container) Bytes() []byte {
	out := make([]byte, 0, HeaderSize+len(c.Ciphertext))
	out = append(out, Magic()...)
	out = append(out, c.Salt...)
	out = append(out, c.IV...)
	out = append(out, c.Ciphertext...)
	return out
}

// Blocks returns the number of cipher blocks in the ciphertext.
func (c *Container) Blocks() int {
	return len(c.Ciphertext) / aes.BlockSize
}

// Version returns the format version byte read by ParseContainer. A
// container built in memory reports FormatVersion, which Bytes writes.
func (c *Container) Version() byte {
	if c.version == 0 {
		return FormatVersion
	}
	return c.version
}
