package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"runtime"
)

// Codec encrypts plaintext into containers and decrypts them back. It holds
// no state besides its random source, so one Codec may be shared between
// goroutines as long as the reader is safe for concurrent use.
type Codec struct {
	// Rand supplies salts and IVs. It must be a cryptographically secure
	// source; nil means crypto/rand.Reader.
	Rand io.Reader
}

// NewCodec returns a Codec reading randomness from r, or from
// crypto/rand.Reader when r is nil.
func NewCodec(r io.Reader) *Codec {
	return &Codec{Rand: r}
}

var defaultCodec = NewCodec(nil)

// deriveKey is swapped out in tests to observe key derivation calls.
var deriveKey = DeriveKey

// Encode encrypts plaintext under password with the default Codec.
func Encode(plaintext, password []byte) ([]byte, error) {
	return defaultCodec.Encode(plaintext, password)
}

// Decode decrypts a container under password with the default Codec.
func Decode(container, password []byte) ([]byte, error) {
	return defaultCodec.Decode(container, password)
}

func (c *Codec) random() io.Reader {
	if c == nil || c.Rand == nil {
		return rand.Reader
	}
	return c.Rand
}

// Encode derives a key from password and a fresh salt, encrypts the PKCS7
// padded plaintext with AES-256-CBC under a fresh IV and returns the
// serialized container. It fails only when the random source fails.
func (c *Codec) Encode(plaintext, password []byte) ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(c.random(), salt); err != nil {
		return nil, &RandomSourceError{Err: fmt.Errorf("reading salt: %w", err)}
	}

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(c.random(), iv); err != nil {
		return nil, &RandomSourceError{Err: fmt.Errorf("reading iv: %w", err)}
	}

	key := deriveKey(password, salt)
	defer zeroBytes(key)

	container, err := encryptBlocks(plaintext, key, salt, iv)
	if err != nil {
		return nil, err
	}
	return container.Bytes(), nil
}

// Decode parses data, derives the key from password and the stored salt,
// decrypts the ciphertext and strips the padding. Framing problems are
// reported as *FormatError before any key derivation; bad padding, which
// is what a wrong password almost always produces, as *PaddingError.
func (c *Codec) Decode(data, password []byte) ([]byte, error) {
	container, err := ParseContainer(data)
	if err != nil {
		return nil, err
	}

	key := deriveKey(password, container.Salt)
	defer zeroBytes(key)

	return decryptBlocks(container, key)
}

// encryptBlocks pads plaintext and encrypts it with AES-256-CBC under key and iv.
func encryptBlocks(plaintext, key, salt, iv []byte) (*Container, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating aes cipher: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	defer zeroBytes(padded)

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return &Container{Salt: salt, IV: iv, Ciphertext: ciphertext}, nil
}

// decryptBlocks decrypts the container's ciphertext under key and strips the padding.
func decryptBlocks(container *Container, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating aes cipher: %w", err)
	}

	padded := make([]byte, len(container.Ciphertext))
	cipher.NewCBCDecrypter(block, container.IV).CryptBlocks(padded, container.Ciphertext)

	plaintext, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		zeroBytes(padded)
		return nil, err
	}

	return plaintext, nil
}

// zeroBytes overwrites b with zeros.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
