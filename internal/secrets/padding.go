package secrets

import "crypto/subtle"

// pkcs7Pad returns a copy of data padded to a multiple of blockSize. A full
// block of padding is appended when data is already aligned.
func pkcs7Pad(data []byte, blockSize int) []byte {
	pad := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+pad)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(pad)
	}
	return out
}

// pkcs7Unpad strips PKCS7 padding from data. The padding bytes are compared
// in constant time.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, &PaddingError{}
	}

	pad := int(data[len(data)-1])
	if pad == 0 || pad > blockSize {
		return nil, &PaddingError{}
	}

	want := make([]byte, pad)
	for i := range want {
		want[i] = byte(pad)
	}
	if subtle.ConstantTimeCompare(data[len(data)-pad:], want) != 1 {
		return nil, &PaddingError{}
	}

	return data[:len(data)-pad], nil
}
