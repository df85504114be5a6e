package secrets

import (
	"bytes"
	"testing"
)

func TestPKCS7Pad(t *testing.T) {
	tests := []struct {
		name   string
		input  []byte
		padLen int
	}{
		{"Empty", []byte{}, 16},
		{"OneByte", []byte{0x41}, 15},
		{"FifteenBytes", bytes.Repeat([]byte{0x41}, 15), 1},
		{"FullBlock", bytes.Repeat([]byte{0x41}, 16), 16},
		{"SeventeenBytes", bytes.Repeat([]byte{0x41}, 17), 15},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			padded := pkcs7Pad(tc.input, 16)
			if len(padded) != len(tc.input)+tc.padLen {
				t.Fatalf("Expected padded length %d, got %d", len(tc.input)+tc.padLen, len(padded))
			}
			for _, b := range padded[len(tc.input):] {
				if int(b) != tc.padLen {
					t.Fatalf("Expected padding byte %d, got %d", tc.padLen, b)
				}
			}
			if !bytes.Equal(padded[:len(tc.input)], tc.input) {
				t.Error("Padding changed the data prefix")
			}
		})
	}
}

func TestPKCS7PadDoesNotModifyInput(t *testing.T) {
	input := make([]byte, 5, 32)
	copy(input, "hello")

	_ = pkcs7Pad(input, 16)

	if got := input[:cap(input)][5]; got != 0 {
		t.Errorf("Expected spare capacity to stay untouched, got %d", got)
	}
}

func TestPKCS7Unpad(t *testing.T) {
	block := func(tail ...byte) []byte {
		b := bytes.Repeat([]byte{0x41}, 16-len(tail))
		return append(b, tail...)
	}

	tests := []struct {
		name    string
		input   []byte
		want    []byte
		wantErr bool
	}{
		{"OneBytePad", block(0x01), bytes.Repeat([]byte{0x41}, 15), false},
		{"ThreeBytePad", block(0x03, 0x03, 0x03), bytes.Repeat([]byte{0x41}, 13), false},
		{"FullBlockPad", bytes.Repeat([]byte{0x10}, 16), []byte{}, false},
		{"ZeroPad", block(0x00), nil, true},
		{"PadTooLarge", block(0x11), nil, true},
		{"InconsistentPad", block(0x02, 0x03, 0x03), nil, true},
		{"ShortInconsistent", block(0x41, 0x02), nil, true},
		{"Empty", []byte{}, nil, true},
		{"Misaligned", bytes.Repeat([]byte{0x01}, 15), nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pkcs7Unpad(tc.input, 16)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Expected error, got %v", got)
				}
				if !IsPaddingError(err) {
					t.Errorf("Expected *PaddingError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, got)
			}
		})
	}
}
