package configs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	kerrors "github.com/PolarWolf314/cryptokey/internal/errors"
)

// SaveTOML saves a struct to a TOML file.
func SaveTOML(filePath string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return err
	}

	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(data)
}

// LoadTOML loads a TOML file into a struct.
func LoadTOML(filePath string, data interface{}) error {
	_, err := toml.DecodeFile(filePath, data)
	return err
}

// ParseTOML parses a TOML document into nested maps. Syntax errors match
// ErrInvalidTOML and include the line of the problem.
func ParseTOML(data []byte) (map[string]any, error) {
	doc := make(map[string]any)
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidTOML, err)
	}
	return doc, nil
}

// ValidateTOML reports whether data is a syntactically valid TOML document.
func ValidateTOML(data []byte) error {
	_, err := ParseTOML(data)
	return err
}

// Lookup returns the value at a dotted key such as "server.port". Numeric
// segments index into arrays, so "servers.0.host" reads the first entry of
// an array of tables. An empty key returns the whole document. Keys that
// themselves contain dots cannot be addressed.
func Lookup(doc map[string]any, dottedKey string) (any, error) {
	if dottedKey == "" {
		return doc, nil
	}

	var current any = doc
	for _, part := range strings.Split(dottedKey, ".") {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("%w: %s", kerrors.ErrKeyNotFound, dottedKey)
			}
			current = next
		case []map[string]any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(node) {
				return nil, fmt.Errorf("%w: %s", kerrors.ErrKeyNotFound, dottedKey)
			}
			current = node[i]
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(node) {
				return nil, fmt.Errorf("%w: %s", kerrors.ErrKeyNotFound, dottedKey)
			}
			current = node[i]
		default:
			return nil, fmt.Errorf("%w: %s", kerrors.ErrKeyNotFound, dottedKey)
		}
	}

	return current, nil
}

// FormatValue renders a value returned by Lookup for display. Strings are
// printed raw, tables as TOML and arrays as JSON.
func FormatValue(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case time.Time:
		return val.Format(time.RFC3339Nano), nil
	case map[string]any:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(val); err != nil {
			return "", fmt.Errorf("failed to encode table: %w", err)
		}
		return strings.TrimRight(buf.String(), "\n"), nil
	case []any, []map[string]any:
		data, err := json.Marshal(val)
		if err != nil {
			return "", fmt.Errorf("failed to encode array: %w", err)
		}
		return string(data), nil
	default:
		return fmt.Sprint(val), nil
	}
}
