package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/cryptokey/internal/configs"
)

// setupAuditSettings points the user data directory at a temp directory.
func setupAuditSettings(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()

	originalSettings := configs.UserCryptokeySettings
	configs.UserCryptokeySettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(tempDir, "config"),
		UserDataPath:    filepath.Join(tempDir, "data"),
		Username:        "testuser",
	}
	t.Cleanup(func() {
		configs.UserCryptokeySettings = originalSettings
	})

	return filepath.Join(tempDir, "data", "audit.jsonl")
}

func TestLog_CreatesFile(t *testing.T) {
	logPath := setupAuditSettings(t)

	entry := NewEntry("encrypt")
	entry.Files = []string{"config.ac.es"}
	Log(entry)

	info, err := os.Stat(logPath)
	if os.IsNotExist(err) {
		t.Fatalf("Audit log file was not created")
	}
	if err != nil {
		t.Fatalf("Failed to stat audit log: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Expected audit log permissions 0600, got %o", perm)
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	logPath := setupAuditSettings(t)

	Log(NewEntry("encrypt"))
	Log(NewEntry("decrypt"))

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
}

func TestLog_PopulatesIDAndTimestamp(t *testing.T) {
	setupAuditSettings(t)

	Log(NewEntry("encrypt"))
	Log(NewEntry("encrypt"))

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	for _, e := range entries {
		if len(e.ID) != 36 {
			t.Errorf("Expected UUID id, got %q", e.ID)
		}
		if !strings.HasSuffix(e.Timestamp, "Z") || len(e.Timestamp) != len("2006-01-02T15:04:05.000000Z") {
			t.Errorf("Unexpected timestamp format %q", e.Timestamp)
		}
		if e.User != "testuser" {
			t.Errorf("Expected user testuser, got %q", e.User)
		}
	}
	if entries[0].ID == entries[1].ID {
		t.Error("Expected distinct entry ids")
	}
}

func TestLog_OmitsEmptyFields(t *testing.T) {
	logPath := setupAuditSettings(t)

	Log(NewEntry("genpass"))

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	for _, field := range []string{"files", "output_path", "key", "generated"} {
		if _, ok := raw[field]; ok {
			t.Errorf("Expected %q to be omitted", field)
		}
	}
}

func TestReadEntries_NoLog(t *testing.T) {
	setupAuditSettings(t)

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if entries != nil {
		t.Errorf("Expected nil entries, got %v", entries)
	}
}

func TestParseEntries_SkipsMalformedLines(t *testing.T) {
	data := []byte(`{"id":"1","ts":"2024-01-01T00:00:00.000000Z","user":"a","op":"encrypt"}
not json
{"id":"2","ts":"2024-01-02T00:00:00.000000Z","user":"a","op":"decrypt"}
`)

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[1].Operation != "decrypt" {
		t.Errorf("Expected second op decrypt, got %q", entries[1].Operation)
	}
}

func TestParseEntries_EmptyData(t *testing.T) {
	entries, err := ParseEntries(nil)
	if err != nil || entries != nil {
		t.Errorf("Expected nil, nil; got %v, %v", entries, err)
	}
}
