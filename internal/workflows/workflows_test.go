package workflows

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/cryptokey/internal/configs"
	kerrors "github.com/PolarWolf314/cryptokey/internal/errors"
	"github.com/PolarWolf314/cryptokey/internal/secrets"
)

const sampleTOML = `title = "service"

[database]
host = "db.internal"
port = 5432

[[servers]]
name = "alpha"
`

var testPassword = []byte("correct horse battery staple")

// setupTestEnv points user settings at a temp directory and returns a
// separate work directory for input files.
func setupTestEnv(t *testing.T) string {
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

	workDir := filepath.Join(tempDir, "work")
	if err := os.MkdirAll(workDir, 0755); err != nil {
		t.Fatalf("Failed to create work dir: %v", err)
	}
	return workDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func writeUserConfig(t *testing.T, content string) {
	t.Helper()
	writeFile(t, configs.UserConfigPath(), content)
}

func encryptSample(t *testing.T, workDir, name string) string {
	t.Helper()
	writeFile(t, filepath.Join(workDir, name+secrets.PlainExt), sampleTOML)
	result, err := Encrypt(context.Background(), EncryptOptions{
		Inputs:   []string{name + secrets.PlainExt},
		BaseDir:  workDir,
		Password: testPassword,
	})
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	return result.EncryptedFiles[0]
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	workDir := setupTestEnv(t)
	plainPath := filepath.Join(workDir, "app"+secrets.PlainExt)
	writeFile(t, plainPath, sampleTOML)

	encResult, err := Encrypt(context.Background(), EncryptOptions{
		BaseDir:  workDir,
		Password: testPassword,
	})
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	wantEncrypted := filepath.Join(workDir, "app"+secrets.EncryptedExt)
	if len(encResult.EncryptedFiles) != 1 || encResult.EncryptedFiles[0] != wantEncrypted {
		t.Fatalf("Expected [%s], got %v", wantEncrypted, encResult.EncryptedFiles)
	}

	info, err := os.Stat(wantEncrypted)
	if err != nil {
		t.Fatalf("Encrypted file missing: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Expected encrypted file mode 0600, got %o", perm)
	}

	if err := os.Remove(plainPath); err != nil {
		t.Fatalf("Failed to remove plaintext: %v", err)
	}

	decResult, err := Decrypt(context.Background(), DecryptOptions{
		BaseDir:  workDir,
		Password: testPassword,
	})
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}

	if got := decResult.DecryptedFiles(); len(got) != 1 || got[0] != plainPath {
		t.Fatalf("Expected [%s], got %v", plainPath, got)
	}
	if len(decResult.Warnings()) != 0 {
		t.Errorf("Expected no warnings, got %v", decResult.Warnings())
	}

	data, err := os.ReadFile(plainPath)
	if err != nil {
		t.Fatalf("Failed to read decrypted file: %v", err)
	}
	if string(data) != sampleTOML {
		t.Errorf("Decrypted content mismatch:\n%s", data)
	}
}

func TestEncrypt_MultipleFiles(t *testing.T) {
	workDir := setupTestEnv(t)
	names := []string{"a", "b", "nested/c"}
	for _, n := range names {
		writeFile(t, filepath.Join(workDir, n+secrets.PlainExt), sampleTOML)
	}

	result, err := Encrypt(context.Background(), EncryptOptions{
		Inputs:   []string{"**/*" + secrets.PlainExt},
		BaseDir:  workDir,
		Password: testPassword,
	})
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	if len(result.EncryptedFiles) != len(names) {
		t.Fatalf("Expected %d outputs, got %d", len(names), len(result.EncryptedFiles))
	}
	for i, out := range result.EncryptedFiles {
		if out != secrets.EncryptedPathFor(result.SourceFiles[i]) {
			t.Errorf("Output %s does not match source %s", out, result.SourceFiles[i])
		}
		if _, err := os.Stat(out); err != nil {
			t.Errorf("Expected %s to exist: %v", out, err)
		}
	}
}

func TestEncrypt_EmptyPassword(t *testing.T) {
	workDir := setupTestEnv(t)

	_, err := Encrypt(context.Background(), EncryptOptions{BaseDir: workDir})
	if !errors.Is(err, kerrors.ErrPasswordRequired) {
		t.Errorf("Expected ErrPasswordRequired, got %v", err)
	}
}

func TestEncrypt_NoFiles(t *testing.T) {
	workDir := setupTestEnv(t)

	_, err := Encrypt(context.Background(), EncryptOptions{BaseDir: workDir, Password: testPassword})
	if !errors.Is(err, kerrors.ErrNoFilesFound) {
		t.Errorf("Expected ErrNoFilesFound, got %v", err)
	}
}

func TestEncrypt_RejectsInvalidTOML(t *testing.T) {
	workDir := setupTestEnv(t)
	writeFile(t, filepath.Join(workDir, "bad"+secrets.PlainExt), "key = = value\n")

	_, err := Encrypt(context.Background(), EncryptOptions{BaseDir: workDir, Password: testPassword})
	if !errors.Is(err, kerrors.ErrInvalidTOML) {
		t.Fatalf("Expected ErrInvalidTOML, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(workDir, "bad"+secrets.EncryptedExt)); !os.IsNotExist(err) {
		t.Error("Expected no output for invalid TOML")
	}
}

func TestEncrypt_InvalidInputAmongManyWritesNothing(t *testing.T) {
	workDir := setupTestEnv(t)
	for i := 0; i < 8; i++ {
		writeFile(t, filepath.Join(workDir, fmt.Sprintf("svc%d", i)+secrets.PlainExt), sampleTOML)
	}
	writeFile(t, filepath.Join(workDir, "zz"+secrets.PlainExt), "not = = toml\n")

	result, err := Encrypt(context.Background(), EncryptOptions{BaseDir: workDir, Password: testPassword})
	if !errors.Is(err, kerrors.ErrInvalidTOML) {
		t.Fatalf("Expected ErrInvalidTOML, got %v", err)
	}
	if result != nil {
		t.Errorf("Expected nil result on failure, got %+v", result)
	}

	written, err := filepath.Glob(filepath.Join(workDir, "*"+secrets.EncryptedExt))
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(written) != 0 {
		t.Errorf("Expected no outputs after a failed run, found %v", written)
	}

	if _, err := Log(context.Background(), LogOptions{}); !errors.Is(err, kerrors.ErrNoAuditLog) {
		t.Errorf("Expected no audit entry for a failed run, got %v", err)
	}
}

func TestEncrypt_OutputExists(t *testing.T) {
	workDir := setupTestEnv(t)
	encrypted := encryptSample(t, workDir, "app")

	before, err := os.ReadFile(encrypted)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	_, err = Encrypt(context.Background(), EncryptOptions{BaseDir: workDir, Password: testPassword})
	if !errors.Is(err, kerrors.ErrOutputExists) {
		t.Fatalf("Expected ErrOutputExists, got %v", err)
	}

	after, _ := os.ReadFile(encrypted)
	if !bytes.Equal(before, after) {
		t.Error("Existing output was modified without --force")
	}

	if _, err := Encrypt(context.Background(), EncryptOptions{BaseDir: workDir, Password: testPassword, Force: true}); err != nil {
		t.Fatalf("Encrypt with Force failed: %v", err)
	}
	after, _ = os.ReadFile(encrypted)
	if bytes.Equal(before, after) {
		t.Error("Expected output to be rewritten with a fresh salt and IV")
	}
}

func TestEncrypt_ForceFromUserConfig(t *testing.T) {
	workDir := setupTestEnv(t)
	encryptSample(t, workDir, "app")
	writeUserConfig(t, "[output]\nforce = true\n")

	if _, err := Encrypt(context.Background(), EncryptOptions{BaseDir: workDir, Password: testPassword}); err != nil {
		t.Errorf("Expected output.force to allow overwrite, got %v", err)
	}
}

func TestEncrypt_ExplicitOutput(t *testing.T) {
	workDir := setupTestEnv(t)
	writeFile(t, filepath.Join(workDir, "app"+secrets.PlainExt), sampleTOML)

	result, err := Encrypt(context.Background(), EncryptOptions{
		Inputs:   []string{"app" + secrets.PlainExt},
		BaseDir:  workDir,
		Output:   "out/prod" + secrets.EncryptedExt,
		Password: testPassword,
	})
	if err == nil {
		t.Fatalf("Expected failure writing into a missing directory, got %v", result.EncryptedFiles)
	}

	if err := os.MkdirAll(filepath.Join(workDir, "out"), 0755); err != nil {
		t.Fatal(err)
	}
	result, err = Encrypt(context.Background(), EncryptOptions{
		Inputs:   []string{"app" + secrets.PlainExt},
		BaseDir:  workDir,
		Output:   "out/prod" + secrets.EncryptedExt,
		Password: testPassword,
	})
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	want := filepath.Join(workDir, "out", "prod"+secrets.EncryptedExt)
	if result.EncryptedFiles[0] != want {
		t.Errorf("Expected %s, got %s", want, result.EncryptedFiles[0])
	}
}

func TestEncrypt_OutputValidation(t *testing.T) {
	workDir := setupTestEnv(t)
	writeFile(t, filepath.Join(workDir, "a"+secrets.PlainExt), sampleTOML)
	writeFile(t, filepath.Join(workDir, "b"+secrets.PlainExt), sampleTOML)

	_, err := Encrypt(context.Background(), EncryptOptions{
		BaseDir:  workDir,
		Output:   "all" + secrets.EncryptedExt,
		Password: testPassword,
	})
	if !errors.Is(err, kerrors.ErrTooManyOutputs) {
		t.Errorf("Expected ErrTooManyOutputs, got %v", err)
	}

	_, err = Encrypt(context.Background(), EncryptOptions{
		Inputs:   []string{"a" + secrets.PlainExt},
		BaseDir:  workDir,
		Output:   "a.toml",
		Password: testPassword,
	})
	if !errors.Is(err, kerrors.ErrInvalidFileType) {
		t.Errorf("Expected ErrInvalidFileType, got %v", err)
	}
}

func TestEncrypt_DryRun(t *testing.T) {
	workDir := setupTestEnv(t)
	writeFile(t, filepath.Join(workDir, "app"+secrets.PlainExt), sampleTOML)

	result, err := Encrypt(context.Background(), EncryptOptions{BaseDir: workDir, Password: testPassword, DryRun: true})
	if err != nil {
		t.Fatalf("Dry run failed: %v", err)
	}
	if !result.DryRun || len(result.EncryptedFiles) != 1 {
		t.Fatalf("Unexpected dry run result: %+v", result)
	}
	if _, err := os.Stat(result.EncryptedFiles[0]); !os.IsNotExist(err) {
		t.Error("Dry run must not write files")
	}
	if _, err := os.Stat(configs.AuditLogPath()); !os.IsNotExist(err) {
		t.Error("Dry run must not write audit entries")
	}
}

func TestEncrypt_CancelledContext(t *testing.T) {
	workDir := setupTestEnv(t)
	writeFile(t, filepath.Join(workDir, "app"+secrets.PlainExt), sampleTOML)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Encrypt(ctx, EncryptOptions{BaseDir: workDir, Password: testPassword})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestDecrypt_WrongPassword(t *testing.T) {
	workDir := setupTestEnv(t)
	encryptSample(t, workDir, "app")

	result, err := Decrypt(context.Background(), DecryptOptions{
		BaseDir:  workDir,
		Password: []byte("not the password"),
		Stdout:   true,
	})
	if err == nil {
		// A wrong key yields valid padding roughly once in 256 tries.
		if bytes.Equal(result.Files[0].Plaintext, []byte(sampleTOML)) {
			t.Fatal("Wrong password recovered the plaintext")
		}
		return
	}
	if !errors.Is(err, kerrors.ErrDecryptFailed) {
		t.Fatalf("Expected ErrDecryptFailed, got %v", err)
	}
	if strings.Contains(err.Error(), "padding") {
		t.Errorf("Error must not reveal the failure mode: %v", err)
	}
}

func TestDecrypt_InvalidContainer(t *testing.T) {
	workDir := setupTestEnv(t)
	writeFile(t, filepath.Join(workDir, "junk"+secrets.EncryptedExt), "this is not a container at all, just text")

	_, err := Decrypt(context.Background(), DecryptOptions{BaseDir: workDir, Password: testPassword})
	if !errors.Is(err, kerrors.ErrInvalidContainer) {
		t.Errorf("Expected ErrInvalidContainer, got %v", err)
	}
}

func TestDecrypt_InvalidInputAmongManyWritesNothing(t *testing.T) {
	workDir := setupTestEnv(t)
	for i := 0; i < 4; i++ {
		encrypted := encryptSample(t, workDir, fmt.Sprintf("svc%d", i))
		if err := os.Remove(secrets.PlainPathFor(encrypted)); err != nil {
			t.Fatalf("Failed to remove plaintext: %v", err)
		}
	}
	writeFile(t, filepath.Join(workDir, "zz"+secrets.EncryptedExt), "this is not a container at all, just text")

	_, err := Decrypt(context.Background(), DecryptOptions{BaseDir: workDir, Password: testPassword})
	if !errors.Is(err, kerrors.ErrInvalidContainer) {
		t.Fatalf("Expected ErrInvalidContainer, got %v", err)
	}

	written, err := filepath.Glob(filepath.Join(workDir, "*"+secrets.PlainExt))
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(written) != 0 {
		t.Errorf("Expected no outputs after a failed run, found %v", written)
	}
}

func TestDecrypt_Stdout(t *testing.T) {
	workDir := setupTestEnv(t)
	encrypted := encryptSample(t, workDir, "app")
	plainPath := secrets.PlainPathFor(encrypted)
	if err := os.Remove(plainPath); err != nil {
		t.Fatal(err)
	}

	result, err := Decrypt(context.Background(), DecryptOptions{
		Inputs:   []string{encrypted},
		Password: testPassword,
		Stdout:   true,
	})
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}

	if string(result.Files[0].Plaintext) != sampleTOML {
		t.Errorf("Unexpected plaintext: %q", result.Files[0].Plaintext)
	}
	if len(result.DecryptedFiles()) != 0 {
		t.Errorf("Expected no written files, got %v", result.DecryptedFiles())
	}
	if _, err := os.Stat(plainPath); !os.IsNotExist(err) {
		t.Error("Stdout decrypt must not write plaintext to disk")
	}
}

func TestDecrypt_NonTOMLWarning(t *testing.T) {
	workDir := setupTestEnv(t)
	data, err := secrets.Encode([]byte("definitely = = not toml"), testPassword)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	writeFile(t, filepath.Join(workDir, "raw"+secrets.EncryptedExt), string(data))

	result, err := Decrypt(context.Background(), DecryptOptions{BaseDir: workDir, Password: testPassword})
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if len(result.Warnings()) != 1 {
		t.Errorf("Expected one warning, got %v", result.Warnings())
	}
}

func TestDecrypt_OutputExists(t *testing.T) {
	workDir := setupTestEnv(t)
	encryptSample(t, workDir, "app")

	_, err := Decrypt(context.Background(), DecryptOptions{BaseDir: workDir, Password: testPassword})
	if !errors.Is(err, kerrors.ErrOutputExists) {
		t.Errorf("Expected ErrOutputExists, got %v", err)
	}

	result, err := Decrypt(context.Background(), DecryptOptions{BaseDir: workDir, Password: testPassword, DryRun: true})
	if err != nil {
		t.Fatalf("Dry run failed: %v", err)
	}
	if len(result.ExistingFiles) != 1 {
		t.Errorf("Expected one existing file, got %v", result.ExistingFiles)
	}
}

func TestInspect(t *testing.T) {
	workDir := setupTestEnv(t)
	encrypted := encryptSample(t, workDir, "app")

	result, err := Inspect(context.Background(), encrypted)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}

	if result.Version != int(secrets.FormatVersion) {
		t.Errorf("Expected version %d, got %d", secrets.FormatVersion, result.Version)
	}
	if len(result.Salt) != secrets.SaltSize*2 || len(result.IV) != secrets.IVSize*2 {
		t.Errorf("Unexpected salt/iv hex lengths: %q %q", result.Salt, result.IV)
	}
	if result.Size != secrets.HeaderSize+result.CiphertextLength {
		t.Errorf("Size %d does not equal header plus ciphertext %d", result.Size, result.CiphertextLength)
	}
	if result.CiphertextLength%16 != 0 || result.Blocks != result.CiphertextLength/16 {
		t.Errorf("Inconsistent block count %d for %d bytes", result.Blocks, result.CiphertextLength)
	}
	if n := len(sampleTOML); n > result.MaxPlaintextLength || n < result.MaxPlaintextLength-15 {
		t.Errorf("Plaintext length %d outside reported bound %d", n, result.MaxPlaintextLength)
	}
}

func TestInspect_Errors(t *testing.T) {
	workDir := setupTestEnv(t)

	_, err := Inspect(context.Background(), filepath.Join(workDir, "missing"+secrets.EncryptedExt))
	if !errors.Is(err, kerrors.ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}

	junk := filepath.Join(workDir, "junk"+secrets.EncryptedExt)
	writeFile(t, junk, "short")
	_, err = Inspect(context.Background(), junk)
	if !errors.Is(err, kerrors.ErrInvalidContainer) {
		t.Errorf("Expected ErrInvalidContainer, got %v", err)
	}
}

func TestGet(t *testing.T) {
	workDir := setupTestEnv(t)
	encrypted := encryptSample(t, workDir, "app")

	tests := []struct {
		key  string
		want string
	}{
		{"title", "service"},
		{"database.host", "db.internal"},
		{"database.port", "5432"},
		{"servers.0.name", "alpha"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			result, err := Get(context.Background(), GetOptions{
				Input:    encrypted,
				Password: testPassword,
				Key:      tt.key,
			})
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if result.Formatted != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, result.Formatted)
			}
		})
	}
}

func TestGet_Errors(t *testing.T) {
	workDir := setupTestEnv(t)
	encrypted := encryptSample(t, workDir, "app")

	_, err := Get(context.Background(), GetOptions{Input: encrypted, Password: testPassword, Key: "database.user"})
	if !errors.Is(err, kerrors.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got %v", err)
	}

	_, err = Get(context.Background(), GetOptions{Input: secrets.PlainPathFor(encrypted), Password: testPassword, Key: "title"})
	if !errors.Is(err, kerrors.ErrInvalidFileType) {
		t.Errorf("Expected ErrInvalidFileType, got %v", err)
	}

	_, err = Get(context.Background(), GetOptions{Input: encrypted, Key: "title"})
	if !errors.Is(err, kerrors.ErrPasswordRequired) {
		t.Errorf("Expected ErrPasswordRequired, got %v", err)
	}
}

func TestGeneratePassword_UsesUserConfig(t *testing.T) {
	setupTestEnv(t)
	writeUserConfig(t, "[password]\nlength = 40\ninclude_special = false\n")

	result, err := GeneratePassword(context.Background(), PasswordOptions{})
	if err != nil {
		t.Fatalf("GeneratePassword failed: %v", err)
	}
	if len(result.Password) != 40 {
		t.Errorf("Expected length 40, got %d", len(result.Password))
	}
	if strings.ContainsAny(result.Password, secrets.PasswordSpecial) {
		t.Errorf("Expected no special characters, got %q", result.Password)
	}
}

func TestGeneratePassword_Overrides(t *testing.T) {
	setupTestEnv(t)

	result, err := GeneratePassword(context.Background(), PasswordOptions{Length: 8, NoSpecial: true})
	if err != nil {
		t.Fatalf("GeneratePassword failed: %v", err)
	}
	if len(result.Password) != 8 || result.Policy.IncludeSpecial {
		t.Errorf("Unexpected result: %+v", result)
	}

	_, err = GeneratePassword(context.Background(), PasswordOptions{Length: -1})
	if !errors.Is(err, kerrors.ErrInvalidPasswordPolicy) {
		t.Errorf("Expected ErrInvalidPasswordPolicy, got %v", err)
	}
}

func TestLog_RecordsOperations(t *testing.T) {
	workDir := setupTestEnv(t)
	encrypted := encryptSample(t, workDir, "app")

	if _, err := Get(context.Background(), GetOptions{Input: encrypted, Password: testPassword, Key: "title"}); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	result, err := Log(context.Background(), LogOptions{})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(result.Entries))
	}
	if result.Entries[0].Operation != "encrypt" || result.Entries[1].Operation != "get" {
		t.Errorf("Unexpected operations: %s, %s", result.Entries[0].Operation, result.Entries[1].Operation)
	}
	if result.Entries[1].Key != "title" {
		t.Errorf("Expected get entry to record key, got %q", result.Entries[1].Key)
	}

	filtered, err := Log(context.Background(), LogOptions{Operations: "get"})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	if len(filtered.Entries) != 1 || filtered.TotalEntriesBeforeFilter != 2 {
		t.Errorf("Unexpected filter result: %+v", filtered)
	}

	reversed, err := Log(context.Background(), LogOptions{Reverse: true, Limit: 1})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	if len(reversed.Entries) != 1 || reversed.Entries[0].Operation != "get" {
		t.Errorf("Expected most recent entry first, got %+v", reversed.Entries)
	}
}

func TestLog_AuditDisabled(t *testing.T) {
	workDir := setupTestEnv(t)
	writeUserConfig(t, "[audit]\nenabled = false\n")
	encryptSample(t, workDir, "app")

	_, err := Log(context.Background(), LogOptions{})
	if !errors.Is(err, kerrors.ErrNoAuditLog) {
		t.Errorf("Expected ErrNoAuditLog, got %v", err)
	}
}

func TestLog_InvalidDate(t *testing.T) {
	workDir := setupTestEnv(t)
	encryptSample(t, workDir, "app")

	_, err := Log(context.Background(), LogOptions{Since: "yesterday"})
	if !errors.Is(err, kerrors.ErrInvalidDateFormat) {
		t.Errorf("Expected ErrInvalidDateFormat, got %v", err)
	}
}

func TestConfig_InitAndShow(t *testing.T) {
	setupTestEnv(t)

	shown, err := ShowConfig(context.Background())
	if err != nil {
		t.Fatalf("ShowConfig failed: %v", err)
	}
	if shown.Exists {
		t.Error("Expected no config file yet")
	}

	if _, err := InitConfig(context.Background(), InitConfigOptions{}); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	_, err = InitConfig(context.Background(), InitConfigOptions{})
	if !errors.Is(err, kerrors.ErrConfigExists) {
		t.Errorf("Expected ErrConfigExists, got %v", err)
	}

	if _, err := InitConfig(context.Background(), InitConfigOptions{Force: true}); err != nil {
		t.Errorf("InitConfig with Force failed: %v", err)
	}

	shown, err = ShowConfig(context.Background())
	if err != nil {
		t.Fatalf("ShowConfig failed: %v", err)
	}
	if !shown.Exists || shown.Config.Password.Length != configs.DefaultUserConfig().Password.Length {
		t.Errorf("Unexpected config: %+v", shown)
	}
}
