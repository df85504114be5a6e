package cmd

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/PolarWolf314/cryptokey/internal/configs"
)

func TestConfigCommands(t *testing.T) {
	setupTestEnvironment(t)

	t.Run("ShowDefaults", func(t *testing.T) {
		output, err := runCLI(t, "config", "show")
		if err != nil {
			t.Fatalf("Command failed: %v\nOutput: %s", err, output)
		}
		if !strings.Contains(output, "showing defaults") {
			t.Errorf("Expected defaults note, got: %s", output)
		}
		if !strings.Contains(output, "password.length:") {
			t.Errorf("Expected password.length, got: %s", output)
		}
	})

	t.Run("Init", func(t *testing.T) {
		output, err := runCLI(t, "config", "init")
		if err != nil {
			t.Fatalf("Command failed: %v\nOutput: %s", err, output)
		}
		if _, err := os.Stat(configs.UserConfigPath()); err != nil {
			t.Errorf("Expected config file to be written: %v", err)
		}
	})

	t.Run("InitExisting", func(t *testing.T) {
		output, err := runCLI(t, "config", "init")
		if err == nil {
			t.Fatalf("Expected failure for existing config, output: %s", output)
		}
		if !strings.Contains(output, "already exists") {
			t.Errorf("Expected already exists message, got: %s", output)
		}

		if _, err := runCLI(t, "config", "init", "--force"); err != nil {
			t.Errorf("Init with --force failed: %v", err)
		}
	})

	t.Run("ShowJSON", func(t *testing.T) {
		output, err := runCLI(t, "config", "show", "--json")
		if err != nil {
			t.Fatalf("Command failed: %v\nOutput: %s", err, output)
		}
		var cfg configs.UserConfig
		if err := json.Unmarshal([]byte(output), &cfg); err != nil {
			t.Fatalf("Output is not JSON: %v\n%s", err, output)
		}
		if *configs.DefaultUserConfig() != cfg {
			t.Errorf("Expected default config, got %+v", cfg)
		}
	})

	t.Run("ShowInvalid", func(t *testing.T) {
		if err := os.WriteFile(configs.UserConfigPath(), []byte("[password]\nlength = 0\n"), 0600); err != nil {
			t.Fatal(err)
		}
		output, err := runCLI(t, "config", "show")
		if err == nil {
			t.Fatalf("Expected failure for invalid config, output: %s", output)
		}
		if !strings.Contains(output, "password.length") {
			t.Errorf("Expected validation message, got: %s", output)
		}
	})
}
