package configs

import (
	"log"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/cryptokey/internal/utils"
)

type UserSettings struct {
	UserConfigsPath string
	UserDataPath    string
	Username        string
}

var UserCryptokeySettings *UserSettings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")

	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	username, err := utils.GetUsername()
	if err != nil {
		// The username only labels audit entries.
		username = "unknown"
	}

	UserCryptokeySettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "cryptokey"),
		UserDataPath:    filepath.Join(dataDir, "cryptokey"),
		Username:        username,
	}
}

// UserConfigPath returns the path of the user config file.
func UserConfigPath() string {
	return filepath.Join(UserCryptokeySettings.UserConfigsPath, "config.toml")
}

// AuditLogPath returns the path of the audit log.
func AuditLogPath() string {
	return filepath.Join(UserCryptokeySettings.UserDataPath, "audit.jsonl")
}
