package configs

import (
	"os"
	"path/filepath"
)

// ConfigPathEnv names the environment variable that overrides the user
// config file location.
const ConfigPathEnv = "CONFLOOK_CONFIG"

type UserSettings struct {
	UserConfigsPath string
	UserConfigFile  string
}

var UserConflookSettings *UserSettings

func init() {
	UserConflookSettings = defaultUserSettings()
}

func defaultUserSettings() *UserSettings {
	if path := os.Getenv(ConfigPathEnv); path != "" {
		return &UserSettings{
			UserConfigsPath: filepath.Dir(path),
			UserConfigFile:  path,
		}
	}

	// Without a config dir (no $HOME) conflook runs on defaults.
	configDir, err := os.UserConfigDir()
	if err != nil {
		return &UserSettings{}
	}

	return &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "conflook"),
		UserConfigFile:  filepath.Join(configDir, "conflook", "config.toml"),
	}
}
