package paths

import (
	"os"
	"path/filepath"
)

// KeyhudHome returns KEYHUD_HOME or the ~/.keyhud default
func KeyhudHome() string {
	home := os.Getenv("KEYHUD_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".keyhud"
		}
		return filepath.Join(homeDir, ".keyhud")
	}
	return ExpandPath(home)
}

// SettingsPath returns $KEYHUD_HOME/settings.json
func SettingsPath() string {
	return filepath.Join(KeyhudHome(), "settings.json")
}

// KeybindsPath returns $KEYHUD_HOME/keybinds.yaml
func KeybindsPath() string {
	return filepath.Join(KeyhudHome(), "keybinds.yaml")
}

// SSHDir returns $KEYHUD_HOME/ssh, where the server host key lives
func SSHDir() string {
	return filepath.Join(KeyhudHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
