package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/changelint/config.yml
// - macOS: ~/Library/Application Support/changelint/config.yml
// - Windows: %APPDATA%\changelint\config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "changelint", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file,
// always .changelint/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".changelint", "config.yml")
}
