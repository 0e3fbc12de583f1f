// Package config provides hierarchical configuration management for
// changelint using koanf. Values are loaded with priority: environment
// variables > project config (.changelint/config.yml) > user config
// (~/.config/changelint/config.yml) > defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the changelint CLI tool configuration.
type Configuration struct {
	// ChangelogPath is the file validated when no path argument is given.
	// Can be set via CHANGELINT_CHANGELOG_PATH.
	ChangelogPath string `koanf:"changelog_path" validate:"required"`

	// Plain disables colors and glyphs in favor of text severity
	// prefixes. Can be set via CHANGELINT_PLAIN.
	Plain bool `koanf:"plain"`

	// ServeAddr is the listen address for the demo web service fixture.
	// Can be set via CHANGELINT_SERVE_ADDR.
	ServeAddr string `koanf:"serve_addr" validate:"required"`
}

// Load loads configuration from user, project, and environment sources.
// projectConfigPath overrides the project config location when non-empty
// (used by the --config flag and tests).
func Load(projectConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	userPath, err := UserConfigPath()
	if err == nil {
		if err := loadYAMLConfig(k, userPath, "user"); err != nil {
			return nil, err
		}
	}

	projectPath := ProjectConfigPath()
	if projectConfigPath != "" {
		projectPath = projectConfigPath
	}
	if err := loadYAMLConfig(k, projectPath, "project"); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider("CHANGELINT_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, projectPath); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadYAMLConfig validates and loads a YAML config file. A missing file is
// not an error; the layer is simply skipped.
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if !fileExists(path) {
		return nil
	}
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys.
// Example: CHANGELINT_CHANGELOG_PATH -> changelog_path
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "CHANGELINT_"))
}
