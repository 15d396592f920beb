// Package config loads daybook settings from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application settings.
type Config struct {
	// DataPath is the SQLite database file holding the journal.
	DataPath string `yaml:"data_path"`
	// LogLevel is a logrus level name (default: warn).
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in settings, rooted under ~/.daybook.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DataPath: filepath.Join(home, ".daybook", "daybook.db"),
		LogLevel: "warn",
	}
}

// Load resolves settings in order: defaults, then the YAML file at path
// (~/.daybook/config.yaml when path is empty; a missing file is fine),
// then DAYBOOK_DB and DAYBOOK_LOG_LEVEL overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".daybook", "config.yaml")
		}
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}

	if env := os.Getenv("DAYBOOK_DB"); env != "" {
		cfg.DataPath = env
	}
	if env := os.Getenv("DAYBOOK_LOG_LEVEL"); env != "" {
		cfg.LogLevel = env
	}
	return cfg, nil
}
