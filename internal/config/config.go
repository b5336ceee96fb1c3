// Package config handles global ccmigrate configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the global ccmigrate configuration.
type Config struct {
	// InputDir holds the legacy v5 JSON documents.
	InputDir string `toml:"input_dir"`

	// SchemaDir holds the v6 target schema documents.
	SchemaDir string `toml:"schema_dir"`

	// OutputDir receives the migrated v6 documents.
	OutputDir string `toml:"output_dir"`

	// Epoch selects the rename table: "auto", "v6a" or "v6".
	Epoch string `toml:"epoch"`

	// RenameTables optionally overrides the built-in rename tables with an
	// external YAML file.
	RenameTables string `toml:"rename_tables"`

	// HistoryPath is the run-history database location. Empty disables
	// history recording.
	HistoryPath string `toml:"history_path"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`
}

// Defaults returns a config with the conventional layout: inputs next to
// the binary, schemas and outputs in sibling directories, latest epoch
// auto-detected, history next to the config file.
func Defaults() *Config {
	return &Config{
		InputDir:    "input",
		SchemaDir:   "schema",
		OutputDir:   "output",
		Epoch:       "auto",
		HistoryPath: filepath.Join(filepath.Dir(DefaultPath()), "history.db"),
	}
}

// Load loads the configuration from the default location.
// Returns defaults if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Defaults(), nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path. Options absent
// from the file keep their defaults.
func LoadFrom(path string) (*Config, error) {
	config := Defaults()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/ccmigrate/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "ccmigrate", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "ccmigrate", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// CreateDefault creates a default config file if it doesn't exist.
func CreateDefault() (string, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil // Already exists
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	defaultConfig := `# ccmigrate configuration

# Directory holding the legacy v5 JSON documents
# (settings.json, customrotation.json, acrc.json, rgb.json)
# input_dir = "input"

# Directory holding the v6 target schemas
# schema_dir = "schema"

# Directory the migrated v6 documents are written to
# output_dir = "output"

# Rename table epoch: "auto" detects from the input, or pin "v6a" / "v6"
# epoch = "auto"

# Override the built-in rename tables with an external YAML file
# rename_tables = "/path/to/tables.yaml"

# Run-history database; set to "" to disable history recording
# history_path = "~/.config/ccmigrate/history.db"

# Optional UI accent color for terminal output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"
`

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}
