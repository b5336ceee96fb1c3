package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.InputDir != "input" {
		t.Errorf("InputDir = %q, want input", cfg.InputDir)
	}
	if cfg.SchemaDir != "schema" {
		t.Errorf("SchemaDir = %q, want schema", cfg.SchemaDir)
	}
	if cfg.OutputDir != "output" {
		t.Errorf("OutputDir = %q, want output", cfg.OutputDir)
	}
	if cfg.Epoch != "auto" {
		t.Errorf("Epoch = %q, want auto", cfg.Epoch)
	}
	if cfg.HistoryPath == "" {
		t.Error("HistoryPath should default to a path next to the config")
	}
}

func TestLoadFrom(t *testing.T) {
	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
input_dir = "/srv/cc/v5"
epoch = "v6a"

[ui]
accent = "39"
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.InputDir != "/srv/cc/v5" {
			t.Errorf("InputDir = %q, want /srv/cc/v5", cfg.InputDir)
		}
		if cfg.Epoch != "v6a" {
			t.Errorf("Epoch = %q, want v6a", cfg.Epoch)
		}
		if cfg.UI.Accent != "39" {
			t.Errorf("UI.Accent = %q, want 39", cfg.UI.Accent)
		}
		// Unset options keep their defaults.
		if cfg.SchemaDir != "schema" {
			t.Errorf("SchemaDir = %q, want schema", cfg.SchemaDir)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("input_dir = ["), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFrom(path); err == nil {
			t.Error("expected a parse error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})
}
