package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Files lists the schema documents a migration needs, without extension.
var Files = []string{"settings", "skills", "keybinds", "altcycler"}

// Set holds the four loaded v6 schemas.
type Set struct {
	Settings  Schema
	Skills    Schema
	Keybinds  Schema
	Altcycler Schema
}

// Load reads all schema files from dir.
// Every file is required; a missing schema aborts before any parsing.
func Load(dir string) (*Set, error) {
	for _, name := range Files {
		path := filepath.Join(dir, name+".json")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("missing schema '%s' (expected at %s)", name, path)
		}
	}

	set := &Set{}
	targets := map[string]*Schema{
		"settings":  &set.Settings,
		"skills":    &set.Skills,
		"keybinds":  &set.Keybinds,
		"altcycler": &set.Altcycler,
	}
	for name, target := range targets {
		path := filepath.Join(dir, name+".json")
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %s: %w", path, err)
		}
		if err := json.Unmarshal(data, target); err != nil {
			return nil, fmt.Errorf("failed to parse schema %s: %w", path, err)
		}
	}
	return set, nil
}
