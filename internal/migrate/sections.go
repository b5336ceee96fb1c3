package migrate

import (
	"fmt"

	"github.com/crowvale/ccmigrate/internal/document"
	"github.com/crowvale/ccmigrate/internal/renames"
	"github.com/crowvale/ccmigrate/internal/schema"
)

// GlobalKeysField is the settings sub-document that v5 flattened every
// global option and keybind into.
const GlobalKeysField = "global_keys"

// SettingsSections are the fixed sections of the v6 settings document.
var SettingsSections = []string{"global", "chaos", "discord", "altcycler"}

// Migrator holds the loaded inputs for one migration run. All fields are
// read-only for the duration of the run.
type Migrator struct {
	Settings   document.Document // legacy settings.json
	Rotation   document.Document // legacy customrotation.json
	Altcycler  document.Document // legacy acrc.json
	Indicators document.Document // legacy rgb.json
	Schemas    *schema.Set
	Renames    renames.Table
	Sink       Sink
}

func (m *Migrator) sink() Sink {
	if m.Sink == nil {
		return NopSink{}
	}
	return m.Sink
}

// MapSections resolves the four fixed settings sections. Every section
// reads from the same global_keys bag; v5 made no distinction between
// global, chaos, discord and alt-cycler options.
func (m *Migrator) MapSections() (document.Document, error) {
	source, err := m.Settings.Child(GlobalKeysField)
	if err != nil {
		return nil, fmt.Errorf("settings config: %w", err)
	}

	out := document.Document{}
	for _, section := range SettingsSections {
		slice, err := m.Schemas.Settings.Slice(section)
		if err != nil {
			return nil, err
		}
		resolved, unresolved := Resolve(slice, source, m.Renames)
		m.sink().Coverage("settings."+section, len(resolved), len(slice), unresolved)
		out[section] = map[string]any(resolved)
	}
	return out, nil
}

// MapAltcycler resolves each character of the alt-cycler character map
// against the altcycler schema.
func (m *Migrator) MapAltcycler() (document.Document, error) {
	out := document.Document{}
	for _, name := range m.Altcycler.Keys() {
		char, err := m.Altcycler.Child(name)
		if err != nil {
			return nil, fmt.Errorf("altcycler config: %w", err)
		}
		resolved, unresolved := Resolve(m.Schemas.Altcycler, char, m.Renames)
		m.sink().Coverage("altcycler."+name, len(resolved), len(m.Schemas.Altcycler), unresolved)
		out[name] = map[string]any(resolved)
	}
	return out, nil
}
