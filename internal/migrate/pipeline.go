package migrate

import "github.com/crowvale/ccmigrate/internal/document"

// Result holds the four migrated output documents.
type Result struct {
	Settings  document.Document // sections plus one object per preset
	Skills    document.Document // one object per preset
	Keybinds  document.Document // flat key -> bind
	Altcycler document.Document // one object per character
	Presets   []string
}

// Run performs a full migration. The consistency gate runs first so a
// preset mismatch can never leave partial results; after that the section
// mapping, preset expansion, keybind extraction and alt-cycler mapping are
// independent of each other. The first fatal error aborts the run.
func (m *Migrator) Run() (*Result, error) {
	if err := CheckPresets(m.Settings, m.Rotation, m.Indicators, m.sink()); err != nil {
		return nil, err
	}

	m.sink().Infof("mapping settings sections")
	settings, err := m.MapSections()
	if err != nil {
		return nil, err
	}

	m.sink().Infof("expanding presets")
	presets, skills, err := m.ExpandPresets()
	if err != nil {
		return nil, err
	}
	for id, preset := range presets {
		settings[id] = preset
	}

	m.sink().Infof("extracting keybinds")
	keybinds, err := m.ExtractKeybinds()
	if err != nil {
		return nil, err
	}

	m.sink().Infof("mapping alt-cycler characters")
	altcycler, err := m.MapAltcycler()
	if err != nil {
		return nil, err
	}

	return &Result{
		Settings:  settings,
		Skills:    skills,
		Keybinds:  keybinds,
		Altcycler: altcycler,
		Presets:   PresetIDs(m.Settings),
	}, nil
}
