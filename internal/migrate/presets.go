package migrate

import (
	"fmt"

	goslug "github.com/gosimple/slug"

	"github.com/crowvale/ccmigrate/internal/document"
)

const (
	// indicatorSlotLimit is the first skill slot position that does NOT
	// carry an RGB indicator. Slots 1..8 map to physical indicator LEDs.
	indicatorSlotLimit = 9

	// awakeningKey is the derived sub-object of each preset's skill set.
	// Its values live in the preset's settings, not its rotation.
	awakeningKey = "awakening"

	// indicatorField is the key injected into each indicator-carrying slot.
	indicatorField = "indicator"

	// presetSettingsSection is the settings-schema slice applied to each
	// preset's own settings sub-document.
	presetSettingsSection = "preset"
)

// ExpandPresets migrates every preset. It returns the per-preset settings
// objects (merged into the settings output) and the skills output document
// (one object per preset, numbered slots plus the awakening object).
func (m *Migrator) ExpandPresets() (document.Document, document.Document, error) {
	settingsSlice, err := m.Schemas.Settings.Slice(presetSettingsSection)
	if err != nil {
		return nil, nil, err
	}

	presetsOut := document.Document{}
	skillsOut := document.Document{}

	for _, id := range PresetIDs(m.Settings) {
		if goslug.Make(id) != id {
			m.sink().Warnf("preset '%s' is not a well-formed identifier", id)
		}

		presetSettings, err := m.Settings.Child(id)
		if err != nil {
			return nil, nil, fmt.Errorf("preset '%s': %w", id, err)
		}
		resolved, unresolved := Resolve(settingsSlice, presetSettings, m.Renames)
		m.sink().Coverage(id+".settings", len(resolved), len(settingsSlice), unresolved)
		presetsOut[id] = map[string]any(resolved)

		skills, err := m.expandSkills(id, presetSettings)
		if err != nil {
			return nil, nil, err
		}
		skillsOut[id] = map[string]any(skills)
	}

	return presetsOut, skillsOut, nil
}

// expandSkills walks the skills schema for one preset. Numbered object
// slots resolve against the matching indexed sub-object of the preset's
// rotation; scalar slots are mandatory passthroughs looked up directly and
// then through the rename table.
func (m *Migrator) expandSkills(id string, presetSettings document.Document) (document.Document, error) {
	rotation, err := m.Rotation.Child(id)
	if err != nil {
		return nil, fmt.Errorf("rotation config: %w", err)
	}

	out := document.Document{}
	for _, slot := range m.Schemas.Skills.SkillSlots() {
		if slot.Nested != nil {
			source, _ := rotation.Child(slot.Key)
			resolved, unresolved := Resolve(slot.Nested, source, m.Renames)
			m.sink().Coverage(fmt.Sprintf("%s.skill_%s", id, slot.Key), len(resolved), len(slot.Nested), unresolved)

			if slot.Position > 0 && slot.Position < indicatorSlotLimit {
				if err := m.injectIndicator(id, slot.Position, resolved); err != nil {
					return nil, err
				}
			}
			out[slot.Key] = map[string]any(resolved)
			continue
		}

		// Scalar passthrough slots are mandatory; a preset that lacks
		// one under both its new and legacy name cannot be migrated.
		value, ok := rotation[slot.Key]
		if !ok {
			if legacy, renamed := m.Renames[slot.Key]; renamed {
				value, ok = rotation[legacy]
			}
		}
		if !ok {
			return nil, fmt.Errorf("%w: preset '%s' has no '%s' in its rotation", ErrMissingKey, id, slot.Key)
		}
		out[slot.Key] = value
	}

	awakening, err := m.Schemas.Skills.Slice(awakeningKey)
	if err != nil {
		return nil, err
	}
	resolved, unresolved := Resolve(awakening, presetSettings, m.Renames)
	m.sink().Coverage(id+"."+awakeningKey, len(resolved), len(awakening), unresolved)
	out[awakeningKey] = map[string]any(resolved)

	return out, nil
}

// injectIndicator copies the preset's per-slot RGB indicator value into a
// resolved skill slot. Indicator entries are a hard dependency; a missing
// one means the indicator config does not match the rotation.
func (m *Migrator) injectIndicator(id string, position int, slot document.Document) error {
	entry, err := m.Indicators.Child(id)
	if err != nil {
		return fmt.Errorf("%w: indicator config has no preset '%s'", ErrMissingIndicator, id)
	}
	key := fmt.Sprintf("skill_%d", position)
	value, ok := entry[key]
	if !ok {
		return fmt.Errorf("%w: indicator config for preset '%s' has no '%s'", ErrMissingIndicator, id, key)
	}
	slot[indicatorField] = value
	return nil
}
