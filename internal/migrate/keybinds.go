package migrate

import (
	"fmt"
	"strings"

	"github.com/crowvale/ccmigrate/internal/document"
)

const (
	// moveWithField is the compound v5 field holding the movement trigger,
	// e.g. "LeftButton-Walk".
	moveWithField = "move_with"

	// primaryPointerKey is the derived keybind naming the mouse button the
	// tool drives movement with.
	primaryPointerKey = "primary_pointer_device"
)

// ExtractKeybinds resolves the keybinds schema against the settings
// global_keys bag, then derives the primary pointer device from the
// compound move_with field. That field always exists in a v5 config, so a
// missing or undelimited value is fatal.
func (m *Migrator) ExtractKeybinds() (document.Document, error) {
	source, err := m.Settings.Child(GlobalKeysField)
	if err != nil {
		return nil, fmt.Errorf("settings config: %w", err)
	}

	resolved, unresolved := Resolve(m.Schemas.Keybinds, source, m.Renames)
	m.sink().Coverage("keybinds", len(resolved), len(m.Schemas.Keybinds), unresolved)

	moveWith, err := source.String(moveWithField)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedField, err)
	}
	device, _, found := strings.Cut(moveWith, "-")
	if !found {
		return nil, fmt.Errorf("%w: '%s' value %q has no '-' separator", ErrMalformedField, moveWithField, moveWith)
	}
	resolved[primaryPointerKey] = device

	return resolved, nil
}
