package migrate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/crowvale/ccmigrate/internal/document"
)

// ReservedSections are the fixed top-level keys of the settings document,
// legacy and current. Every other top-level key names a preset.
var ReservedSections = append([]string{GlobalKeysField}, SettingsSections...)

// PresetIDs returns the preset identifiers in a document: its top-level
// keys minus the reserved section names, sorted.
func PresetIDs(doc document.Document) []string {
	reserved := make(map[string]bool, len(ReservedSections))
	for _, name := range ReservedSections {
		reserved[name] = true
	}

	var ids []string
	for _, key := range doc.Keys() {
		if !reserved[key] {
			ids = append(ids, key)
		}
	}
	sort.Strings(ids)
	return ids
}

// CheckPresets verifies that settings, rotation and indicator documents
// agree on the preset set. It runs before any expansion so a mismatch can
// never produce partial output.
//
// Settings and rotation must match exactly. Every preset must also appear
// in the indicator document; extra indicator entries are harmless leftovers
// and only reported. The error names the offending presets.
func CheckPresets(settings, rotation, indicators document.Document, sink Sink) error {
	fromSettings := PresetIDs(settings)
	fromRotation := PresetIDs(rotation)
	fromIndicators := PresetIDs(indicators)

	if missing := diff(fromSettings, fromRotation); len(missing) > 0 {
		return fmt.Errorf("%w: presets missing from rotation config: %s", ErrPresetMismatch, strings.Join(missing, ", "))
	}
	if extra := diff(fromRotation, fromSettings); len(extra) > 0 {
		return fmt.Errorf("%w: presets missing from settings config: %s", ErrPresetMismatch, strings.Join(extra, ", "))
	}
	if missing := diff(fromSettings, fromIndicators); len(missing) > 0 {
		return fmt.Errorf("%w: presets missing from indicator config: %s", ErrPresetMismatch, strings.Join(missing, ", "))
	}
	if extra := diff(fromIndicators, fromSettings); len(extra) > 0 {
		sink.Warnf("indicator config has entries for unknown presets: %s", strings.Join(extra, ", "))
	}
	return nil
}

// diff returns the elements of a that are not in b, sorted.
func diff(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, s := range b {
		inB[s] = true
	}
	var out []string
	for _, s := range a {
		if !inB[s] {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
