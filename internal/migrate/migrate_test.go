package migrate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/crowvale/ccmigrate/internal/document"
	"github.com/crowvale/ccmigrate/internal/renames"
	"github.com/crowvale/ccmigrate/internal/schema"
)

// recordingSink collects diagnostics for assertions.
type recordingSink struct {
	warnings []string
	coverage map[string][]string
}

func newRecordingSink() *recordingSink {
	return &recordingSink{coverage: make(map[string][]string)}
}

func (s *recordingSink) Infof(string, ...any) {}

func (s *recordingSink) Warnf(format string, args ...any) {
	s.warnings = append(s.warnings, fmt.Sprintf(format, args...))
}

func (s *recordingSink) Coverage(scope string, resolved, schemaKeys int, unresolved []string) {
	s.coverage[scope] = unresolved
}

func (s *recordingSink) hasWarning(substr string) bool {
	for _, w := range s.warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}

// testSchemas builds a small but complete v6 schema set: four settings
// sections plus a preset slice, ten skill slots with a scalar passthrough
// and an awakening slice, keybinds and a per-character altcycler slice.
func testSchemas() *schema.Set {
	skills := schema.Schema{
		"game_class": "str",
		"awakening":  map[string]any{"trigger": ""},
	}
	for i := 1; i <= 10; i++ {
		skills[fmt.Sprintf("%d", i)] = map[string]any{"key": "", "cast_time": 0}
	}

	return &schema.Set{
		Settings: schema.Schema{
			"global":    map[string]any{"show_fps": false},
			"chaos":     map[string]any{"heal_at": 0},
			"discord":   map[string]any{"webhook": ""},
			"altcycler": map[string]any{"selected_character": ""},
			"preset":    map[string]any{"allow_potions": false, "sleep": 0},
		},
		Skills:    skills,
		Keybinds:  schema.Schema{"map": "", "interact": ""},
		Altcycler: schema.Schema{"game_class": "", "position": 0},
	}
}

// testMigrator builds a migrator around one preset named "raid" with a
// fully populated rotation and indicator map.
func testMigrator(t *testing.T) *Migrator {
	t.Helper()

	rotationSlots := map[string]any{
		// game_class is only present under its legacy name.
		"class": "mage",
	}
	indicators := map[string]any{}
	for i := 1; i <= 10; i++ {
		rotationSlots[fmt.Sprintf("%d", i)] = map[string]any{
			"key":       fmt.Sprintf("f%d", i),
			"cast_time": i,
		}
	}
	for i := 1; i <= 8; i++ {
		indicators[fmt.Sprintf("skill_%d", i)] = []any{255, 0, float64(i)}
	}

	tables, err := renames.Load()
	if err != nil {
		t.Fatalf("failed to load rename tables: %v", err)
	}
	table, err := tables.Epoch("v6")
	if err != nil {
		t.Fatalf("failed to load v6 epoch: %v", err)
	}

	return &Migrator{
		Settings: document.Document{
			"global_keys": map[string]any{
				"show_fps":     true,
				"hp_value":     65,
				"webhook":      "https://example.invalid/hook",
				"current_char": "alt1",
				"move_with":    "LeftButton-Walk",
				"interact_key": "E",
				"map":          "M",
			},
			"raid": map[string]any{
				"use_potion": true,
				"sleep":      1.5,
				"trigger":    "z",
			},
		},
		Rotation: document.Document{
			"raid": rotationSlots,
		},
		Altcycler: document.Document{
			"char1": map[string]any{"class": "bard", "position": 2},
		},
		Indicators: document.Document{
			"raid": indicators,
		},
		Schemas: testSchemas(),
		Renames: table,
	}
}
