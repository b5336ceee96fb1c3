package migrate

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/crowvale/ccmigrate/internal/document"
)

func TestRun(t *testing.T) {
	m := testMigrator(t)
	result, err := m.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("sections read from the shared global bag", func(t *testing.T) {
		global := result.Settings["global"].(map[string]any)
		if global["show_fps"] != true {
			t.Errorf("global.show_fps = %v, want true", global["show_fps"])
		}
		chaos := result.Settings["chaos"].(map[string]any)
		if chaos["heal_at"] != 65 {
			t.Errorf("chaos.heal_at = %v, want 65 (renamed from hp_value)", chaos["heal_at"])
		}
		altcycler := result.Settings["altcycler"].(map[string]any)
		if altcycler["selected_character"] != "alt1" {
			t.Errorf("altcycler.selected_character = %v, want alt1", altcycler["selected_character"])
		}
	})

	t.Run("preset settings are merged into the settings output", func(t *testing.T) {
		if _, ok := result.Settings["raid"]; !ok {
			t.Error("settings output is missing the raid preset")
		}
	})

	t.Run("keybinds output", func(t *testing.T) {
		if result.Keybinds["interact"] != "E" {
			t.Errorf("interact = %v, want E", result.Keybinds["interact"])
		}
		if result.Keybinds["primary_pointer_device"] != "LeftButton" {
			t.Errorf("primary_pointer_device = %v, want LeftButton", result.Keybinds["primary_pointer_device"])
		}
	})

	t.Run("altcycler characters are mapped", func(t *testing.T) {
		char, ok := result.Altcycler["char1"].(map[string]any)
		if !ok {
			t.Fatalf("missing char1, got %v", result.Altcycler)
		}
		if char["game_class"] != "bard" {
			t.Errorf("game_class = %v, want bard (renamed from class)", char["game_class"])
		}
		if char["position"] != 2 {
			t.Errorf("position = %v, want 2 (retained)", char["position"])
		}
	})

	t.Run("presets are listed", func(t *testing.T) {
		if !reflect.DeepEqual(result.Presets, []string{"raid"}) {
			t.Errorf("presets = %v, want [raid]", result.Presets)
		}
	})
}

func TestRunAbortsOnPresetMismatch(t *testing.T) {
	m := testMigrator(t)
	m.Rotation = document.Document{}

	_, err := m.Run()
	if !errors.Is(err, ErrPresetMismatch) {
		t.Fatalf("expected ErrPresetMismatch, got %v", err)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	first, err := testMigrator(t).Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := testMigrator(t).Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	outputs := []struct {
		name string
		a, b document.Document
	}{
		{"settings", first.Settings, second.Settings},
		{"skills", first.Skills, second.Skills},
		{"keybinds", first.Keybinds, second.Keybinds},
		{"altcycler", first.Altcycler, second.Altcycler},
	}
	for _, out := range outputs {
		a, err := document.Encode(out.a)
		if err != nil {
			t.Fatalf("encode %s: %v", out.name, err)
		}
		b, err := document.Encode(out.b)
		if err != nil {
			t.Fatalf("encode %s: %v", out.name, err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%s output is not byte-identical across runs", out.name)
		}
	}
}
