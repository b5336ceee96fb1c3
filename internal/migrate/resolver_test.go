package migrate

import (
	"reflect"
	"testing"

	"github.com/crowvale/ccmigrate/internal/document"
	"github.com/crowvale/ccmigrate/internal/renames"
	"github.com/crowvale/ccmigrate/internal/schema"
)

func TestResolve(t *testing.T) {
	table := renames.Table{"interact": "interact_key", "heal_at": "hp_value"}

	t.Run("retained keys are copied", func(t *testing.T) {
		slice := schema.Schema{"map": 0, "sleep": 0}
		source := document.Document{"map": "M", "sleep": 1.5}

		got, unresolved := Resolve(slice, source, table)
		want := document.Document{"map": "M", "sleep": 1.5}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
		if len(unresolved) != 0 {
			t.Errorf("expected no unresolved keys, got %v", unresolved)
		}
	})

	t.Run("renamed keys are mapped", func(t *testing.T) {
		slice := schema.Schema{"interact": 0}
		source := document.Document{"interact_key": "E"}

		got, _ := Resolve(slice, source, table)
		if got["interact"] != "E" {
			t.Errorf("got %v, want interact=E", got)
		}
	})

	t.Run("source keys outside the schema are dropped", func(t *testing.T) {
		slice := schema.Schema{"map": 0}
		source := document.Document{"map": "M", "legacy_junk": 42}

		got, _ := Resolve(slice, source, table)
		if _, ok := got["legacy_junk"]; ok {
			t.Error("key outside the schema leaked into the result")
		}
	})

	t.Run("result keys are a subset of the schema", func(t *testing.T) {
		slice := schema.Schema{"interact": 0, "map": 0, "absent": 0}
		source := document.Document{"interact_key": "E", "map": "M", "extra": 1, "hp_value": 60}

		got, _ := Resolve(slice, source, table)
		for key := range got {
			if !slice.Has(key) {
				t.Errorf("result key %q is not in the schema", key)
			}
		}
	})

	t.Run("rename pass wins over retained pass", func(t *testing.T) {
		// A key that is both retained and a rename target only happens
		// when new and legacy names collide; the renamed lookup wins.
		selfTable := renames.Table{"mode": "mode_old"}
		slice := schema.Schema{"mode": 0}
		source := document.Document{"mode": "retained", "mode_old": "renamed"}

		got, _ := Resolve(slice, source, selfTable)
		if got["mode"] != "renamed" {
			t.Errorf("got %v, want the renamed value to win", got["mode"])
		}
	})

	t.Run("missing keys are tolerated and reported", func(t *testing.T) {
		slice := schema.Schema{"interact": 0, "map": 0}
		source := document.Document{}

		got, unresolved := Resolve(slice, source, table)
		if len(got) != 0 {
			t.Errorf("expected empty result, got %v", got)
		}
		want := []string{"interact", "map"}
		if !reflect.DeepEqual(unresolved, want) {
			t.Errorf("got unresolved %v, want %v", unresolved, want)
		}
	})

	t.Run("empty schema resolves to empty result", func(t *testing.T) {
		got, unresolved := Resolve(schema.Schema{}, document.Document{"a": 1}, table)
		if len(got) != 0 || len(unresolved) != 0 {
			t.Errorf("got %v / %v, want empty", got, unresolved)
		}
	})
}
