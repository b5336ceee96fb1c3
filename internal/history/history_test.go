package history

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndList(t *testing.T) {
	db := openTestDB(t)

	runs := []Run{
		{Status: "ok", Epoch: "v6", Presets: 2, Unresolved: 3, DurationMs: 12},
		{Status: "failed", Epoch: "v6a", Message: "presets missing from rotation config: raid"},
	}
	for _, run := range runs {
		if err := db.Record(run); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	got, err := db.List(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}

	t.Run("newest first", func(t *testing.T) {
		if got[0].Status != "failed" || got[1].Status != "ok" {
			t.Errorf("order = [%s %s], want [failed ok]", got[0].Status, got[1].Status)
		}
	})

	t.Run("fields round trip", func(t *testing.T) {
		ok := got[1]
		if ok.Epoch != "v6" || ok.Presets != 2 || ok.Unresolved != 3 || ok.DurationMs != 12 {
			t.Errorf("got %+v, want the recorded ok run", ok)
		}
		if got[0].Message == "" {
			t.Error("failed run should keep its message")
		}
	})

	t.Run("timestamp is filled when absent", func(t *testing.T) {
		if got[0].Timestamp.IsZero() {
			t.Error("timestamp should default to now")
		}
	})
}

func TestListLimit(t *testing.T) {
	db := openTestDB(t)
	for i := 0; i < 5; i++ {
		if err := db.Record(Run{Status: "ok", Epoch: "v6"}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := db.List(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("len(got) = %d, want 3", len(got))
	}
}

func TestExplicitTimestamp(t *testing.T) {
	db := openTestDB(t)
	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	if err := db.Record(Run{Timestamp: ts, Status: "ok", Epoch: "v6"}); err != nil {
		t.Fatal(err)
	}

	got, err := db.List(1)
	if err != nil {
		t.Fatal(err)
	}
	if !got[0].Timestamp.Equal(ts) {
		t.Errorf("timestamp = %v, want %v", got[0].Timestamp, ts)
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer db.Close()

	if err := db.Record(Run{Status: "ok", Epoch: "v6"}); err != nil {
		t.Errorf("record: %v", err)
	}
}
