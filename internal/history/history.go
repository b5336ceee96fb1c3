// Package history records migration runs in a local SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DB is the run-history database handle.
type DB struct {
	db *sql.DB
}

// Run is one recorded migration run.
type Run struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"ts"`
	Status     string    `json:"status"` // ok or failed
	Epoch      string    `json:"epoch"`
	Presets    int       `json:"presets"`
	Unresolved int       `json:"unresolved_keys"`
	DurationMs int64     `json:"duration_ms"`
	Message    string    `json:"message,omitempty"`
}

// Open opens or creates the history database at path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	d := &DB{db: db}
	if err := d.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// OpenMemory opens an in-memory history database (for tests).
func OpenMemory() (*DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	d := &DB{db: db}
	if err := d.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) initialize() error {
	_, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ts TEXT NOT NULL,
			status TEXT NOT NULL,
			epoch TEXT NOT NULL,
			presets INTEGER NOT NULL,
			unresolved INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			message TEXT NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return nil
}

// Record appends a run to the history.
func (d *DB) Record(run Run) error {
	if run.Timestamp.IsZero() {
		run.Timestamp = time.Now().UTC()
	}
	_, err := d.db.Exec(
		`INSERT INTO runs (ts, status, epoch, presets, unresolved, duration_ms, message)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Timestamp.Format(time.RFC3339), run.Status, run.Epoch,
		run.Presets, run.Unresolved, run.DurationMs, run.Message,
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first.
func (d *DB) List(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.db.Query(
		`SELECT id, ts, status, epoch, presets, unresolved, duration_ms, message
		 FROM runs ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}

	return scanRows(rows, func(rows *sql.Rows) (Run, error) {
		var run Run
		var ts string
		if err := rows.Scan(&run.ID, &ts, &run.Status, &run.Epoch,
			&run.Presets, &run.Unresolved, &run.DurationMs, &run.Message); err != nil {
			return Run{}, err
		}
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			run.Timestamp = parsed
		}
		return run, nil
	})
}

// scanRows scans all rows into a slice using the provided scanner.
func scanRows[T any](rows *sql.Rows, scan func(*sql.Rows) (T, error)) ([]T, error) {
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
