package cli

import (
	"fmt"
	"path/filepath"

	"github.com/crowvale/ccmigrate/internal/document"
	"github.com/crowvale/ccmigrate/internal/migrate"
	"github.com/crowvale/ccmigrate/internal/renames"
	"github.com/crowvale/ccmigrate/internal/schema"
)

// inputFiles are the legacy v5 documents a migration needs, without extension.
var inputFiles = []string{"settings", "customrotation", "acrc", "rgb"}

// outputFiles maps output file names to their slot in a migration result.
var outputFiles = []string{"settings", "skills", "keybinds", "altcycler"}

// loadMigrator validates that every required file exists, loads the inputs
// and schemas, and picks the rename epoch. It returns the ready migrator
// and the epoch it settled on.
func loadMigrator(sink *cliSink) (*migrate.Migrator, string, error) {
	c := getConfig()

	// Validate presence up front so the operator gets a descriptive
	// message rather than a generic read failure mid-run.
	for _, name := range inputFiles {
		path := filepath.Join(c.InputDir, name+".json")
		if !document.Exists(path) {
			return nil, "", fmt.Errorf("missing file to parse '%s' (expected at %s)", name, path)
		}
	}

	schemas, err := schema.Load(c.SchemaDir)
	if err != nil {
		return nil, "", err
	}

	settings, err := document.Load(filepath.Join(c.InputDir, "settings.json"))
	if err != nil {
		return nil, "", err
	}
	rotation, err := document.Load(filepath.Join(c.InputDir, "customrotation.json"))
	if err != nil {
		return nil, "", err
	}
	altcycler, err := document.Load(filepath.Join(c.InputDir, "acrc.json"))
	if err != nil {
		return nil, "", err
	}
	indicators, err := document.Load(filepath.Join(c.InputDir, "rgb.json"))
	if err != nil {
		return nil, "", err
	}

	table, epoch, err := loadRenameTable(settings)
	if err != nil {
		return nil, "", err
	}

	return &migrate.Migrator{
		Settings:   settings,
		Rotation:   rotation,
		Altcycler:  altcycler,
		Indicators: indicators,
		Schemas:    schemas,
		Renames:    table,
		Sink:       sink,
	}, epoch, nil
}

// loadRenameTable loads the rename tables (built-in or the configured
// override) and selects the epoch, detecting it from the input when the
// config says auto.
func loadRenameTable(settings document.Document) (renames.Table, string, error) {
	c := getConfig()

	var tables *renames.Tables
	var err error
	if c.RenameTables != "" {
		tables, err = renames.LoadFile(c.RenameTables)
	} else {
		tables, err = renames.Load()
	}
	if err != nil {
		return nil, "", err
	}

	epoch := c.Epoch
	if epoch == "" || epoch == "auto" {
		globalKeys, err := settings.Child(migrate.GlobalKeysField)
		if err != nil {
			return nil, "", fmt.Errorf("settings config: %w", err)
		}
		epoch = tables.Detect(globalKeys)
	}

	table, err := tables.Epoch(epoch)
	if err != nil {
		return nil, "", err
	}
	return table, epoch, nil
}
