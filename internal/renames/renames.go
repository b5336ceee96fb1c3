// Package renames holds the versioned key rename tables.
//
// A rename table maps a v6 key name to the v5 key its value is found under.
// The tables are data, not code: they ship as an embedded YAML artifact and
// can be overridden with an external file, so a future rename epoch is a
// table edit rather than a resolver change.
package renames

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var embedded []byte

// DefaultEpoch is the table used when detection finds no older input.
const DefaultEpoch = "v6"

// Table maps new key name -> legacy key name. New keys are unique; the
// algorithm does not care whether two new keys share a legacy source.
type Table map[string]string

// Pair is one rename entry.
type Pair struct {
	New    string
	Legacy string
}

// Pairs returns the table's entries sorted by new key, so the rename pass
// applies in a stable order.
func (t Table) Pairs() []Pair {
	pairs := make([]Pair, 0, len(t))
	for newKey, legacyKey := range t {
		pairs = append(pairs, Pair{New: newKey, Legacy: legacyKey})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].New < pairs[j].New })
	return pairs
}

// Tables holds every known rename epoch.
type Tables struct {
	Epochs map[string]Table `yaml:"epochs"`
}

// Load parses the embedded rename tables.
func Load() (*Tables, error) {
	return parse(embedded)
}

// LoadFile parses rename tables from an external override file.
func LoadFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rename tables %s: %w", path, err)
	}
	return parse(data)
}

func parse(data []byte) (*Tables, error) {
	var tables Tables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse rename tables: %w", err)
	}
	if len(tables.Epochs) == 0 {
		return nil, fmt.Errorf("rename tables declare no epochs")
	}
	return &tables, nil
}

// Epoch returns the table for a named epoch.
func (ts *Tables) Epoch(name string) (Table, error) {
	table, ok := ts.Epochs[name]
	if !ok {
		return nil, fmt.Errorf("unknown rename epoch '%s'", name)
	}
	return table, nil
}

// Detect picks the epoch for a legacy global-keys document. The latest
// table wins unless none of its extra legacy keys appear in the input, in
// which case the input predates it and the earlier table applies.
func (ts *Tables) Detect(globalKeys map[string]any) string {
	latest, ok := ts.Epochs[DefaultEpoch]
	if !ok {
		return firstEpoch(ts.Epochs)
	}
	earlier, ok := ts.Epochs["v6a"]
	if !ok {
		return DefaultEpoch
	}

	for newKey, legacyKey := range latest {
		if _, inEarlier := earlier[newKey]; inEarlier {
			continue
		}
		if _, present := globalKeys[legacyKey]; present {
			return DefaultEpoch
		}
	}
	return "v6a"
}

func firstEpoch(epochs map[string]Table) string {
	names := make([]string, 0, len(epochs))
	for name := range epochs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names[0]
}
