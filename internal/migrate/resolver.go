// Package migrate implements the v5 to v6 configuration migration.
//
// The heart of the package is the key resolver: given a schema slice
// describing the keys the new format expects and a legacy source document,
// it projects the source onto the schema, first through retained key names
// and then through the rename table. Everything else in the package is
// orchestration of that projection over the fixed sections, the dynamic
// preset set and the keybind extraction.
package migrate

import (
	"github.com/crowvale/ccmigrate/internal/document"
	"github.com/crowvale/ccmigrate/internal/renames"
	"github.com/crowvale/ccmigrate/internal/schema"
)

// Resolve projects source onto the schema slice.
//
// Pass 1 copies every source key that kept its name in the new format.
// Pass 2 walks the rename table and copies source[legacy] under the new
// key wherever the schema wants the new key and the source still has the
// legacy one. Pass 2 runs last and its writes win, so a key that is both
// retained and a rename target ends up with the renamed lookup.
//
// The returned unresolved list names the schema keys no pass could fill.
// Missing keys are tolerated here; legacy configs routinely lack optional
// fields. Source keys the schema does not declare are silently dropped —
// this is a projection, not a validation.
func Resolve(slice schema.Schema, source document.Document, table renames.Table) (document.Document, []string) {
	out := document.Document{}

	for _, key := range source.Keys() {
		if slice.Has(key) {
			out[key] = source[key]
		}
	}

	for _, pair := range table.Pairs() {
		if !slice.Has(pair.New) {
			continue
		}
		if v, ok := source[pair.Legacy]; ok {
			out[pair.New] = v
		}
	}

	var unresolved []string
	for _, key := range slice.Keys() {
		if !out.Has(key) {
			unresolved = append(unresolved, key)
		}
	}
	return out, unresolved
}
