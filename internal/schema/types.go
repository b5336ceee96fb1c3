// Package schema handles loading of the v6 target schemas.
//
// A schema is a nested JSON object describing the keys a migrated document
// must contain. Object values are nested schema slices, anything else is an
// opaque leaf slot whose value is irrelevant; only key presence matters.
// Schemas are loaded once per run and never mutated.
package schema

import (
	"fmt"
	"sort"
	"strconv"
)

// Schema is one target schema document or a nested slice of one.
type Schema map[string]any

// Has reports whether the schema declares key.
func (s Schema) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Keys returns the schema's keys in sorted order.
func (s Schema) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Slice returns the nested schema under key.
func (s Schema) Slice(key string) (Schema, error) {
	v, ok := s[key]
	if !ok {
		return nil, fmt.Errorf("schema has no '%s' section", key)
	}
	nested, ok := AsObject(v)
	if !ok {
		return nil, fmt.Errorf("schema section '%s' is not an object", key)
	}
	return nested, nil
}

// AsObject returns the slot value as a nested schema if it is one.
func AsObject(slot any) (Schema, bool) {
	m, ok := slot.(map[string]any)
	if !ok {
		return nil, false
	}
	return Schema(m), true
}

// SkillSlot is one slot of the skills schema.
type SkillSlot struct {
	// Key is the slot's schema key ("1".."N" for numbered skill slots).
	Key string
	// Position is the 1-based skill slot index, or 0 for slots that are
	// not keyed by a number.
	Position int
	// Nested is the slot's schema slice, nil for scalar passthrough slots.
	Nested Schema
}

// SkillSlots returns the schema's slots in a stable order: numbered slots
// ascending by index, then the remaining slots sorted by key. The
// "awakening" slice is excluded; it is resolved separately against the
// preset's settings rather than its rotation.
func (s Schema) SkillSlots() []SkillSlot {
	var numbered, other []SkillSlot
	for key, value := range s {
		if key == "awakening" {
			continue
		}
		slot := SkillSlot{Key: key}
		if nested, ok := AsObject(value); ok {
			slot.Nested = nested
		}
		if n, err := strconv.Atoi(key); err == nil && n > 0 {
			slot.Position = n
			numbered = append(numbered, slot)
		} else {
			other = append(other, slot)
		}
	}

	sort.Slice(numbered, func(i, j int) bool { return numbered[i].Position < numbered[j].Position })
	sort.Slice(other, func(i, j int) bool { return other[i].Key < other[j].Key })
	return append(numbered, other...)
}
