// Package document handles loading, saving and traversal of the JSON
// configuration documents that make up a v5 config and its v6 replacement.
package document

import (
	"fmt"
	"sort"
)

// Document is a loaded JSON object. Legacy documents are read-only once
// loaded; output documents are built up incrementally and handed to Save.
type Document map[string]any

// Has reports whether the document contains key at the top level.
func (d Document) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Keys returns the document's top-level keys in sorted order.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Child returns the nested object under key.
func (d Document) Child(key string) (Document, error) {
	v, ok := d[key]
	if !ok {
		return nil, fmt.Errorf("missing object '%s'", key)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("'%s' is not an object", key)
	}
	return Document(m), nil
}

// String returns the string value under key.
func (d Document) String(key string) (string, error) {
	v, ok := d[key]
	if !ok {
		return "", fmt.Errorf("missing field '%s'", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field '%s' is not a string", key)
	}
	return s, nil
}
