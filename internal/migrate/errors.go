package migrate

import "errors"

// Fatal error kinds. Wrapped into the descriptive errors the components
// return so the CLI can map them to stable error codes.
var (
	// ErrPresetMismatch: the input documents disagree on the preset set.
	ErrPresetMismatch = errors.New("preset set mismatch")

	// ErrMissingKey: a mandatory scalar skill field has no direct or
	// renamed source value.
	ErrMissingKey = errors.New("missing required key")

	// ErrMissingIndicator: no indicator entry for a skill slot in 1..8.
	ErrMissingIndicator = errors.New("missing indicator entry")

	// ErrMalformedField: a compound field cannot be split as expected.
	ErrMalformedField = errors.New("malformed field")
)
