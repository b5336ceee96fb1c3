// Package cli implements the command-line interface.
package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	// Preflight errors
	ErrConfigInvalid  = "CONFIG_INVALID"
	ErrFileNotFound   = "FILE_NOT_FOUND"
	ErrSchemaNotFound = "SCHEMA_NOT_FOUND"
	ErrSchemaInvalid  = "SCHEMA_INVALID"
	ErrEpochUnknown   = "EPOCH_UNKNOWN"

	// Migration errors
	ErrPresetMismatch   = "PRESET_MISMATCH"
	ErrKeyUnresolved    = "KEY_UNRESOLVED"
	ErrIndicatorMissing = "INDICATOR_MISSING"
	ErrFieldMalformed   = "FIELD_MALFORMED"

	// Output errors
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// General errors
	ErrHistoryError = "HISTORY_ERROR"
	ErrInternal     = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnUnresolvedKeys = "UNRESOLVED_KEYS"
	WarnPresetName     = "PRESET_NAME"
	WarnHistorySkipped = "HISTORY_SKIPPED"
)
