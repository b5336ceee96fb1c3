package migrate

// Sink receives resolution diagnostics. Diagnostics are informational;
// nothing the sink does feeds back into migration decisions.
type Sink interface {
	// Infof reports progress.
	Infof(format string, args ...any)
	// Warnf reports a non-fatal oddity in the input.
	Warnf(format string, args ...any)
	// Coverage reports how much of a schema slice could be resolved.
	// unresolved names the schema keys left unfilled, if any.
	Coverage(scope string, resolved, schemaKeys int, unresolved []string)
}

// NopSink discards all diagnostics.
type NopSink struct{}

func (NopSink) Infof(string, ...any)              {}
func (NopSink) Warnf(string, ...any)              {}
func (NopSink) Coverage(string, int, int, []string) {}
