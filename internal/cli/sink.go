package cli

import (
	"fmt"
	"strings"

	"github.com/crowvale/ccmigrate/internal/ui"
)

// cliSink prints resolution diagnostics as they happen and keeps the
// totals the run summary and history record need. In JSON mode printing
// is suppressed and warnings are collected into the response envelope.
type cliSink struct {
	quiet      bool
	unresolved int
	warnings   []Warning
}

func newSink() *cliSink {
	return &cliSink{quiet: isJSONOutput()}
}

func (s *cliSink) Infof(format string, args ...any) {
	if s.quiet {
		return
	}
	fmt.Println(ui.Infof(format, args...))
}

func (s *cliSink) Warnf(format string, args ...any) {
	s.warn(WarnPresetName, format, args...)
}

func (s *cliSink) warn(code, format string, args ...any) {
	s.warnings = append(s.warnings, Warning{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	})
	if s.quiet {
		return
	}
	fmt.Println(ui.Warningf(format, args...))
}

func (s *cliSink) Coverage(scope string, resolved, schemaKeys int, unresolved []string) {
	s.unresolved += len(unresolved)
	if s.quiet {
		if len(unresolved) > 0 {
			s.warnings = append(s.warnings, Warning{
				Code:    WarnUnresolvedKeys,
				Message: fmt.Sprintf("%s: unresolved keys: %s", scope, strings.Join(unresolved, ", ")),
			})
		}
		return
	}

	line := fmt.Sprintf("  %s: %d/%d keys", ui.Accent.Render(scope), resolved, schemaKeys)
	if len(unresolved) > 0 {
		line += " " + ui.Hint("(unresolved: "+strings.Join(unresolved, ", ")+")")
	}
	fmt.Println(line)
}
