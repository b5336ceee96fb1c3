package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/crowvale/ccmigrate/internal/document"
	"github.com/crowvale/ccmigrate/internal/history"
	"github.com/crowvale/ccmigrate/internal/migrate"
	"github.com/crowvale/ccmigrate/internal/ui"
)

var runDryRun bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Migrate the v5 config to the v6 layout",
	Long: `Run the full migration: validate the inputs, reshape every section,
preset and keybind, and write the four v6 documents.

The output directory is wiped of previous .json outputs only after the
whole migration has succeeded in memory, so a failed run never leaves a
half-written output directory. Use --dry-run to stop before writing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		sink := newSink()

		m, epoch, err := loadMigrator(sink)
		if err != nil {
			return handleError(preflightErrorCode(err), err, "")
		}
		sink.Infof("using rename epoch %s", epoch)

		result, err := m.Run()
		if err != nil {
			recordRun(sink, "failed", epoch, 0, err)
			return handleError(migrationErrorCode(err), err, "")
		}

		outputs := map[string]document.Document{
			"settings":  result.Settings,
			"skills":    result.Skills,
			"keybinds":  result.Keybinds,
			"altcycler": result.Altcycler,
		}

		if runDryRun {
			if isJSONOutput() {
				outputSuccess(runSummary(result, epoch, sink, start, true), sink.warnings)
				return nil
			}
			fmt.Println(ui.Successf("Dry run complete: %d presets, %d unresolved optional keys. Nothing written.",
				len(result.Presets), sink.unresolved))
			return nil
		}

		outputDir := getConfig().OutputDir
		if err := document.WipeJSON(outputDir); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}
		for _, name := range outputFiles {
			if err := document.Save(filepath.Join(outputDir, name+".json"), outputs[name]); err != nil {
				return handleError(ErrFileWriteError, err, "")
			}
		}

		recordRun(sink, "ok", epoch, len(result.Presets), nil)

		if isJSONOutput() {
			outputSuccess(runSummary(result, epoch, sink, start, false), sink.warnings)
			return nil
		}
		fmt.Println(ui.Successf("Migration complete in %s %s",
			time.Since(start).Round(time.Millisecond),
			ui.Count(len(result.Presets), "preset", "presets")))
		if sink.unresolved > 0 {
			fmt.Println(ui.Hint(fmt.Sprintf("  %d optional schema keys had no source value", sink.unresolved)))
		}
		fmt.Printf("Output written to %s\n", ui.FilePath(outputDir))
		return nil
	},
}

type runSummaryView struct {
	Presets    []string `json:"presets"`
	Epoch      string   `json:"epoch"`
	Unresolved int      `json:"unresolved_keys"`
	DurationMs int64    `json:"duration_ms"`
	DryRun     bool     `json:"dry_run"`
	OutputDir  string   `json:"output_dir,omitempty"`
}

func runSummary(result *migrate.Result, epoch string, sink *cliSink, start time.Time, dryRun bool) runSummaryView {
	view := runSummaryView{
		Presets:    result.Presets,
		Epoch:      epoch,
		Unresolved: sink.unresolved,
		DurationMs: time.Since(start).Milliseconds(),
		DryRun:     dryRun,
	}
	if !dryRun {
		view.OutputDir = getConfig().OutputDir
	}
	return view
}

// recordRun appends the run to the history database. History is
// best-effort; a failure here must not fail the migration.
func recordRun(sink *cliSink, status, epoch string, presets int, runErr error) {
	path := getConfig().HistoryPath
	if path == "" || runDryRun {
		return
	}

	db, err := history.Open(path)
	if err != nil {
		sink.warn(WarnHistorySkipped, "history not recorded: %v", err)
		return
	}
	defer db.Close()

	message := ""
	if runErr != nil {
		message = runErr.Error()
	}
	if err := db.Record(history.Run{
		Status:     status,
		Epoch:      epoch,
		Presets:    presets,
		Unresolved: sink.unresolved,
		Message:    message,
	}); err != nil {
		sink.warn(WarnHistorySkipped, "history not recorded: %v", err)
	}
}

// preflightErrorCode classifies errors raised before the migration proper.
func preflightErrorCode(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "missing schema"):
		return ErrSchemaNotFound
	case strings.Contains(msg, "parse schema"):
		return ErrSchemaInvalid
	case strings.Contains(msg, "missing file"):
		return ErrFileNotFound
	case strings.Contains(msg, "rename epoch"), strings.Contains(msg, "rename tables"):
		return ErrEpochUnknown
	default:
		return ErrConfigInvalid
	}
}

// migrationErrorCode maps the migrate package's fatal error kinds to
// stable CLI codes.
func migrationErrorCode(err error) string {
	switch {
	case errors.Is(err, migrate.ErrPresetMismatch):
		return ErrPresetMismatch
	case errors.Is(err, migrate.ErrMissingKey):
		return ErrKeyUnresolved
	case errors.Is(err, migrate.ErrMissingIndicator):
		return ErrIndicatorMissing
	case errors.Is(err, migrate.ErrMalformedField):
		return ErrFieldMalformed
	default:
		return ErrInternal
	}
}

func init() {
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Perform the migration without writing any output")
	rootCmd.AddCommand(runCmd)
}
