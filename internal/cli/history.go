package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/crowvale/ccmigrate/internal/history"
	"github.com/crowvale/ccmigrate/internal/ui"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previous migration runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := getConfig().HistoryPath
		if path == "" {
			return handleError(ErrHistoryError,
				fmt.Errorf("history recording is disabled (history_path is empty)"), "")
		}

		db, err := history.Open(path)
		if err != nil {
			return handleError(ErrHistoryError, err, "")
		}
		defer db.Close()

		runs, err := db.List(historyLimit)
		if err != nil {
			return handleError(ErrHistoryError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(runs, nil)
			return nil
		}

		if len(runs) == 0 {
			fmt.Println(ui.Hint("No migration runs recorded yet."))
			return nil
		}

		for _, run := range runs {
			symbol := ui.SymbolSuccess
			if run.Status != "ok" {
				symbol = ui.SymbolError
			}
			line := fmt.Sprintf("%s %s  epoch %s  %s",
				symbol,
				run.Timestamp.Local().Format(time.DateTime),
				run.Epoch,
				ui.Count(run.Presets, "preset", "presets"))
			if run.Unresolved > 0 {
				line += " " + ui.Hint(fmt.Sprintf("%d unresolved", run.Unresolved))
			}
			fmt.Println(line)
			if run.Message != "" {
				fmt.Println(ui.Hint("    " + run.Message))
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to list")
	rootCmd.AddCommand(historyCmd)
}
