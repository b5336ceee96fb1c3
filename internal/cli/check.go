package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crowvale/ccmigrate/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the v5 config without writing anything",
	Long: `Runs the whole migration in memory and reports resolution coverage:
how many schema keys each section, preset and skill slot could fill, and
which ones had no source value. Nothing is written.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sink := newSink()

		m, epoch, err := loadMigrator(sink)
		if err != nil {
			return handleError(preflightErrorCode(err), err, "")
		}
		sink.Infof("using rename epoch %s", epoch)

		result, err := m.Run()
		if err != nil {
			return handleError(migrationErrorCode(err), err, "")
		}

		if isJSONOutput() {
			outputSuccess(struct {
				Presets    []string `json:"presets"`
				Epoch      string   `json:"epoch"`
				Unresolved int      `json:"unresolved_keys"`
			}{result.Presets, epoch, sink.unresolved}, sink.warnings)
			return nil
		}

		fmt.Println(ui.Successf("Config is migratable %s", ui.Count(len(result.Presets), "preset", "presets")))
		if sink.unresolved > 0 {
			fmt.Println(ui.Hint(fmt.Sprintf("  %d optional schema keys have no source value and will be absent from the output", sink.unresolved)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
