package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/crowvale/ccmigrate/internal/config"
	"github.com/crowvale/ccmigrate/internal/ui"
)

var (
	// Global flags
	configPath    string
	inputDirFlag  string
	schemaDirFlag string
	outputDirFlag string
	epochFlag     string

	// Loaded config, flag overrides applied
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ccmigrate",
	Short: "Migrate deprecated v5 configs to the v6 format",
	Long: `ccmigrate reshapes a legacy v5 configuration (settings, skill
rotations, alt-cycler character map and RGB indicator assignments) into
the v6 document layout.

The legacy files are never modified; the migrated documents are written
to a separate output directory.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "completion", "help", "version", "docs", "show", "init":
			return nil
		}

		var err error
		if configPath != "" {
			cfg, err = config.LoadFrom(configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		applyFlagOverrides(cmd.Flags())
		ui.ConfigureTheme(cfg.UI.Accent)
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&inputDirFlag, "input", "", "Directory holding the legacy v5 documents")
	rootCmd.PersistentFlags().StringVar(&schemaDirFlag, "schema-dir", "", "Directory holding the v6 target schemas")
	rootCmd.PersistentFlags().StringVar(&outputDirFlag, "output", "", "Directory the migrated documents are written to")
	rootCmd.PersistentFlags().StringVar(&epochFlag, "epoch", "", "Rename table epoch (auto, v6a, v6)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for script use)")
}

// applyFlagOverrides lets explicit flags win over config file values.
func applyFlagOverrides(flags *pflag.FlagSet) {
	if flags.Changed("input") {
		cfg.InputDir = inputDirFlag
	}
	if flags.Changed("schema-dir") {
		cfg.SchemaDir = schemaDirFlag
	}
	if flags.Changed("output") {
		cfg.OutputDir = outputDirFlag
	}
	if flags.Changed("epoch") {
		cfg.Epoch = epochFlag
	}
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	return cfg
}
