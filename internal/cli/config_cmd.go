package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crowvale/ccmigrate/internal/config"
	"github.com/crowvale/ccmigrate/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the ccmigrate configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		exists := true
		if _, err := os.Stat(path); os.IsNotExist(err) {
			exists = false
		}

		var c *config.Config
		var err error
		if configPath != "" {
			c, err = config.LoadFrom(configPath)
		} else {
			c, err = config.Load()
		}
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]any{
				"config_path":   path,
				"exists":        exists,
				"input_dir":     c.InputDir,
				"schema_dir":    c.SchemaDir,
				"output_dir":    c.OutputDir,
				"epoch":         c.Epoch,
				"rename_tables": c.RenameTables,
				"history_path":  c.HistoryPath,
				"ui":            map[string]any{"accent": c.UI.Accent},
			}, nil)
			return nil
		}

		if !exists {
			fmt.Printf("Config file does not exist: %s\n", ui.FilePath(path))
			fmt.Println(ui.Hint("Run 'ccmigrate config init' to create it. Defaults are in effect."))
		} else {
			fmt.Printf("config: %s\n", ui.FilePath(path))
		}
		fmt.Printf("input_dir:  %s\n", c.InputDir)
		fmt.Printf("schema_dir: %s\n", c.SchemaDir)
		fmt.Printf("output_dir: %s\n", c.OutputDir)
		fmt.Printf("epoch:      %s\n", c.Epoch)
		if c.RenameTables != "" {
			fmt.Printf("rename_tables: %s\n", c.RenameTables)
		}
		if c.HistoryPath != "" {
			fmt.Printf("history:    %s\n", c.HistoryPath)
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a commented default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefault()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]string{"config_path": path}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Config ready at %s", ui.FilePath(path)))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
