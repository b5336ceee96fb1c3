package cli

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	builtindocs "github.com/crowvale/ccmigrate/docs"
	"github.com/crowvale/ccmigrate/internal/ui"
)

var docsStdoutIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Browse the bundled documentation",
	Long: `Render the Markdown documentation bundled into the ccmigrate binary.

Without a topic, the migration guide is shown. 'ccmigrate docs list'
names all available topics.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topics, err := listBundledTopics()
		if err != nil {
			return handleError(ErrInternal, err, "Rebuild ccmigrate so bundled docs are available")
		}

		if len(args) == 1 && args[0] == "list" {
			for _, topic := range topics {
				fmt.Println(topic)
			}
			return nil
		}

		topic := "migration"
		if len(args) == 1 {
			topic = args[0]
		}

		content, err := builtindocs.FS.ReadFile("guide/" + topic + ".md")
		if err != nil {
			return handleError(ErrFileNotFound,
				fmt.Errorf("no doc topic '%s'", topic),
				"Run 'ccmigrate docs list' to see available topics")
		}

		if !docsStdoutIsTerminal() {
			fmt.Print(string(content))
			return nil
		}

		display := ui.NewDisplayContext()
		rendered, err := ui.RenderMarkdown(string(content), display.TermWidth)
		if err != nil {
			return handleError(ErrInternal, err, "")
		}
		fmt.Print(rendered)
		return nil
	},
}

func listBundledTopics() ([]string, error) {
	entries, err := fs.ReadDir(builtindocs.FS, "guide")
	if err != nil {
		return nil, err
	}

	var topics []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		topics = append(topics, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(topics)
	return topics, nil
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
