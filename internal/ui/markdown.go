package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

// MarkdownRenderMargin is the left margin used for terminal markdown rendering.
const MarkdownRenderMargin = 2

// RenderMarkdown renders markdown content for terminal display.
func RenderMarkdown(content string, width int) (string, error) {
	if width <= 0 {
		width = DefaultTermWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(markdownStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	rendered, err := r.Render(content)
	if err != nil {
		return "", err
	}

	// glamour adds trailing newlines; normalize to a single trailing newline.
	rendered = strings.TrimRight(rendered, "\n") + "\n"
	return rendered, nil
}

// markdownStyle is the dark auto-style with the configured accent applied
// to headings and links.
func markdownStyle() ansi.StyleConfig {
	style := styles.DarkStyleConfig
	style.Document.Margin = mdUintPtr(MarkdownRenderMargin)

	if color, ok := AccentColor(); ok {
		style.H1.Color = mdStringPtr(color)
		style.H2.Color = mdStringPtr(color)
		style.H3.Color = mdStringPtr(color)
		style.Link.Color = mdStringPtr(color)
	}
	return style
}

func mdStringPtr(s string) *string { return &s }
func mdUintPtr(u uint) *uint       { return &u }
