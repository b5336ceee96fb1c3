package ui

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
// - Default (white/black): Primary text
// - Accent (soft purple, overridable from config): highlights, paths, counts
// - Muted (gray): Secondary info, hints
// - No colored success/error/warning - use unicode symbols only

const defaultAccent = "#A78BFA"

var (
	// Accent style for file paths, preset names, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info and hints
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	accentColor = defaultAccent
)

var (
	ansiColorRe = regexp.MustCompile(`^[0-9]{1,3}$`)
	hexColorRe  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// ConfigureTheme applies an accent color from config. "none", "off" and
// "default" disable the accent; anything else invalid keeps the default.
func ConfigureTheme(accent string) {
	color, ok := normalizeAccentColor(accent)
	if !ok {
		if isDisableValue(accent) {
			accentColor = ""
			Accent = lipgloss.NewStyle()
		}
		return
	}
	accentColor = color
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// AccentColor returns the active accent color, if one is set.
func AccentColor() (string, bool) {
	if accentColor == "" {
		return "", false
	}
	return accentColor, true
}

func isDisableValue(accent string) bool {
	switch strings.ToLower(strings.TrimSpace(accent)) {
	case "none", "off", "default":
		return true
	}
	return false
}

func normalizeAccentColor(accent string) (string, bool) {
	accent = strings.TrimSpace(accent)
	if accent == "" || isDisableValue(accent) {
		return "", false
	}
	if ansiColorRe.MatchString(accent) {
		if n, err := strconv.Atoi(accent); err == nil && n <= 255 {
			return accent, true
		}
		return "", false
	}
	if hexColorRe.MatchString(accent) {
		if len(accent) == 4 {
			// Expand #abc to #aabbcc.
			r, g, b := accent[1], accent[2], accent[3]
			return strings.ToLower(fmt.Sprintf("#%c%c%c%c%c%c", r, r, g, g, b, b)), true
		}
		return strings.ToLower(accent), true
	}
	return "", false
}
