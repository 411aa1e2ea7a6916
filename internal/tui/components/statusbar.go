package components

import (
	"strings"

	"github.com/theirongolddev/estimasi/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Flash is a transient status message.
type Flash struct {
	Text  string
	Error bool
}

// RenderStatusBar renders the bottom status bar: key hints on the left,
// the flash message (if any) on the right.
func RenderStatusBar(width int, hints string, flash Flash) string {
	t := theme.Active

	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	flashStyle := lipgloss.NewStyle().Foreground(t.Money).Background(t.Surface).Bold(true)
	if flash.Error {
		flashStyle = flashStyle.Foreground(t.Danger)
	}
	fill := lipgloss.NewStyle().Background(t.Surface)

	left := hintStyle.Render(" " + hints)
	right := ""
	if flash.Text != "" {
		right = flashStyle.Render(flash.Text + " ")
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		// Hints yield to the flash message on narrow terminals.
		left = ""
		padding = width - lipgloss.Width(right)
		if padding < 0 {
			padding = 0
		}
	}

	return left + fill.Render(strings.Repeat(" ", padding)) + right
}
