package components

import (
	"strings"

	"github.com/jkhomeclaw/tripview/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with key hints on the left
// and info (data age, stale warning) on the right.
func RenderStatusBar(width int, info string, warn bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " [←→]day  [a/t/f/e]budget  [?]help  [q]uit"
	right := info + " "
	if warn {
		right = lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface).Render(info) + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
