package components

import (
	"strconv"

	"github.com/jkhomeclaw/tripview/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// DayLabel is the selector text for a day number.
func DayLabel(dayNumber int) string {
	return "Day " + strconv.Itoa(dayNumber)
}

func dayTabStyle(active bool) lipgloss.Style {
	t := theme.Active
	if active {
		return lipgloss.NewStyle().
			Foreground(t.TextPrimary).
			Background(t.Accent).
			Bold(true).
			Padding(0, 1)
	}
	return lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Padding(0, 1)
}

// DayTabWidth is the rendered width of one selector tab.
func DayTabWidth(dayNumber int, active bool) int {
	return lipgloss.Width(dayTabStyle(active).Render(DayLabel(dayNumber)))
}

// RenderDayBar renders the horizontal day selector. Tabs are separated by a
// single column; the row is filled to width with the surface color.
func RenderDayBar(dayNumbers []int, activeIdx, width int) string {
	t := theme.Active
	sep := lipgloss.NewStyle().Background(t.Surface).Render(" ")

	row := ""
	for i, n := range dayNumbers {
		row += dayTabStyle(i == activeIdx).Render(DayLabel(n))
		if i < len(dayNumbers)-1 {
			row += sep
		}
	}

	return lipgloss.NewStyle().
		Background(t.Surface).
		Width(width).
		MaxWidth(width).
		Render(row)
}
