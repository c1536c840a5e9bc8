package components

import (
	"fmt"
	"strings"

	"github.com/jkhomeclaw/tripview/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForPct returns green/yellow/orange/red as spending approaches the budget.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 1:
		return string(t.Red)
	case pct >= 0.85:
		return string(t.Orange)
	case pct >= 0.6:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// BudgetBar renders "label ▕████░░░▏ 42%  detail" for budget usage.
// Ratios above 1 fill the bar and show the real percentage.
func BudgetBar(label string, ratio float64, detail string, labelW, barWidth int) string {
	t := theme.Active

	fill := min(max(ratio, 0), 1)

	bar := progress.New(
		progress.WithSolidFill(ColorForPct(ratio)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForPct(ratio))).Background(t.Surface).Bold(true)
	detailStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	pad := labelW - lipgloss.Width(label)
	if pad < 0 {
		pad = 0
	}

	return labelStyle.Render(label+strings.Repeat(" ", pad)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(fill) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", ratio*100)) +
		spaceStyle.Render("  ") +
		detailStyle.Render(detail)
}
