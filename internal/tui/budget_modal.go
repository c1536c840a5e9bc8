package tui

import (
	"fmt"
	"strings"

	"github.com/jkhomeclaw/tripview/internal/cli"
	"github.com/jkhomeclaw/tripview/internal/tui/components"
	"github.com/jkhomeclaw/tripview/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const maxModalWidth = 72

func (a App) viewBudgetModal() string {
	t := theme.Active
	details, ok := a.summary.ByCategory(a.modal)
	if !ok {
		return a.viewMain()
	}
	accent := components.CategoryColor(a.modal)

	w := min(a.width-4, maxModalWidth)
	inner := w - 8

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Background(t.Surface).
		Padding(1, 3).
		Width(w)

	titleStyle := lipgloss.NewStyle().Foreground(accent).Background(t.Surface).Bold(true)
	totalStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	dayStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	costStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render(details.Title + " details"))
	b.WriteString("\n")
	b.WriteString(totalStyle.Render(cli.FormatHome(details.Currency, details.Total)))
	b.WriteString("\n\n")

	if len(details.Items) == 0 {
		b.WriteString(hintStyle.Render("No items"))
	}

	// Leave room for the modal chrome and footer.
	maxRows := max(a.height-12, 3)
	for i, item := range details.Items {
		if i == maxRows && len(details.Items) > maxRows {
			b.WriteString(hintStyle.Render(fmt.Sprintf("… %d more", len(details.Items)-maxRows)))
			break
		}
		cost := cli.FormatMoney(item.Currency, item.Cost)
		dayCol := fmt.Sprintf("D%-3d", item.DayNumber)
		nameW := max(inner-lipgloss.Width(cost)-lipgloss.Width(dayCol)-2, 8)
		name := truncStr(item.Name, nameW)
		gap := max(nameW-lipgloss.Width(name), 0)

		b.WriteString(dayStyle.Render(dayCol))
		b.WriteString(nameStyle.Render(name + strings.Repeat(" ", gap+2)))
		b.WriteString(costStyle.Render(cost))
		if i < len(details.Items)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("[a/t/f/e] switch  [esc] close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}
