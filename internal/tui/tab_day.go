package tui

import (
	"fmt"
	"strings"

	"github.com/jkhomeclaw/tripview/internal/cli"
	"github.com/jkhomeclaw/tripview/internal/model"
	"github.com/jkhomeclaw/tripview/internal/tui/components"
	"github.com/jkhomeclaw/tripview/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const timeColWidth = 7

func (a App) renderBudgetCards(cw int) string {
	cards := make([]components.Card, 0, len(a.summary.Categories))
	for _, d := range a.summary.Categories {
		hint := fmt.Sprintf("[%s] %d items", categoryKey(d.Category), len(d.Items))
		cards = append(cards, components.Card{
			Label:  d.Title,
			Value:  cli.FormatHome(d.Currency, d.Total),
			Hint:   hint,
			Accent: components.CategoryColor(d.Category),
		})
	}
	return components.MetricCardRow(cards, cw)
}

func categoryKey(c model.Category) string {
	switch c {
	case model.CategoryAccommodation:
		return "a"
	case model.CategoryTransport:
		return "t"
	case model.CategoryFood:
		return "f"
	default:
		return "e"
	}
}

// renderBudgetBar shows total spend against the trip budget, or just the
// total and per-traveler split when no budget is set.
func (a App) renderBudgetBar(cw int) string {
	t := theme.Active
	s := a.summary
	rowStyle := lipgloss.NewStyle().Background(t.Surface).Width(cw).Padding(0, 1)

	total := cli.FormatHome(s.HomeCurrency, s.Total)
	perHead := cli.FormatHome(s.HomeCurrency, s.PerTraveler) + " each"

	if s.Budget <= 0 {
		mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		line := mutedStyle.Render("Total "+total+" · "+perHead+"  ") +
			components.Sparkline(a.dayCosts, t.Accent)
		return rowStyle.Render(line)
	}

	detail := total + " / " + cli.FormatHome(s.HomeCurrency, int64(s.Budget)) + " · " + perHead
	barW := max(cw-lipgloss.Width(detail)-20, 10)
	return rowStyle.Render(components.BudgetBar("Budget", s.BudgetUsed, detail, 6, barW))
}

// renderDay renders the selected day: summary card then the stop timeline.
func (a App) renderDay(cw int) string {
	day, ok := a.currentDay()
	if !ok {
		return ""
	}
	t := theme.Active
	inner := components.CardInnerWidth(cw)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)

	var info strings.Builder
	if date := cli.FormatDate(day.Date, day.ParsedDate); date != "" {
		info.WriteString(labelStyle.Render("📅 ") + valueStyle.Render(date) + "\n")
	}
	if day.HasAccommodation() {
		info.WriteString(labelStyle.Render("🏨 ") + valueStyle.Render(day.Accommodation))
		if day.AccommodationCost > 0 {
			info.WriteString(dimStyle.Render("  " + a.formatConverted(day.AccommodationCost, day.AccommodationCurrency)))
		}
		info.WriteString("\n")
	}
	if day.Alternatives != "" {
		info.WriteString(labelStyle.Render("☔ Rain plan: ") + valueStyle.Render(day.Alternatives) + "\n")
	}
	info.WriteString(labelStyle.Render("💰 Day total ≈ ") +
		accentStyle.Render(cli.FormatHome(a.trip.Meta.HomeCurrency, a.dayCosts[a.activeDay])))

	if len(day.Checklist) > 0 {
		info.WriteString("\n\n")
		info.WriteString(labelStyle.Render("Checklist"))
		for i, item := range day.Checklist {
			box := "[ ]"
			style := valueStyle
			if a.checked[checkKey(day.DayNumber, i)] {
				box = "[x]"
				style = greenStyle
			}
			cursor := "  "
			if i == a.checkCursor {
				cursor = accentStyle.Render("› ")
			}
			info.WriteString("\n" + cursor + style.Render(box+" "+truncStr(item, inner-6)))
		}
	}

	title := components.DayLabel(day.DayNumber)
	if day.Theme != "" {
		title += " · " + day.Theme
	}
	summary := components.ContentCard(truncStr(title, inner), info.String(), cw)

	timeline := components.ContentCard("Timeline", a.renderStops(day, inner), cw)

	return lipgloss.JoinVertical(lipgloss.Left, summary, timeline)
}

func (a App) renderStops(day model.Day, inner int) string {
	t := theme.Active
	if len(day.Stops) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render("No stops planned")
	}

	timeStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	transportStyle := lipgloss.NewStyle().Foreground(t.Blue).Background(t.Surface)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	costStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	linkStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Underline(true)

	indent := strings.Repeat(" ", timeColWidth)
	bodyW := max(inner-timeColWidth, 10)

	var b strings.Builder
	for i, s := range day.Stops {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(timeStyle.Render(fmt.Sprintf("%-*s", timeColWidth, s.Time)))
		b.WriteString(nameStyle.Render(truncStr(s.Name, bodyW)))
		if len(s.Tags) > 0 {
			b.WriteString("\n" + indent + components.Badges(s.Tags))
		}
		if s.Transport != "" {
			b.WriteString("\n" + indent + transportStyle.Render("🚃 "+s.Transport))
		}
		if s.Description != "" {
			wrapped := lipgloss.NewStyle().Width(bodyW).Render(s.Description)
			for _, line := range strings.Split(wrapped, "\n") {
				b.WriteString("\n" + indent + descStyle.Render(line))
			}
		}
		if s.Cost > 0 {
			b.WriteString("\n" + indent + costStyle.Render(a.formatConverted(s.Cost, s.Currency)))
		}
		if url := s.MapURL(); url != "" {
			b.WriteString("\n" + indent + linkStyle.Render("📍 "+url))
		}
	}
	return b.String()
}
