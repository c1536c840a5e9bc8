package components

import (
	"github.com/jkhomeclaw/tripview/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// TagColor returns the badge color for a stop tag. Unknown tags are dim.
func TagColor(tag string) lipgloss.Color {
	t := theme.Active
	switch tag {
	case "📷 攝影點":
		return t.Magenta
	case "🚁 可空拍":
		return t.Blue
	case "🚫 禁空拍":
		return t.Red
	case "🌸 必訪", "🌸 櫻花":
		return t.Accent
	case "⛩️ 必訪", "⛩️ 神社":
		return t.Orange
	case "🍖 美食":
		return t.Green
	case "🍱 午餐", "🍱 晚餐":
		return t.GreenBright
	default:
		return t.TextMuted
	}
}

// Badge renders a tag as a small colored pill.
func Badge(tag string) string {
	t := theme.Active
	return lipgloss.NewStyle().
		Foreground(TagColor(tag)).
		Background(t.SurfaceHover).
		Padding(0, 1).
		Render(tag)
}

// Badges renders tags separated by a space.
func Badges(tags []string) string {
	out := ""
	for i, tag := range tags {
		if i > 0 {
			out += " "
		}
		out += Badge(tag)
	}
	return out
}
