package components

import (
	"strings"
	"testing"

	"github.com/jkhomeclaw/tripview/internal/model"
	"github.com/jkhomeclaw/tripview/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToWidth(t *testing.T) {
	for _, total := range []int{80, 81, 83, 120} {
		widths := LayoutRow(total, 4)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != total {
			t.Errorf("LayoutRow(%d, 4) sums to %d", total, sum)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow with n=0 should be nil")
	}
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("sakura")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("Test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Errorf("Joined height should match tallest card: got %d, want %d", len(lines), tallLines)
	}

	// Padding below the short card must carry background styling.
	for i := shortLines; i < len(lines); i++ {
		if !strings.Contains(lines[i], "\x1b[") {
			t.Errorf("Line %d has no ANSI codes", i)
		}
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	theme.SetActive("sakura")

	cards := make([]Card, 0, len(model.Categories))
	for _, c := range model.Categories {
		cards = append(cards, Card{Label: c.Title(), Value: "TWD 1,234", Accent: CategoryColor(c)})
	}
	row := MetricCardRow(cards, 100)
	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 100 {
			t.Errorf("line %d width = %d, want 100", i, w)
		}
	}
}

func TestDayTabWidth(t *testing.T) {
	// "Day 1" plus one column of padding each side.
	if got := DayTabWidth(1, false); got != 7 {
		t.Errorf("DayTabWidth(1) = %d, want 7", got)
	}
	if got := DayTabWidth(12, true); got != 8 {
		t.Errorf("DayTabWidth(12) = %d, want 8", got)
	}
}

func TestTagColorKnownAndUnknown(t *testing.T) {
	theme.SetActive("sakura")
	if TagColor("🚫 禁空拍") != theme.Active.Red {
		t.Error("no-drone tag should be red")
	}
	if TagColor("something else") != theme.Active.TextMuted {
		t.Error("unknown tag should be muted")
	}
}
