package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/jkhomeclaw/tripview/internal/config"
	"github.com/jkhomeclaw/tripview/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func testTrip() model.Trip {
	return model.Trip{
		Meta: model.TripMeta{
			Title:               "Tohoku Autumn",
			DaysCount:           3,
			Travelers:           2,
			HomeCurrency:        "TWD",
			DestinationCurrency: "JPY",
			ExchangeRate:        0.215,
		},
		Days: []model.Day{
			{
				DayNumber:             1,
				Theme:                 "Sendai",
				Date:                  "2026-10-01",
				Accommodation:         "Hotel Metropolitan",
				AccommodationCost:     12000,
				AccommodationCurrency: "JPY",
				Checklist:             []string{"JR Pass", "Suica"},
				Stops: []model.Stop{
					{Time: "09:00", Name: "Sendai Station", Transport: "JR", Cost: 1000, Currency: "JPY"},
					{Time: "12:00", Name: "牛舌 lunch", Cost: 2500, Currency: "JPY", Tags: []string{"🍖 美食"}, Lat: 38.26, Lng: 140.88},
				},
			},
			{
				DayNumber: 2,
				Theme:     "Matsushima",
				Stops: []model.Stop{
					{Time: "10:00", Name: "Zuiganji", Cost: 700, Currency: "JPY", Tags: []string{"⛩️ 神社"}},
				},
			},
			{DayNumber: 3, Theme: "Home"},
		},
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedApp(t *testing.T) App {
	t.Helper()
	a := NewApp(Options{Location: "data.json", DefaultDay: 1})
	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = m.(App).Update(TripLoadedMsg{Trip: testTrip()})
	return m.(App)
}

func press(t *testing.T, a App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		m, _ := a.Update(key(k))
		a = m.(App)
	}
	return a
}

func TestDayNavigation(t *testing.T) {
	a := loadedApp(t)
	if a.activeDay != 0 {
		t.Fatalf("initial day = %d", a.activeDay)
	}

	a = press(t, a, "right", "right", "right")
	if a.activeDay != 2 {
		t.Errorf("after right x3 activeDay = %d, want 2 (clamped)", a.activeDay)
	}
	a = press(t, a, "left")
	if a.activeDay != 1 {
		t.Errorf("after left activeDay = %d, want 1", a.activeDay)
	}
	a = press(t, a, "1")
	if a.activeDay != 0 {
		t.Errorf("after 1 activeDay = %d, want 0", a.activeDay)
	}
	a = press(t, a, "9")
	if a.activeDay != 0 {
		t.Errorf("jump past last day should be ignored, got %d", a.activeDay)
	}
}

func TestDayNavigation_NumberKeysUseDayNumbers(t *testing.T) {
	trip := testTrip()
	for i := range trip.Days {
		trip.Days[i].DayNumber = i + 3
	}
	a := NewApp(Options{})
	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = m.(App).Update(TripLoadedMsg{Trip: trip})
	a = m.(App)

	tests := []struct {
		key  string
		want int
	}{
		{"3", 0},
		{"5", 2},
		{"4", 1},
		{"1", 1}, // no day 1: selection unchanged
	}
	for _, tt := range tests {
		a = press(t, a, tt.key)
		if a.activeDay != tt.want {
			t.Errorf("after %q activeDay = %d, want %d", tt.key, a.activeDay, tt.want)
		}
	}
}

func TestDefaultDayOption(t *testing.T) {
	a := NewApp(Options{DefaultDay: 2})
	m, _ := a.Update(TripLoadedMsg{Trip: testTrip()})
	if got := m.(App).activeDay; got != 1 {
		t.Errorf("activeDay = %d, want index 1 for day 2", got)
	}

	a = NewApp(Options{DefaultDay: 42})
	m, _ = a.Update(TripLoadedMsg{Trip: testTrip()})
	if got := m.(App).activeDay; got != 0 {
		t.Errorf("unknown default day should fall back to first, got %d", got)
	}
}

func TestBudgetModalKeys(t *testing.T) {
	a := loadedApp(t)

	a = press(t, a, "f")
	if a.modal != model.CategoryFood {
		t.Fatalf("modal = %q, want food", a.modal)
	}
	view := a.View()
	if !strings.Contains(view, "Food details") || !strings.Contains(view, "牛舌 lunch") {
		t.Errorf("food modal missing content:\n%s", view)
	}

	a = press(t, a, "t")
	if a.modal != model.CategoryTransport {
		t.Errorf("modal = %q, want transport", a.modal)
	}
	a = press(t, a, "esc")
	if a.modal != "" {
		t.Errorf("esc should close modal, got %q", a.modal)
	}
}

func TestChecklistTicksAreViewLocal(t *testing.T) {
	a := loadedApp(t)
	a = press(t, a, "tab", "x")

	if !a.checked[checkKey(1, 1)] {
		t.Fatal("second checklist item should be ticked")
	}
	if a.checked[checkKey(1, 0)] {
		t.Error("first checklist item should not be ticked")
	}
	if len(a.trip.Days[0].Checklist) != 2 {
		t.Error("ticking must not alter the trip")
	}

	a = press(t, a, "x")
	if a.checked[checkKey(1, 1)] {
		t.Error("second press should untick")
	}

	a = press(t, a, "right")
	if a.checkCursor != 0 {
		t.Errorf("checkCursor = %d after day change, want 0", a.checkCursor)
	}
}

func TestQuitKeys(t *testing.T) {
	a := loadedApp(t)
	_, cmd := a.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestHelpToggle(t *testing.T) {
	a := loadedApp(t)
	a = press(t, a, "?")
	if !a.showHelp {
		t.Fatal("? should show help")
	}
	if !strings.Contains(a.View(), "Keyboard Shortcuts") {
		t.Error("help view missing title")
	}
	a = press(t, a, "j")
	if a.showHelp {
		t.Error("any key should close help")
	}
}

func TestViewMainShowsDay(t *testing.T) {
	a := loadedApp(t)
	view := a.View()
	for _, want := range []string{"Tohoku Autumn", "Day 1", "Sendai Station", "Hotel Metropolitan", "JR Pass"} {
		if !strings.Contains(view, want) {
			t.Errorf("main view missing %q", want)
		}
	}
	if got := len(strings.Split(view, "\n")); got != 40 {
		t.Errorf("view height = %d, want 40", got)
	}
}

func TestLoadErrorKeepsTrip(t *testing.T) {
	a := loadedApp(t)
	m, _ := a.Update(TripLoadedMsg{Err: errors.New("offline")})
	got := m.(App)
	if got.loadErr != nil || got.trip.Meta.Title != "Tohoku Autumn" {
		t.Error("failed reload should keep the loaded trip")
	}

	fresh := NewApp(Options{})
	m, _ = fresh.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = m.(App).Update(TripLoadedMsg{Err: errors.New("no such file")})
	got = m.(App)
	if got.loadErr == nil {
		t.Fatal("first load error should be kept")
	}
	if !strings.Contains(got.View(), "no such file") {
		t.Error("error view should show the error")
	}
}

func TestScrollLines(t *testing.T) {
	s := "a\nb\nc\nd\ne"
	if got := scrollLines(s, 2, 2); got != "c\nd\ne" {
		t.Errorf("scrollLines offset 2 = %q", got)
	}
	if got := scrollLines(s, 10, 2); got != "d\ne" {
		t.Errorf("scrollLines clamps to last screen, got %q", got)
	}
	if got := scrollLines(s, -3, 2); got != s {
		t.Errorf("negative offset = %q", got)
	}
}

func TestTruncStr(t *testing.T) {
	if got := truncStr("Matsushima", 20); got != "Matsushima" {
		t.Errorf("short string changed: %q", got)
	}
	if got := truncStr("Matsushima", 5); got != "Mats…" {
		t.Errorf("truncStr = %q", got)
	}
	if got := truncStr("牛舌定食", 5); got != "牛舌…" {
		t.Errorf("wide truncStr = %q, want 牛舌…", got)
	}
}

func TestSetupValuesApply(t *testing.T) {
	cfg := config.DefaultConfig()
	vals := NewSetupValues(cfg)
	if vals.Rate != "0.215" || vals.Theme != "sakura" {
		t.Fatalf("NewSetupValues = %+v", vals)
	}

	vals.Data = " https://example.com/data.json "
	vals.Home = "usd"
	vals.Rate = "0.0067"
	vals.Theme = "tokyo-night"
	if err := vals.Apply(&cfg); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if cfg.General.Data != "https://example.com/data.json" || cfg.Currency.Home != "USD" ||
		cfg.Currency.ExchangeRate != 0.0067 || cfg.Appearance.Theme != "tokyo-night" {
		t.Errorf("Apply produced %+v %+v %+v", cfg.General, cfg.Currency, cfg.Appearance)
	}

	for _, bad := range []string{"", "abc", "0", "-1"} {
		vals.Rate = bad
		if err := vals.Apply(&cfg); err == nil {
			t.Errorf("rate %q should be rejected", bad)
		}
	}
}

func TestCurrencyCode(t *testing.T) {
	for _, ok := range []string{"TWD", "jpy", " USD "} {
		if err := currencyCode(ok); err != nil {
			t.Errorf("currencyCode(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "TW", "TWDX", "T1D"} {
		if err := currencyCode(bad); err == nil {
			t.Errorf("currencyCode(%q) should fail", bad)
		}
	}
}
