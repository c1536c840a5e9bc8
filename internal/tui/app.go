// Package tui provides the interactive Bubble Tea itinerary viewer for tripview.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jkhomeclaw/tripview/internal/cli"
	"github.com/jkhomeclaw/tripview/internal/config"
	"github.com/jkhomeclaw/tripview/internal/model"
	"github.com/jkhomeclaw/tripview/internal/money"
	"github.com/jkhomeclaw/tripview/internal/pipeline"
	"github.com/jkhomeclaw/tripview/internal/store"
	"github.com/jkhomeclaw/tripview/internal/tui/components"
	"github.com/jkhomeclaw/tripview/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// TripLoadedMsg is sent when a load or reload of the itinerary finishes.
type TripLoadedMsg struct {
	Trip     model.Trip
	Stale    bool
	Err      error
	LoadTime time.Duration
}

// Options configures a new App.
type Options struct {
	Location   string
	Defaults   model.Defaults
	NoCache    bool
	DefaultDay int
	NeedSetup  bool
}

// App is the root Bubble Tea model.
type App struct {
	// Data
	trip     model.Trip
	summary  model.BudgetSummary
	conv     money.Converter
	dayCosts []int64
	loaded   bool
	loadErr  error
	stale    bool
	loadTime time.Duration

	opts       Options
	refreshing bool

	// UI state
	width     int
	height    int
	activeDay int // index into trip.Days
	scroll    int
	showHelp  bool
	modal     model.Category // "" when closed

	// Checklist ticks are view-local and never written back.
	checked     map[string]bool
	checkCursor int

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals SetupValues
	needSetup bool

	spinner spinner.Model
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 120

	scrollOverhead    = 14 // approximate header + status bar height for half-page calc
	minHalfPageScroll = 1
	minContentHeight  = 5
)

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		opts:      opts,
		needSetup: opts.NeedSetup,
		spinner:   sp,
		checked:   make(map[string]bool),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadTripCmd(a.opts),
		a.spinner.Tick,
	)
}

// setTrip installs a freshly loaded trip and recomputes derived views.
func (a *App) setTrip(trip model.Trip) {
	prevDay := 0
	if a.loaded && a.activeDay < len(a.trip.Days) {
		prevDay = a.trip.Days[a.activeDay].DayNumber
	}

	a.trip = trip
	a.summary = pipeline.BudgetAll(trip)
	a.conv = money.NewConverter(trip.Meta)
	a.dayCosts = make([]int64, len(trip.Days))
	for i, d := range trip.Days {
		a.dayCosts[i] = pipeline.DayCost(trip, d)
	}

	want := prevDay
	if want == 0 {
		want = a.opts.DefaultDay
	}
	a.activeDay = 0
	if idx := pipeline.DayIndex(trip, want); idx >= 0 {
		a.activeDay = idx
	}
	a.clampScroll()
}

func (a *App) selectDay(idx int) {
	if idx < 0 || idx >= len(a.trip.Days) || idx == a.activeDay {
		return
	}
	a.activeDay = idx
	a.scroll = 0
	a.checkCursor = 0
}

func (a App) currentDay() (model.Day, bool) {
	if a.activeDay < 0 || a.activeDay >= len(a.trip.Days) {
		return model.Day{}, false
	}
	return a.trip.Days[a.activeDay], true
}

func checkKey(dayNumber, idx int) string {
	return fmt.Sprintf("%d/%d", dayNumber, idx)
}

func (a *App) toggleCheck() {
	day, ok := a.currentDay()
	if !ok || len(day.Checklist) == 0 {
		return
	}
	k := checkKey(day.DayNumber, a.checkCursor)
	a.checked[k] = !a.checked[k]
}

func (a *App) clampScroll() {
	a.scroll = min(max(a.scroll, 0), a.maxScroll())
}

// maxScroll is the largest offset that still fills the content zone.
func (a App) maxScroll() int {
	if !a.loaded || a.height == 0 {
		return 0
	}
	contentH := max(a.height-a.headerLayout().height-1, minContentHeight)
	lines := strings.Count(a.renderDay(a.contentWidth()), "\n") + 1
	return max(lines-contentH, 0)
}

func (a App) halfPage() int {
	halfPage := (a.height - scrollOverhead) / 2
	if halfPage < minHalfPageScroll {
		halfPage = minHalfPageScroll
	}
	return halfPage
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.setupForm != nil {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		return a.updateKey(msg)

	case TripLoadedMsg:
		a.refreshing = false
		a.loadTime = msg.LoadTime
		if msg.Err != nil {
			// A failed reload keeps the trip already on screen.
			if !a.loaded {
				a.loadErr = msg.Err
			}
			return a, nil
		}
		a.loadErr = nil
		a.stale = msg.Stale
		a.setTrip(msg.Trip)
		a.loaded = true

		if a.needSetup && a.setupForm == nil {
			a.setupVals = NewSetupValues(loadConfigOrDefault())
			a.setupForm = NewSetupForm(&a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded && a.loadErr == nil {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if !a.loaded {
		switch key {
		case "q", "esc":
			return a, tea.Quit
		case "r":
			if a.loadErr != nil {
				a.loadErr = nil
				return a, tea.Batch(loadTripCmd(a.opts), a.spinner.Tick)
			}
		}
		return a, nil
	}

	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	if a.modal != "" {
		switch key {
		case "esc", "q", "enter", "backspace":
			a.modal = ""
		default:
			if cat, ok := categoryForKey(key); ok {
				a.modal = cat
			}
		}
		return a, nil
	}

	if cat, ok := categoryForKey(key); ok {
		a.modal = cat
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "r":
		if !a.refreshing {
			a.refreshing = true
			return a, loadTripCmd(a.opts)
		}
	case "left", "h":
		a.selectDay(a.activeDay - 1)
	case "right", "l":
		a.selectDay(a.activeDay + 1)
	case "home":
		a.selectDay(0)
	case "end":
		a.selectDay(len(a.trip.Days) - 1)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		a.selectDay(pipeline.DayIndex(a.trip, int(key[0]-'0')))
	case "0":
		a.selectDay(pipeline.DayIndex(a.trip, 10))
	case "j", "down":
		a.scroll++
		a.clampScroll()
	case "k", "up":
		a.scroll--
		a.clampScroll()
	case "g":
		a.scroll = 0
	case "ctrl+d":
		a.scroll += a.halfPage()
		a.clampScroll()
	case "ctrl+u":
		a.scroll -= a.halfPage()
		a.clampScroll()
	case "tab":
		if day, ok := a.currentDay(); ok && len(day.Checklist) > 0 {
			a.checkCursor = (a.checkCursor + 1) % len(day.Checklist)
		}
	case "shift+tab":
		if day, ok := a.currentDay(); ok && len(day.Checklist) > 0 {
			a.checkCursor = (a.checkCursor - 1 + len(day.Checklist)) % len(day.Checklist)
		}
	case " ", "x":
		a.toggleCheck()
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.modal == "" {
			a.scroll--
			a.clampScroll()
		}
		return a, nil

	case tea.MouseButtonWheelDown:
		if a.modal == "" {
			a.scroll++
			a.clampScroll()
		}
		return a, nil

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}
		if a.modal != "" {
			a.modal = ""
			return a, nil
		}
		layout := a.headerLayout()
		x := msg.X - a.contentLeft()
		switch {
		case msg.Y == layout.dayBarRow:
			if idx := a.dayAtX(x); idx >= 0 {
				a.selectDay(idx)
			}
		case msg.Y >= layout.cardsTop && msg.Y < layout.cardsBottom:
			if idx := cardAtX(x, a.contentWidth()); idx >= 0 {
				a.modal = model.Categories[idx]
			}
		}
	}
	return a, nil
}

func categoryForKey(key string) (model.Category, bool) {
	switch key {
	case "a":
		return model.CategoryAccommodation, true
	case "t":
		return model.CategoryTransport, true
	case "f":
		return model.CategoryFood, true
	case "e":
		return model.CategoryAttraction, true
	}
	return "", false
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		cfg := loadConfigOrDefault()
		a.needSetup = false
		a.setupForm = nil
		if err := a.setupVals.Apply(&cfg); err != nil {
			return a, nil
		}
		_ = config.Save(cfg)
		theme.SetActive(cfg.Appearance.Theme)

		if cfg.General.Data != a.opts.Location || cfg.Defaults() != a.opts.Defaults {
			a.opts.Location = cfg.General.Data
			a.opts.Defaults = cfg.Defaults()
			a.refreshing = true
			return a, loadTripCmd(a.opts)
		}
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// contentLeft is the column where the centered content zone starts.
func (a App) contentLeft() int {
	return (a.width - a.contentWidth()) / 2
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		if a.loadErr != nil {
			return a.viewError()
		}
		return a.viewLoading()
	}

	if a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	if a.modal != "" {
		return a.viewBudgetModal()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  tripview needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("🌸 tripview"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Loading " + a.opts.Location))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewError() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Background(t.Surface).
		Padding(1, 3).
		Width(min(a.width-4, 70))

	titleStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	body := titleStyle.Render("Failed to load itinerary") + "\n\n" +
		errStyle.Render(a.loadErr.Error()) + "\n\n" +
		hintStyle.Render("[r] retry  [q] quit")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Days", []struct{ key, desc string }{
			{"← → h l", "Previous / Next day"},
			{"1-9 0", "Jump to day"},
			{"j k", "Scroll"},
			{"^d ^u", "Half-page scroll"},
		}},
		{"Budget", []struct{ key, desc string }{
			{"a", "Accommodation"},
			{"t", "Transport"},
			{"f", "Food"},
			{"e", "Tickets"},
			{"Esc", "Close details"},
		}},
		{"Other", []struct{ key, desc string }{
			{"Tab", "Next checklist item"},
			{"Space x", "Tick checklist item"},
			{"r", "Reload data"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, s := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(s.title))
		b.WriteString("\n")
		for _, bind := range s.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

// headerRows records where clickable header regions land on screen.
type headerRows struct {
	cardsTop    int
	cardsBottom int
	dayBarRow   int
	height      int
}

func (a App) headerLayout() headerRows {
	title := a.renderTitle(a.contentWidth())
	cards := a.renderBudgetCards(a.contentWidth())
	bar := a.renderBudgetBar(a.contentWidth())

	var l headerRows
	l.cardsTop = lipgloss.Height(title)
	l.cardsBottom = l.cardsTop + lipgloss.Height(cards)
	l.dayBarRow = l.cardsBottom + lipgloss.Height(bar)
	l.height = l.dayBarRow + 1
	return l
}

func (a App) renderHeader(cw int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		a.renderTitle(cw),
		a.renderBudgetCards(cw),
		a.renderBudgetBar(cw),
		components.RenderDayBar(a.dayNumbers(), a.activeDay, cw),
	)
}

func (a App) renderTitle(cw int) string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true).
		Width(cw).
		Padding(0, 1)
	subStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(cw).
		Padding(0, 1)

	m := a.trip.Meta
	title := m.Title
	if title == "" {
		title = "Trip"
	}
	sub := fmt.Sprintf("%d days · %d travelers", m.DaysCount, m.Travelers)
	if m.Location != "" {
		sub = m.Location + " · " + sub
	}
	return titleStyle.Render(title) + "\n" + subStyle.Render(sub)
}

func (a App) dayNumbers() []int {
	nums := make([]int, len(a.trip.Days))
	for i, d := range a.trip.Days {
		nums[i] = d.DayNumber
	}
	return nums
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := a.renderHeader(cw)

	info := fmt.Sprintf("%d stops · loaded in %s", a.trip.StopCount(), a.loadTime.Round(time.Millisecond))
	if a.stale {
		info = "offline: showing cached copy"
	}
	if a.refreshing {
		info = "reloading..."
	}
	statusBar := components.RenderStatusBar(w, info, a.stale)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := max(h-headerH-statusH, minContentHeight)

	content := a.renderDay(cw)
	content = scrollLines(content, a.scroll, contentH)
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)

	header = lipgloss.Place(w, headerH, lipgloss.Center, lipgloss.Top, header,
		lipgloss.WithWhitespaceBackground(t.Background))
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

// loadConfigOrDefault loads config, returning defaults on error.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// loadTripCmd loads the itinerary in the background, preferring the cache.
func loadTripCmd(opts Options) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		ctx := context.Background()

		if !opts.NoCache {
			if cache, err := store.Open(pipeline.CachePath()); err == nil {
				res, loadErr := pipeline.LoadWithCache(ctx, opts.Location, opts.Defaults, cache)
				_ = cache.Close()
				if loadErr == nil {
					return TripLoadedMsg{Trip: res.Trip, Stale: res.Stale, LoadTime: time.Since(start)}
				}
			}
		}

		trip, err := pipeline.Load(ctx, opts.Location, opts.Defaults)
		return TripLoadedMsg{Trip: trip, Err: err, LoadTime: time.Since(start)}
	}
}

// scrollLines drops the first offset lines, clamped so the last screenful
// stays visible.
func scrollLines(s string, offset, height int) string {
	lines := strings.Split(s, "\n")
	maxOffset := max(len(lines)-height, 0)
	offset = min(max(offset, 0), maxOffset)
	return strings.Join(lines[offset:], "\n")
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= limit {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > limit {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// dayAtX returns the day index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderDayBar.
func (a App) dayAtX(x int) int {
	pos := 0
	for i, d := range a.trip.Days {
		tabW := components.DayTabWidth(d.DayNumber, i == a.activeDay)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(a.trip.Days)-1 {
			pos++
		}
	}
	return -1
}

// cardAtX maps an X coordinate within the content zone to a budget card index.
func cardAtX(x, width int) int {
	if x < 0 {
		return -1
	}
	pos := 0
	for i, w := range components.LayoutRow(width, len(model.Categories)) {
		if x < pos+w {
			return i
		}
		pos += w
	}
	return -1
}

// formatConverted renders a cost with its home-currency equivalent.
func (a App) formatConverted(amount float64, currency string) string {
	return cli.FormatConverted(a.conv, amount, currency)
}
