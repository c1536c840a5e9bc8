package web

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/jkhomeclaw/tripview/internal/cli"
	"github.com/jkhomeclaw/tripview/internal/model"
	"github.com/jkhomeclaw/tripview/internal/money"
	"github.com/jkhomeclaw/tripview/internal/pipeline"
)

// ErrDayNotFound is returned when a requested day number is not in the trip.
var ErrDayNotFound = errors.New("day not found")

//go:embed page.html.tmpl
var pageSource string

var pageTmpl = template.Must(template.New("page").Parse(pageSource))

// tagClasses maps well-known stop tags to badge styles.
var tagClasses = map[string]string{
	"📷 攝影點": "tag-purple",
	"🚁 可空拍": "tag-sky",
	"🚫 禁空拍": "tag-red",
	"🌸 必訪":  "tag-pink",
	"🌸 櫻花":  "tag-pink",
	"⛩️ 必訪":  "tag-orange",
	"⛩️ 神社":  "tag-orange",
	"🍖 美食":  "tag-green",
	"🍱 午餐":  "tag-emerald",
	"🍱 晚餐":  "tag-emerald",
}

// TagClass returns the CSS class for a tag badge.
func TagClass(tag string) string {
	if c, ok := tagClasses[tag]; ok {
		return c
	}
	return "tag-gray"
}

// PageData is everything the page template needs.
type PageData struct {
	Meta       model.TripMeta
	Cards      []CardView
	Total      string
	PerHead    string
	BudgetUsed string
	DayNumbers []int
	Active     int
	Days       []DayView
	Modals     []ModalView

	// Standalone pages render every day and every modal and switch between
	// them with in-page anchors instead of query parameters.
	Standalone bool
}

// CardView is one budget card.
type CardView struct {
	Category string
	Title    string
	Total    string
}

// DayView is one rendered day.
type DayView struct {
	Number        int
	Theme         string
	Date          string
	Accommodation string
	StayCost      string
	Alternatives  string
	Checklist     []string
	Total         string
	Stops         []StopView
}

// StopView is one rendered stop.
type StopView struct {
	Time        string
	Name        string
	Description string
	Transport   string
	Cost        string
	MapURL      string
	Tags        []TagView
}

// TagView is a tag badge.
type TagView struct {
	Name  string
	Class string
}

// ModalView is a rendered budget detail list.
type ModalView struct {
	Category string
	Title    string
	Total    string
	Items    []ItemView
}

// ItemView is one line of a budget detail list.
type ItemView struct {
	Day  int
	Name string
	Cost string
}

// NewPageData builds the page for one day, optionally with a budget modal
// open. day == 0 selects the first day.
func NewPageData(trip model.Trip, day int, modal model.Category) (PageData, error) {
	p := basePage(trip)
	if len(trip.Days) == 0 {
		return p, nil
	}

	idx := 0
	if day != 0 {
		idx = pipeline.DayIndex(trip, day)
		if idx < 0 {
			return p, fmt.Errorf("%w: %d", ErrDayNotFound, day)
		}
	}
	p.Active = trip.Days[idx].DayNumber
	p.Days = []DayView{newDayView(trip, trip.Days[idx])}

	if modal != "" {
		p.Modals = []ModalView{newModalView(pipeline.Budget(trip, modal))}
	}
	return p, nil
}

// NewStandalonePage builds a page with every day and every budget modal,
// for use without a server.
func NewStandalonePage(trip model.Trip) PageData {
	p := basePage(trip)
	p.Standalone = true
	for _, d := range trip.Days {
		p.Days = append(p.Days, newDayView(trip, d))
	}
	if len(trip.Days) > 0 {
		p.Active = trip.Days[0].DayNumber
	}
	for _, c := range model.Categories {
		p.Modals = append(p.Modals, newModalView(pipeline.Budget(trip, c)))
	}
	return p
}

// RenderPage writes the HTML page.
func RenderPage(w io.Writer, p PageData) error {
	return pageTmpl.Execute(w, p)
}

func basePage(trip model.Trip) PageData {
	s := pipeline.BudgetAll(trip)
	p := PageData{
		Meta:    trip.Meta,
		Total:   cli.FormatHome(s.HomeCurrency, s.Total),
		PerHead: cli.FormatHome(s.HomeCurrency, s.PerTraveler),
	}
	if s.Budget > 0 {
		p.BudgetUsed = cli.FormatPercent(s.BudgetUsed)
	}
	for _, d := range s.Categories {
		p.Cards = append(p.Cards, CardView{
			Category: string(d.Category),
			Title:    d.Title,
			Total:    cli.FormatHome(d.Currency, d.Total),
		})
	}
	for _, d := range trip.Days {
		p.DayNumbers = append(p.DayNumbers, d.DayNumber)
	}
	return p
}

func newDayView(trip model.Trip, d model.Day) DayView {
	conv := money.NewConverter(trip.Meta)
	v := DayView{
		Number:        d.DayNumber,
		Theme:         d.Theme,
		Date:          cli.FormatDate(d.Date, d.ParsedDate),
		Accommodation: d.Accommodation,
		Alternatives:  d.Alternatives,
		Checklist:     d.Checklist,
		Total:         cli.FormatHome(trip.Meta.HomeCurrency, pipeline.DayCost(trip, d)),
	}
	if d.AccommodationCost > 0 {
		v.StayCost = cli.FormatConverted(conv, d.AccommodationCost, d.AccommodationCurrency)
	}
	for _, s := range pipeline.SortStops(d) {
		sv := StopView{
			Time:        s.Time,
			Name:        s.Name,
			Description: s.Description,
			Transport:   s.Transport,
			MapURL:      s.MapURL(),
		}
		if s.Cost > 0 {
			sv.Cost = cli.FormatConverted(conv, s.Cost, s.Currency)
		}
		for _, tag := range s.Tags {
			sv.Tags = append(sv.Tags, TagView{Name: tag, Class: TagClass(tag)})
		}
		v.Stops = append(v.Stops, sv)
	}
	return v
}

func newModalView(d model.BudgetDetails) ModalView {
	m := ModalView{
		Category: string(d.Category),
		Title:    d.Title,
		Total:    cli.FormatHome(d.Currency, d.Total),
	}
	for _, it := range d.Items {
		m.Items = append(m.Items, ItemView{
			Day:  it.DayNumber,
			Name: it.Name,
			Cost: cli.FormatMoney(it.Currency, it.Cost),
		})
	}
	return m
}
