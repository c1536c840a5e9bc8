package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jkhomeclaw/tripview/internal/cli"
	"github.com/jkhomeclaw/tripview/internal/model"
	"github.com/jkhomeclaw/tripview/internal/money"
	"github.com/jkhomeclaw/tripview/internal/pipeline"

	"github.com/phpdave11/gofpdf"
)

// PDFOptions tunes PDF output.
type PDFOptions struct {
	// FontPath is a UTF-8 TrueType font used for all text. Without it the
	// core Helvetica font is used and characters outside cp1252 are lost.
	FontPath string
}

const (
	pageW   = 210.0
	marginX = 15.0
	lineH   = 6.0
)

type pdfWriter struct {
	pdf    *gofpdf.Fpdf
	family string
	tr     func(string) string
}

// PDF writes a printable itinerary: a title page, one page per day and a
// budget breakdown.
func PDF(w io.Writer, trip model.Trip, opts PDFOptions) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginX, 15, marginX)
	pdf.SetAutoPageBreak(true, 15)

	pw := pdfWriter{pdf: pdf, family: "Helvetica", tr: func(s string) string { return s }}
	if opts.FontPath != "" {
		pdf.AddUTF8Font("body", "", opts.FontPath)
		pdf.AddUTF8Font("body", "B", opts.FontPath)
		pw.family = "body"
	} else {
		pw.tr = pdf.UnicodeTranslatorFromDescriptor("")
	}
	pdf.SetTitle(pw.tr(trip.Meta.Title), opts.FontPath != "")
	pdf.SetCreator("tripview", false)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(pw.family, "", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 5, strconv.Itoa(pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	summary := pipeline.BudgetAll(trip)
	pw.titlePage(trip, summary)
	conv := money.NewConverter(trip.Meta)
	for _, d := range trip.Days {
		pw.dayPage(trip, d, conv)
	}
	pw.budgetPage(summary)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func (p pdfWriter) font(style string, size float64) {
	p.pdf.SetFont(p.family, style, size)
}

func (p pdfWriter) line(text string) {
	p.pdf.MultiCell(0, lineH, p.tr(text), "", "", false)
}

func (p pdfWriter) heading(text string, size float64) {
	p.font("B", size)
	p.pdf.SetTextColor(219, 39, 119)
	p.pdf.MultiCell(0, size*0.5, p.tr(text), "", "", false)
	p.pdf.SetTextColor(31, 41, 55)
	p.pdf.Ln(2)
}

func (p pdfWriter) titlePage(trip model.Trip, s model.BudgetSummary) {
	m := trip.Meta
	p.pdf.AddPage()
	p.pdf.Ln(40)
	p.heading(m.Title, 24)

	p.font("", 12)
	if m.Location != "" {
		p.line(m.Location)
	}
	dates := fmt.Sprintf("%d days", m.DaysCount)
	if !m.StartDate.IsZero() {
		end := m.StartDate.AddDate(0, 0, max(m.DaysCount-1, 0))
		dates = m.StartDate.Format(model.DateLayout) + " to " + end.Format(model.DateLayout) + " · " + dates
	}
	p.line(dates)
	p.line(fmt.Sprintf("%d travelers", m.Travelers))
	p.pdf.Ln(8)

	p.font("B", 12)
	p.line("Estimated cost " + cli.FormatHome(s.HomeCurrency, s.Total))
	p.font("", 11)
	p.line(cli.FormatHome(s.HomeCurrency, s.PerTraveler) + " per traveler")
	if s.Budget > 0 {
		p.line("Budget " + cli.FormatHome(s.HomeCurrency, int64(s.Budget)) + " (" + cli.FormatPercent(s.BudgetUsed) + " used)")
	}
	p.line(fmt.Sprintf("1 %s = %s %s", m.DestinationCurrency, strconv.FormatFloat(m.ExchangeRate, 'f', -1, 64), m.HomeCurrency))
}

func (p pdfWriter) dayPage(trip model.Trip, d model.Day, conv money.Converter) {
	p.pdf.AddPage()
	title := "Day " + strconv.Itoa(d.DayNumber)
	if d.Theme != "" {
		title += ": " + d.Theme
	}
	p.heading(title, 18)

	p.font("", 11)
	if date := cli.FormatDate(d.Date, d.ParsedDate); date != "" {
		p.line(date)
	}
	if d.HasAccommodation() {
		stay := "Stay: " + d.Accommodation
		if d.AccommodationCost > 0 {
			stay += " (" + cli.FormatConverted(conv, d.AccommodationCost, d.AccommodationCurrency) + ")"
		}
		p.line(stay)
	}
	if d.Alternatives != "" {
		p.line("Rain plan: " + d.Alternatives)
	}
	p.line("Day total " + cli.FormatHome(trip.Meta.HomeCurrency, pipeline.DayCost(trip, d)))

	if len(d.Checklist) > 0 {
		p.pdf.Ln(3)
		p.font("B", 11)
		p.line("Checklist")
		p.font("", 11)
		for _, item := range d.Checklist {
			p.line("[ ] " + item)
		}
	}

	p.pdf.Ln(4)
	for _, s := range pipeline.SortStops(d) {
		p.font("B", 11)
		p.pdf.CellFormat(18, lineH, p.tr(s.Time), "", 0, "L", false, 0, "")
		p.pdf.MultiCell(0, lineH, p.tr(s.Name), "", "", false)

		p.font("", 10)
		var details []string
		if len(s.Tags) > 0 {
			details = append(details, strings.Join(s.Tags, " "))
		}
		if s.Transport != "" {
			details = append(details, "Transport: "+s.Transport)
		}
		if s.Description != "" {
			details = append(details, s.Description)
		}
		if s.Cost > 0 {
			details = append(details, cli.FormatConverted(conv, s.Cost, s.Currency))
		}
		if url := s.MapURL(); url != "" {
			details = append(details, url)
		}
		for _, t := range details {
			p.pdf.SetX(marginX + 18)
			p.pdf.MultiCell(0, lineH-1, p.tr(t), "", "", false)
		}
		p.pdf.Ln(2)
	}
}

func (p pdfWriter) budgetPage(s model.BudgetSummary) {
	p.pdf.AddPage()
	p.heading("Budget", 18)

	colW := []float64{70, 30, pageW - 2*marginX - 100}
	p.font("B", 11)
	p.pdf.SetFillColor(252, 231, 243)
	for i, h := range []string{"Category", "Items", "Total"} {
		align := "L"
		if i > 0 {
			align = "R"
		}
		p.pdf.CellFormat(colW[i], 8, h, "B", 0, align, true, 0, "")
	}
	p.pdf.Ln(-1)

	p.font("", 11)
	for _, d := range s.Categories {
		p.pdf.CellFormat(colW[0], 7, p.tr(d.Title), "", 0, "L", false, 0, "")
		p.pdf.CellFormat(colW[1], 7, strconv.Itoa(len(d.Items)), "", 0, "R", false, 0, "")
		p.pdf.CellFormat(colW[2], 7, cli.FormatHome(d.Currency, d.Total), "", 0, "R", false, 0, "")
		p.pdf.Ln(-1)
	}
	p.font("B", 11)
	p.pdf.CellFormat(colW[0]+colW[1], 8, "Total", "T", 0, "L", false, 0, "")
	p.pdf.CellFormat(colW[2], 8, cli.FormatHome(s.HomeCurrency, s.Total), "T", 0, "R", false, 0, "")
	p.pdf.Ln(12)

	for _, d := range s.Categories {
		if len(d.Items) == 0 {
			continue
		}
		p.font("B", 12)
		p.line(d.Title)
		p.font("", 10)
		for _, it := range d.Items {
			p.pdf.CellFormat(16, 5.5, "Day "+strconv.Itoa(it.DayNumber), "", 0, "L", false, 0, "")
			p.pdf.CellFormat(colW[0]+colW[1]-16, 5.5, p.tr(it.Name), "", 0, "L", false, 0, "")
			p.pdf.CellFormat(colW[2], 5.5, cli.FormatMoney(it.Currency, it.Cost), "", 0, "R", false, 0, "")
			p.pdf.Ln(-1)
		}
		p.pdf.Ln(4)
	}
}
