// Package source decodes and normalizes itinerary data files.
package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jkhomeclaw/tripview/internal/model"
)

// Fallbacks used when neither the data file nor the config names a currency.
const (
	DefaultHomeCurrency        = "TWD"
	DefaultDestinationCurrency = "JPY"
	DefaultExchangeRate        = 0.215
)

var (
	// ErrInvalidJSON indicates the data file is not a decodable itinerary.
	ErrInvalidJSON = errors.New("source: invalid itinerary JSON")
	// ErrNoDays indicates the itinerary has no days at all.
	ErrNoDays = errors.New("source: itinerary has no days")
	// ErrNegativeCost indicates a stop or accommodation with a cost below zero.
	ErrNegativeCost = errors.New("source: negative cost")
)

// ParseFile reads and normalizes the itinerary at path.
func ParseFile(path string, defaults model.Defaults) (model.Trip, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-supplied on purpose
	if err != nil {
		return model.Trip{}, err
	}
	defer func() { _ = f.Close() }()

	return Parse(f, defaults)
}

// Parse decodes an itinerary, validates it, and applies defaults:
// currencies fall back to defaults (then package constants), stops are sorted
// by time, missing day numbers and dates are derived.
func Parse(r io.Reader, defaults model.Defaults) (model.Trip, error) {
	var raw RawItinerary
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return model.Trip{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return Normalize(raw, defaults)
}

// Normalize converts a decoded itinerary into the domain model.
func Normalize(raw RawItinerary, defaults model.Defaults) (model.Trip, error) {
	if len(raw.Days) == 0 {
		return model.Trip{}, ErrNoDays
	}

	meta := normalizeMeta(raw.TripMeta, defaults, len(raw.Days))

	trip := model.Trip{
		Meta: meta,
		Days: make([]model.Day, 0, len(raw.Days)),
	}

	for i, rd := range raw.Days {
		day, err := normalizeDay(rd, i, meta)
		if err != nil {
			return model.Trip{}, err
		}
		trip.Days = append(trip.Days, day)
	}

	return trip, nil
}

func normalizeMeta(raw RawTripMeta, defaults model.Defaults, dayCount int) model.TripMeta {
	meta := model.TripMeta{
		Title:               strings.TrimSpace(raw.Title),
		DaysCount:           raw.DaysCount,
		Travelers:           raw.Travelers,
		Budget:              raw.Budget,
		Location:            strings.TrimSpace(raw.Location),
		StartDateRaw:        strings.TrimSpace(raw.StartDate),
		HomeCurrency:        firstCurrency(raw.HomeCurrency, defaults.HomeCurrency, DefaultHomeCurrency),
		DestinationCurrency: firstCurrency(raw.DestinationCurrency, defaults.DestinationCurrency, DefaultDestinationCurrency),
		ExchangeRate:        raw.ExchangeRate,
	}

	if meta.ExchangeRate <= 0 {
		meta.ExchangeRate = defaults.ExchangeRate
	}
	if meta.ExchangeRate <= 0 {
		meta.ExchangeRate = DefaultExchangeRate
	}
	if meta.DaysCount <= 0 {
		meta.DaysCount = dayCount
	}
	if meta.Travelers <= 0 {
		meta.Travelers = 1
	}
	if meta.Budget < 0 {
		meta.Budget = 0
	}
	if meta.StartDateRaw != "" {
		if t, err := time.Parse(model.DateLayout, meta.StartDateRaw); err == nil {
			meta.StartDate = t
		}
	}
	return meta
}

func normalizeDay(rd RawDay, idx int, meta model.TripMeta) (model.Day, error) {
	day := model.Day{
		DayNumber:             rd.DayNumber,
		Theme:                 strings.TrimSpace(rd.Theme),
		Date:                  strings.TrimSpace(rd.Date),
		Alternatives:          strings.TrimSpace(rd.Alternatives),
		Checklist:             rd.Checklist,
		Accommodation:         strings.TrimSpace(rd.Accommodation),
		AccommodationCost:     rd.AccommodationCost,
		AccommodationCurrency: firstCurrency(rd.AccommodationCurrency, meta.DestinationCurrency),
		Stops:                 make([]model.Stop, 0, len(rd.Stops)),
	}
	if day.DayNumber <= 0 {
		day.DayNumber = idx + 1
	}
	if day.AccommodationCost < 0 {
		return model.Day{}, fmt.Errorf("%w: day %d accommodation %q", ErrNegativeCost, day.DayNumber, day.Accommodation)
	}

	if day.Date == "" && !meta.StartDate.IsZero() {
		day.Date = meta.StartDate.AddDate(0, 0, day.DayNumber-1).Format(model.DateLayout)
	}
	if t, err := time.Parse(model.DateLayout, day.Date); err == nil {
		day.ParsedDate = t
	}

	for _, rs := range rd.Stops {
		cost, err := parseCost(rs.Cost)
		if err != nil {
			return model.Day{}, fmt.Errorf("day %d stop %q: %w", day.DayNumber, rs.Name, err)
		}
		if cost < 0 {
			return model.Day{}, fmt.Errorf("%w: day %d stop %q", ErrNegativeCost, day.DayNumber, rs.Name)
		}
		day.Stops = append(day.Stops, model.Stop{
			Time:        strings.TrimSpace(rs.Time),
			Name:        strings.TrimSpace(rs.Name),
			Description: strings.TrimSpace(rs.Description),
			Transport:   strings.TrimSpace(rs.Transport),
			Cost:        cost,
			Currency:    firstCurrency(rs.Currency, meta.DestinationCurrency),
			Lat:         rs.Lat,
			Lng:         rs.Lng,
			Tags:        rs.Tags,
		})
	}

	model.SortStopsByTime(day.Stops)
	return day, nil
}

// parseCost accepts a JSON number, a quoted number, null, or nothing.
func parseCost(raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("%w: cost %s", ErrInvalidJSON, raw)
	}
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: cost %q", ErrInvalidJSON, s)
	}
	return n, nil
}

func firstCurrency(candidates ...string) string {
	for _, c := range candidates {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			return c
		}
	}
	return ""
}
