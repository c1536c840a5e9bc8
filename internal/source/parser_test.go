package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jkhomeclaw/tripview/internal/model"
)

// writeItinerary creates a temp data.json and returns its path.
func writeItinerary(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleTrip = `{
  "trip_meta": {"title": "Sendai Spring", "travelers": 2, "budget": 60000,
                "location": "Sendai", "start_date": "2025-04-05"},
  "days": [
    {"dayNumber": 1, "theme": "Arrival",
     "accommodation": "Hotel Metropolitan", "accommodation_cost": 12000,
     "stops": [
       {"time": "18:00", "name": "牛舌 dinner", "cost": 3000},
       {"time": "09:30", "name": "Sendai Station", "transport": "JR", "cost": "1,200"},
       {"time": "12:00", "name": "Zuihoden", "cost": 570, "lat": 38.25, "lng": 140.88}
     ]},
    {"theme": "Matsushima",
     "stops": [{"time": "10:00", "name": "Godaido", "currency": "twd", "cost": 100}]}
  ]
}`

func TestParseFile_Normalizes(t *testing.T) {
	path := writeItinerary(t, sampleTrip)

	trip, err := ParseFile(path, model.Defaults{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := trip.Meta
	if m.HomeCurrency != "TWD" || m.DestinationCurrency != "JPY" {
		t.Errorf("currencies = %s/%s, want TWD/JPY", m.HomeCurrency, m.DestinationCurrency)
	}
	if m.ExchangeRate != DefaultExchangeRate {
		t.Errorf("ExchangeRate = %v, want %v", m.ExchangeRate, DefaultExchangeRate)
	}
	if m.DaysCount != 2 {
		t.Errorf("DaysCount = %d, want 2 (len(days))", m.DaysCount)
	}
	if m.Travelers != 2 {
		t.Errorf("Travelers = %d, want 2", m.Travelers)
	}

	if len(trip.Days) != 2 {
		t.Fatalf("len(Days) = %d, want 2", len(trip.Days))
	}
	d1 := trip.Days[0]
	if d1.AccommodationCurrency != "JPY" {
		t.Errorf("AccommodationCurrency = %q, want JPY", d1.AccommodationCurrency)
	}
	if d1.Date != "2025-04-05" {
		t.Errorf("day 1 Date = %q, want 2025-04-05 (derived)", d1.Date)
	}

	wantOrder := []string{"09:30", "12:00", "18:00"}
	for i, s := range d1.Stops {
		if s.Time != wantOrder[i] {
			t.Errorf("stop %d time = %q, want %q", i, s.Time, wantOrder[i])
		}
		if s.Currency != "JPY" {
			t.Errorf("stop %d currency = %q, want JPY", i, s.Currency)
		}
	}
	if d1.Stops[0].Cost != 1200 {
		t.Errorf("quoted cost = %v, want 1200", d1.Stops[0].Cost)
	}

	d2 := trip.Days[1]
	if d2.DayNumber != 2 {
		t.Errorf("day 2 DayNumber = %d, want 2 (from position)", d2.DayNumber)
	}
	if d2.Date != "2025-04-06" {
		t.Errorf("day 2 Date = %q, want 2025-04-06", d2.Date)
	}
	if d2.Stops[0].Currency != "TWD" {
		t.Errorf("stop currency = %q, want TWD (upper-cased)", d2.Stops[0].Currency)
	}
}

func TestParse_FileValuesBeatDefaults(t *testing.T) {
	body := `{"trip_meta":{"title":"x","home_currency":"usd","exchange_rate":0.0065},
	          "days":[{"stops":[]}]}`
	defaults := model.Defaults{HomeCurrency: "EUR", DestinationCurrency: "KRW", ExchangeRate: 0.0007}

	trip, err := Parse(strings.NewReader(body), defaults)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.Meta.HomeCurrency != "USD" {
		t.Errorf("HomeCurrency = %q, want USD", trip.Meta.HomeCurrency)
	}
	if trip.Meta.DestinationCurrency != "KRW" {
		t.Errorf("DestinationCurrency = %q, want KRW (from defaults)", trip.Meta.DestinationCurrency)
	}
	if trip.Meta.ExchangeRate != 0.0065 {
		t.Errorf("ExchangeRate = %v, want 0.0065", trip.Meta.ExchangeRate)
	}
	if trip.Meta.Travelers != 1 {
		t.Errorf("Travelers = %d, want 1", trip.Meta.Travelers)
	}
}

func TestParse_ZeroRateFallsBack(t *testing.T) {
	body := `{"trip_meta":{"exchange_rate":0},"days":[{}]}`
	trip, err := Parse(strings.NewReader(body), model.Defaults{ExchangeRate: 0.2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.Meta.ExchangeRate != 0.2 {
		t.Errorf("ExchangeRate = %v, want 0.2", trip.Meta.ExchangeRate)
	}
}

func TestParse_StableForEqualTimes(t *testing.T) {
	body := `{"days":[{"stops":[
		{"time":"10:00","name":"b"},
		{"time":"09:00","name":"a"},
		{"time":"10:00","name":"c"}]}]}`
	trip, err := Parse(strings.NewReader(body), model.Defaults{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []string
	for _, s := range trip.Days[0].Stops {
		got = append(got, s.Name)
	}
	if strings.Join(got, "") != "abc" {
		t.Errorf("order = %v, want [a b c]", got)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"malformed", `{"days": [`, ErrInvalidJSON},
		{"not an object", `[1,2,3]`, ErrInvalidJSON},
		{"no days", `{"trip_meta":{"title":"x"},"days":[]}`, ErrNoDays},
		{"missing days", `{"trip_meta":{"title":"x"}}`, ErrNoDays},
		{"negative stop cost", `{"days":[{"stops":[{"time":"09:00","name":"x","cost":-1}]}]}`, ErrNegativeCost},
		{"negative accommodation", `{"days":[{"accommodation":"inn","accommodation_cost":-5}]}`, ErrNegativeCost},
		{"garbage cost", `{"days":[{"stops":[{"name":"x","cost":"free"}]}]}`, ErrInvalidJSON},
		{"boolean cost", `{"days":[{"stops":[{"name":"x","cost":true}]}]}`, ErrInvalidJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.body), model.Defaults{})
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseCost(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{``, 0},
		{`null`, 0},
		{`1200`, 1200},
		{`12.5`, 12.5},
		{`"1200"`, 1200},
		{`" 3,400 "`, 3400},
		{`""`, 0},
	}
	for _, tt := range tests {
		got, err := parseCost([]byte(tt.raw))
		if err != nil {
			t.Errorf("parseCost(%q) error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseCost(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.json"), model.Defaults{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}

func TestIsURL(t *testing.T) {
	tests := map[string]bool{
		"https://example.com/data.json": true,
		"HTTP://example.com/data.json":  true,
		"data.json":                     false,
		"/srv/trip/data.json":           false,
		"ftp://example.com/data.json":   false,
	}
	for in, want := range tests {
		if got := IsURL(in); got != want {
			t.Errorf("IsURL(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(sampleTrip))
		case "/huge.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"days":[],"pad":"` + strings.Repeat("x", maxBodySize) + `"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	trip, body, err := Fetch(context.Background(), srv.URL+"/data.json", model.Defaults{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.Meta.Title != "Sendai Spring" {
		t.Errorf("Title = %q", trip.Meta.Title)
	}
	if len(body) == 0 {
		t.Error("expected raw body to be returned")
	}

	_, _, err = Fetch(context.Background(), srv.URL+"/missing.json", model.Defaults{})
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if se.Code != http.StatusNotFound {
		t.Errorf("Code = %d, want 404", se.Code)
	}

	_, _, err = Fetch(context.Background(), srv.URL+"/huge.json", model.Defaults{})
	if !errors.Is(err, ErrResponseTooLarge) {
		t.Errorf("oversized body err = %v, want ErrResponseTooLarge", err)
	}
	if errors.Is(err, ErrInvalidJSON) {
		t.Error("oversized body must not be reported as invalid JSON")
	}
}

func TestParseFile_SampleData(t *testing.T) {
	trip, err := ParseFile(filepath.Join("..", "..", "testdata", "data.json"), model.Defaults{})
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(trip.Days) != 3 || trip.Meta.Travelers != 2 {
		t.Errorf("meta = %+v", trip.Meta)
	}
	if trip.Meta.StartDate.IsZero() {
		t.Error("start date not resolved")
	}
	for _, d := range trip.Days {
		for i := 1; i < len(d.Stops); i++ {
			if d.Stops[i-1].Time > d.Stops[i].Time {
				t.Errorf("day %d stops out of order", d.DayNumber)
			}
		}
	}
	if got := trip.Days[0].Stops[2].Cost; got != 3200 {
		t.Errorf("quoted cost = %v, want 3200", got)
	}
}
