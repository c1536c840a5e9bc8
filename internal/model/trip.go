// Package model defines domain types for tripview itineraries and budgets.
package model

import (
	"sort"
	"strconv"
	"time"
)

// DateLayout is the calendar date format used in itinerary files.
const DateLayout = "2006-01-02"

// Defaults holds the currency fallbacks applied while normalizing a trip.
type Defaults struct {
	HomeCurrency        string
	DestinationCurrency string
	ExchangeRate        float64
}

// TripMeta holds the top-level trip metadata.
type TripMeta struct {
	Title               string    `json:"title"`
	DaysCount           int       `json:"days_count"`
	Travelers           int       `json:"travelers"`
	Budget              float64   `json:"budget"`
	Location            string    `json:"location,omitempty"`
	StartDate           time.Time `json:"-"`
	StartDateRaw        string    `json:"start_date,omitempty"`
	HomeCurrency        string    `json:"home_currency"`
	DestinationCurrency string    `json:"destination_currency"`
	ExchangeRate        float64   `json:"exchange_rate"`
}

// Stop is a single point in a day's itinerary.
type Stop struct {
	Time        string   `json:"time"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Transport   string   `json:"transport,omitempty"`
	Cost        float64  `json:"cost"`
	Currency    string   `json:"currency"`
	Lat         float64  `json:"lat,omitempty"`
	Lng         float64  `json:"lng,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// HasCoordinates reports whether both latitude and longitude are set.
// A zero coordinate counts as unset, matching the data files in the wild.
func (s Stop) HasCoordinates() bool {
	return s.Lat != 0 && s.Lng != 0
}

// MapURL returns a Google Maps link for the stop, or "" without coordinates.
func (s Stop) MapURL() string {
	if !s.HasCoordinates() {
		return ""
	}
	return "https://maps.google.com/?q=" +
		strconv.FormatFloat(s.Lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(s.Lng, 'f', -1, 64)
}

// HasTag reports whether the stop carries the exact tag.
func (s Stop) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Day is one calendar day of the trip.
type Day struct {
	DayNumber             int       `json:"dayNumber"`
	Theme                 string    `json:"theme"`
	Date                  string    `json:"date"`
	Alternatives          string    `json:"alternatives,omitempty"`
	Checklist             []string  `json:"checklist,omitempty"`
	Stops                 []Stop    `json:"stops"`
	Accommodation         string    `json:"accommodation,omitempty"`
	AccommodationCost     float64   `json:"accommodation_cost,omitempty"`
	AccommodationCurrency string    `json:"accommodation_currency,omitempty"`
	ParsedDate            time.Time `json:"-"`
}

// HasAccommodation reports whether the day names a place to stay.
func (d Day) HasAccommodation() bool {
	return d.Accommodation != ""
}

// Trip is the whole itinerary: metadata plus ordered days.
type Trip struct {
	Meta TripMeta `json:"trip_meta"`
	Days []Day    `json:"days"`
}

// StopCount returns the number of stops across all days.
func (t Trip) StopCount() int {
	n := 0
	for _, d := range t.Days {
		n += len(d.Stops)
	}
	return n
}

// ResolveDates fills the parsed date fields from their string forms.
// Unparseable dates are left zero.
func (t *Trip) ResolveDates() {
	t.Meta.StartDate, _ = time.Parse(DateLayout, t.Meta.StartDateRaw)
	for i := range t.Days {
		t.Days[i].ParsedDate, _ = time.Parse(DateLayout, t.Days[i].Date)
	}
}

// TaggedStop pairs a stop with the day it belongs to.
type TaggedStop struct {
	DayNumber int
	Stop      Stop
}

// SortStopsByTime orders stops by their time string in place.
// Equal times keep their file order.
func SortStopsByTime(stops []Stop) {
	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].Time < stops[j].Time
	})
}
