package source

import "encoding/json"

// RawItinerary is the top-level shape of a data.json itinerary file.
type RawItinerary struct {
	TripMeta RawTripMeta `json:"trip_meta"`
	Days     []RawDay    `json:"days"`
}

// RawTripMeta mirrors the "trip_meta" object.
type RawTripMeta struct {
	Title               string  `json:"title"`
	DaysCount           int     `json:"days_count"`
	Travelers           int     `json:"travelers"`
	Budget              float64 `json:"budget"`
	Location            string  `json:"location,omitempty"`
	StartDate           string  `json:"start_date,omitempty"`
	HomeCurrency        string  `json:"home_currency,omitempty"`
	DestinationCurrency string  `json:"destination_currency,omitempty"`
	ExchangeRate        float64 `json:"exchange_rate,omitempty"`
}

// RawDay mirrors one entry of "days". Note the camelCase dayNumber key.
type RawDay struct {
	DayNumber             int       `json:"dayNumber"`
	Theme                 string    `json:"theme"`
	Date                  string    `json:"date"`
	Alternatives          string    `json:"alternatives,omitempty"`
	Checklist             []string  `json:"checklist,omitempty"`
	Stops                 []RawStop `json:"stops"`
	Accommodation         string    `json:"accommodation,omitempty"`
	AccommodationCost     float64   `json:"accommodation_cost,omitempty"`
	AccommodationCurrency string    `json:"accommodation_currency,omitempty"`
}

// RawStop mirrors one stop. Cost is kept as raw JSON because hand-edited
// files sometimes quote numbers ("1200").
type RawStop struct {
	Time        string          `json:"time"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Transport   string          `json:"transport,omitempty"`
	Cost        json.RawMessage `json:"cost,omitempty"`
	Currency    string          `json:"currency,omitempty"`
	Lat         float64         `json:"lat,omitempty"`
	Lng         float64         `json:"lng,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
}
