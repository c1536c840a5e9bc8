package model

import (
	"errors"
	"fmt"
)

// Category is one of the four budget buckets.
type Category string

const (
	CategoryAccommodation Category = "accommodation"
	CategoryTransport     Category = "transport"
	CategoryFood          Category = "food"
	CategoryAttraction    Category = "attraction"
)

// Categories lists the budget buckets in display order.
var Categories = []Category{
	CategoryAccommodation,
	CategoryTransport,
	CategoryFood,
	CategoryAttraction,
}

// Title returns the display label for the category.
func (c Category) Title() string {
	switch c {
	case CategoryAccommodation:
		return "Accommodation"
	case CategoryTransport:
		return "Transport"
	case CategoryFood:
		return "Food"
	case CategoryAttraction:
		return "Tickets"
	default:
		return string(c)
	}
}

// ErrUnknownCategory is returned by ParseCategory for unrecognized names.
var ErrUnknownCategory = errors.New("unknown budget category")

// ParseCategory resolves a category name, accepting a few aliases.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "accommodation", "stay", "hotel":
		return CategoryAccommodation, nil
	case "transport", "transit":
		return CategoryTransport, nil
	case "food", "meals":
		return CategoryFood, nil
	case "attraction", "attractions", "tickets":
		return CategoryAttraction, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownCategory, s)
}

// BudgetItem is one costed line inside a category, in its original currency.
type BudgetItem struct {
	DayNumber int     `json:"day"`
	Name      string  `json:"name"`
	Cost      float64 `json:"cost"`
	Currency  string  `json:"currency"`
	Converted float64 `json:"converted"`
}

// BudgetDetails holds every item of one category and its home-currency total.
type BudgetDetails struct {
	Category Category     `json:"category"`
	Title    string       `json:"title"`
	Items    []BudgetItem `json:"items"`
	Total    int64        `json:"total"`
	Currency string       `json:"currency"`
}

// BudgetSummary aggregates all four categories for the whole trip.
type BudgetSummary struct {
	Categories   []BudgetDetails `json:"categories"`
	Total        int64           `json:"total"`
	PerTraveler  int64           `json:"per_traveler"`
	Budget       float64         `json:"budget"`
	BudgetUsed   float64         `json:"budget_used"` // 0-1+, zero when no budget is set
	HomeCurrency string          `json:"home_currency"`
}

// ByCategory returns the details for one category from the summary.
func (s BudgetSummary) ByCategory(c Category) (BudgetDetails, bool) {
	for _, d := range s.Categories {
		if d.Category == c {
			return d, true
		}
	}
	return BudgetDetails{}, false
}
