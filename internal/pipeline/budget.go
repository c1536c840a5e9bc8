package pipeline

import (
	"regexp"

	"github.com/jkhomeclaw/tripview/internal/model"
	"github.com/jkhomeclaw/tripview/internal/money"

	"github.com/shopspring/decimal"
)

// foodPattern matches stop names that are meals: anything with a
// meal/food/noodle/rice character, beef tongue, or breakfast.
var foodPattern = regexp.MustCompile(`[餐食麵飯]|牛舌|早餐`)

const defaultAccommodationName = "Accommodation"

// InCategory reports whether a stop's cost counts toward cat. The stop
// categories overlap: transport is any stop with a transport mode, food is
// any stop with a meal-like name, and tickets are every stop without a
// transport mode, meals included. Accommodation never matches a stop.
func InCategory(s model.Stop, cat model.Category) bool {
	switch cat {
	case model.CategoryTransport:
		return s.Transport != ""
	case model.CategoryFood:
		return foodPattern.MatchString(s.Name)
	case model.CategoryAttraction:
		return s.Transport == ""
	default:
		return false
	}
}

// Budget collects the priced items of one category across the whole trip.
// Items keep their original currency; Total is in the home currency.
func Budget(trip model.Trip, cat model.Category) model.BudgetDetails {
	conv := money.NewConverter(trip.Meta)
	details := model.BudgetDetails{
		Category: cat,
		Title:    cat.Title(),
		Currency: trip.Meta.HomeCurrency,
		Items:    []model.BudgetItem{},
	}

	total := decimal.Zero
	add := func(day int, name string, cost float64, currency string) {
		converted := conv.Convert(cost, currency)
		total = total.Add(converted)
		details.Items = append(details.Items, model.BudgetItem{
			DayNumber: day,
			Name:      name,
			Cost:      cost,
			Currency:  currency,
			Converted: converted.Round(2).InexactFloat64(),
		})
	}

	for _, day := range trip.Days {
		if cat == model.CategoryAccommodation {
			if day.AccommodationCost > 0 {
				name := day.Accommodation
				if name == "" {
					name = defaultAccommodationName
				}
				add(day.DayNumber, name, day.AccommodationCost, day.AccommodationCurrency)
			}
			continue
		}
		for _, s := range day.Stops {
			if s.Cost > 0 && InCategory(s, cat) {
				add(day.DayNumber, s.Name, s.Cost, s.Currency)
			}
		}
	}

	details.Total = money.Round(total)
	return details
}

// BudgetAll computes every category plus trip-wide totals. Category totals
// overlap, so the grand total counts each priced stop and night once.
func BudgetAll(trip model.Trip) model.BudgetSummary {
	sum := model.BudgetSummary{
		Categories:   make([]model.BudgetDetails, 0, len(model.Categories)),
		Budget:       trip.Meta.Budget,
		HomeCurrency: trip.Meta.HomeCurrency,
	}
	for _, cat := range model.Categories {
		sum.Categories = append(sum.Categories, Budget(trip, cat))
	}

	conv := money.NewConverter(trip.Meta)
	total := decimal.Zero
	for _, day := range trip.Days {
		total = total.Add(dayCost(conv, day))
	}
	sum.Total = money.Round(total)

	travelers := trip.Meta.Travelers
	if travelers < 1 {
		travelers = 1
	}
	sum.PerTraveler = money.Round(decimal.NewFromInt(sum.Total).Div(decimal.NewFromInt(int64(travelers))))

	if sum.Budget > 0 {
		sum.BudgetUsed = float64(sum.Total) / sum.Budget
	}
	return sum
}

// DayCost returns the home-currency cost of one day, stops plus accommodation.
func DayCost(trip model.Trip, day model.Day) int64 {
	return money.Round(dayCost(money.NewConverter(trip.Meta), day))
}

func dayCost(conv money.Converter, day model.Day) decimal.Decimal {
	total := decimal.Zero
	for _, s := range day.Stops {
		if s.Cost > 0 {
			total = total.Add(conv.Convert(s.Cost, s.Currency))
		}
	}
	if day.AccommodationCost > 0 {
		total = total.Add(conv.Convert(day.AccommodationCost, day.AccommodationCurrency))
	}
	return total
}
