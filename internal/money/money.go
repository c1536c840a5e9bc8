// Package money converts itinerary costs into the traveler's home currency.
package money

import (
	"strings"

	"github.com/jkhomeclaw/tripview/internal/model"

	"github.com/shopspring/decimal"
)

// Converter converts destination-currency amounts into the home currency
// using a single fixed exchange rate.
type Converter struct {
	Home        string
	Destination string
	Rate        decimal.Decimal
}

// NewConverter builds a converter from normalized trip metadata.
func NewConverter(meta model.TripMeta) Converter {
	return Converter{
		Home:        meta.HomeCurrency,
		Destination: meta.DestinationCurrency,
		Rate:        decimal.NewFromFloat(meta.ExchangeRate),
	}
}

// Convert returns amount expressed in the home currency.
// Amounts already in the home currency pass through; every other currency
// is treated as the destination currency.
func (c Converter) Convert(amount float64, currency string) decimal.Decimal {
	d := decimal.NewFromFloat(amount)
	if currency != "" && strings.EqualFold(currency, c.Home) {
		return d
	}
	return d.Mul(c.Rate)
}

// ConvertRounded converts and rounds to a whole home-currency unit.
func (c Converter) ConvertRounded(amount float64, currency string) int64 {
	return Round(c.Convert(amount, currency))
}

// Round rounds half away from zero to a whole unit.
func Round(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// Sum adds decimals.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// FormatAmount renders "JPY 1,234". Fractional amounts keep up to two decimals.
func FormatAmount(code string, amount float64) string {
	return strings.TrimSpace(code + " " + Group(decimal.NewFromFloat(amount)))
}

// Group formats d with comma thousands separators, trimming trailing zeros
// after rounding to two decimals.
func Group(d decimal.Decimal) string {
	d = d.Round(2)
	neg := d.IsNegative()
	if neg {
		d = d.Neg()
	}

	intPart := d.Truncate(0)
	frac := d.Sub(intPart)

	s := intPart.String()
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	remainder := len(s) % 3
	if remainder > 0 {
		b.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	if !frac.IsZero() {
		// "0.5" -> ".5"
		fs := frac.String()
		b.WriteString(strings.TrimPrefix(fs, "0"))
	}
	return b.String()
}
