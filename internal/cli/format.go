// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jkhomeclaw/tripview/internal/money"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatMoney formats an amount in its own currency, e.g. "JPY 1,200".
func FormatMoney(code string, amount float64) string {
	return money.FormatAmount(code, amount)
}

// FormatHome formats an already-converted whole home-currency total.
func FormatHome(code string, total int64) string {
	return strings.TrimSpace(code + " " + FormatNumber(total))
}

// FormatConverted renders the original amount followed by its home-currency
// equivalent: "JPY 1,200 ≈ TWD 258". Home-currency amounts are shown once.
func FormatConverted(conv money.Converter, amount float64, currency string) string {
	orig := FormatMoney(currency, amount)
	if strings.EqualFold(currency, conv.Home) {
		return orig
	}
	return orig + " ≈ " + FormatHome(conv.Home, conv.ConvertRounded(amount, currency))
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatDate renders a day's date as "Sat 2025-04-05". Unparsed dates are
// returned as written; an empty date yields "".
func FormatDate(raw string, parsed time.Time) string {
	if parsed.IsZero() {
		return raw
	}
	return parsed.Format("Mon 2006-01-02")
}
