// Package cli provides formatting, parsing, and rendering utilities
// for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the date format accepted and printed by the CLI.
const DateLayout = "2006-01-02"

// ParseAmount parses a user-entered monetary amount. It accepts both
// dot and comma decimal separators, requires a positive value, and
// rounds to cents.
func ParseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("amount must be greater than 0")
	}
	return d.Round(2).InexactFloat64(), nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return d, nil
}

// FormatMoney formats an amount with the currency symbol, comma
// separators, and two decimals. e.g., 1234.5 -> "$1,234.50"
func FormatMoney(amount float64, symbol string) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err == nil {
		intPart = FormatNumber(n)
	}

	out := symbol + intPart + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

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

// FormatShare formats a 0-1 fraction as a percentage string.
func FormatShare(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatPercent formats an already-scaled 0-100 percentage.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDelta formats a money delta with an explicit sign.
func FormatDelta(current, previous float64, symbol string) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatMoney(delta, symbol)
	}
	return "-" + FormatMoney(-delta, symbol)
}
