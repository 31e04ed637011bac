// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatMoney formats a monetary value with comma separators and two
// decimals. e.g., 1234567.5 -> "$1,234,567.50"
func FormatMoney(v float64) string {
	if v < 0 {
		return "-" + FormatMoney(-v)
	}

	whole := int64(v)
	cents := int64(math.Round((v - float64(whole)) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}
	return fmt.Sprintf("$%s.%02d", FormatNumber(whole), cents)
}

// FormatSignedMoney is FormatMoney with an explicit sign for deltas.
func FormatSignedMoney(v float64) string {
	if v >= 0 {
		return "+" + FormatMoney(v)
	}
	return FormatMoney(v)
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

// FormatPercent formats a percentage value already in points.
// e.g., 42.5 -> "42.5%"
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatRate formats an annual interest rate.
func FormatRate(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatMonths formats a month count as years and months.
// e.g., 14 -> "1y 2m", 8 -> "8m"
func FormatMonths(months int) string {
	if months <= 0 {
		return "0m"
	}

	years := months / 12
	rem := months % 12

	if years > 0 && rem > 0 {
		return fmt.Sprintf("%dy %dm", years, rem)
	}
	if years > 0 {
		return fmt.Sprintf("%dy", years)
	}
	return fmt.Sprintf("%dm", rem)
}

// FormatDays formats a day count, using the sentinel-aware "never" when the
// count exceeds the horizon.
func FormatDays(days, horizon int) string {
	if days > horizon {
		return "beyond horizon"
	}
	return fmt.Sprintf("%d days", days)
}
