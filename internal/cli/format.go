// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// nbsp separates the currency symbol from the amount, as id-ID locale
// formatting does.
const nbsp = "\u00a0"

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatNumber groups an integer with Indonesian separators.
// e.g., 1234567 -> "1.234.567"
func FormatNumber(n int64) string {
	return idPrinter.Sprintf("%d", n)
}

// FormatRupiah formats an amount as whole Rupiah, rounding half away from
// zero. e.g., 297702000 -> "Rp\u00a0297.702.000"
func FormatRupiah(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "Rp" + nbsp + "0"
	}
	rounded := int64(math.Round(amount))
	if rounded < 0 {
		return "-Rp" + nbsp + FormatNumber(-rounded)
	}
	return "Rp" + nbsp + FormatNumber(rounded)
}

// FormatRupiahShort abbreviates large amounts for narrow columns.
// e.g., 297702000 -> "Rp 297,7 jt", 1500000000 -> "Rp 1,5 M"
func FormatRupiahShort(amount float64) string {
	abs := math.Abs(amount)
	sign := ""
	if amount < 0 {
		sign = "-"
	}

	var s string
	switch {
	case abs >= 1_000_000_000_000:
		s = decimalComma(abs/1_000_000_000_000) + " T"
	case abs >= 1_000_000_000:
		s = decimalComma(abs/1_000_000_000) + " M"
	case abs >= 1_000_000:
		s = decimalComma(abs/1_000_000) + " jt"
	default:
		return FormatRupiah(amount)
	}
	return sign + "Rp" + nbsp + s
}

func decimalComma(f float64) string {
	s := strconv.FormatFloat(f, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	return strings.Replace(s, ".", ",", 1)
}

// FormatMonths renders a duration in its shortest form, no trailing zeros. e.g., 3 -> "3", 3.4 -> "3.4"
func FormatMonths(months float64) string {
	return strconv.FormatFloat(months, 'f', -1, 64)
}

// FormatPercent formats a percentage value (already 0-100).
// e.g., 20 -> "20%", 12.5 -> "12.5%"
func FormatPercent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

// FormatShare formats part/total as a one-decimal percentage, or "" when
// total is zero.
func FormatShare(part, total float64) string {
	if total == 0 {
		return ""
	}
	return strconv.FormatFloat(part/total*100, 'f', 1, 64) + "%"
}
