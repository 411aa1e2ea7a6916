package estimator

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// CoerceInt reads the leading integer of s ("12abc" -> 12, "3.7" -> 3).
// Empty, unparsable and negative input all become 0.
func CoerceInt(s string) int {
	m := leadingInt.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// CoerceFloat reads the leading decimal of s ("2.5 bulan" -> 2.5).
// Empty, unparsable, non-finite and negative input all become 0.
func CoerceFloat(s string) float64 {
	m := leadingFloat.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(f, 0) || !(f > 0) {
		return 0
	}
	return f
}

// nonNegative clamps programmatic inputs the same way text input is coerced.
func nonNegative(f float64) float64 {
	if math.IsInf(f, 0) || !(f > 0) {
		return 0
	}
	return f
}
