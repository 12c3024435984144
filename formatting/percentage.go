package formatting

import (
	"math"
	"strconv"
)

// FormatPercentage renders change with one fraction digit and a "%" suffix.
// nil and NaN render as "0.0%".
func FormatPercentage(change *float64) string {
	if change == nil || math.IsNaN(*change) {
		return "0.0%"
	}

	number, negative := formatPercentFixed(*change)
	if negative {
		return "-" + number + "%"
	}
	return number + "%"
}

// Percentage is FormatPercentage for a non-pointer value
func Percentage(change float64) string {
	return FormatPercentage(&change)
}

// formatPercentFixed rounds the exact binary value to one digit, so 1.15
// (stored as 1.1499...) gives "1.1". Exact ties (odd multiples of 0.25) round
// away from zero.
func formatPercentFixed(value float64) (string, bool) {
	if math.IsInf(value, 0) {
		return "∞", value < 0
	}

	negative := value < 0
	abs := math.Abs(value)
	if quarters := abs * 4; quarters == math.Trunc(quarters) && math.Mod(quarters, 2) == 1 {
		number, _ := formatFixed(abs, 1)
		return number, negative
	}
	return strconv.FormatFloat(abs, 'f', 1, 64), negative
}
