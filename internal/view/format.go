package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daryltucker/headway-lab/internal/metrics"
)

// ParseNumber reads a widget value. Empty or malformed values read as 0.
func ParseNumber(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// FormatNumber writes a widget value with no trailing zeros.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatSeconds renders a duration label, e.g. "120s".
func FormatSeconds(s float64) string {
	return FormatNumber(s) + "s"
}

// FormatPercent renders a fraction as a whole percentage, e.g. "20%".
func FormatPercent(fraction float64) string {
	return fmt.Sprintf("%.0f%%", metrics.RoundHalfUp(fraction*100))
}

// FormatFactor renders the AI factor with two decimals.
func FormatFactor(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// FormatTPH renders throughput with one decimal, e.g. "21.3 tph".
func FormatTPH(tph float64) string {
	return strconv.FormatFloat(tph, 'f', 1, 64) + " tph"
}
