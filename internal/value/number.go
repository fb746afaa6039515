// Package value holds the number handling behind the stepper control:
// formatting, extraction from free-form text, rounding and range validation.
package value

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const precision = 1e9

var (
	leadingNumeral = regexp.MustCompile(`^-?[\d.]`)
	numericPrefix  = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)
)

// Round9 rounds v to 9 decimal places to drop binary floating-point noise
// (0.1+0.2 becomes 0.3). Values too large to scale are returned as is.
func Round9(v float64) float64 {
	scaled := v * precision
	if math.IsInf(scaled, 0) || math.IsNaN(scaled) {
		return v
	}
	return math.Round(scaled) / precision
}

// Format renders v for display: rounded to 9 decimals, shortest form,
// no trailing zeros and never "-0".
func Format(v float64) string {
	r := Round9(v)
	if r == 0 {
		return "0"
	}
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// Extract parses the leading number out of text. Commas count as decimal
// points and anything after the numeric prefix is ignored, so "12,5px"
// yields 12.5. ok is false for empty input, input that does not start with
// a numeral or a point, and input with more than one point.
func Extract(text string) (float64, bool) {
	if strings.TrimSpace(text) == "" {
		return 0, false
	}
	cleaned := strings.ReplaceAll(text, ",", ".")
	if !leadingNumeral.MatchString(cleaned) {
		return 0, false
	}
	if strings.Count(cleaned, ".") > 1 {
		return 0, false
	}
	match := numericPrefix.FindString(cleaned)
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
