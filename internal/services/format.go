package services

import (
	"math"
	"strconv"
	"strings"

	"geocalc/internal/expr"
)

// FormatDecimal renders f with four decimals, then drops trailing zeros and a
// trailing point: 12.56636 -> "12.5664", 2.50 -> "2.5", 16.0 -> "16".
func FormatDecimal(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(f, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// FormatValue renders an evaluation result. Integers print exactly, floats go
// through FormatDecimal even when they hold a whole number.
func FormatValue(v expr.Value) string {
	if v.IsInt() {
		return v.Int().String()
	}
	f, _ := v.Float()
	return FormatDecimal(f)
}

// formatNumber renders a float the way the sign toggle writes it back: whole
// numbers without a fraction, everything else in shortest round-trip form,
// switching to exponent notation below 1e-4.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	if math.Abs(f) < 1e-4 {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// parseNumber reads user-entered text as a float. Surrounding whitespace is
// ignored, single underscores between digits group them ("1_000"),
// hexadecimal forms are rejected and out-of-range values saturate to ±Inf.
func parseNumber(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if strings.ContainsAny(text, "xX") {
		return 0, strconv.ErrSyntax
	}

	text, ok := stripDigitSeparators(text)
	if !ok {
		return 0, strconv.ErrSyntax
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !math.IsInf(f, 0) {
		return 0, err
	}
	return f, nil
}

// stripDigitSeparators removes underscores that sit between two digits and
// reports false for any other underscore.
func stripDigitSeparators(text string) (string, bool) {
	if !strings.Contains(text, "_") {
		return text, true
	}

	var b strings.Builder
	for i := 0; i < len(text); i++ {
		if text[i] != '_' {
			b.WriteByte(text[i])
			continue
		}
		if i == 0 || i == len(text)-1 || !isASCIIDigit(text[i-1]) || !isASCIIDigit(text[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
