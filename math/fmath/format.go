package fmath

import (
	"fmt"
	"strings"
)

// FormatFloats renders values as "f, f, ... f" with prec decimal digits
// joined by sep. Positive prec strips trailing zero decimals (always keeping
// the first); negative prec keeps them.
func FormatFloats(values []float64, prec int, sep string) string {
	strip := prec > 1
	if prec < 0 {
		prec = -prec
	}
	ts := make([]string, len(values))
	for i, v := range values {
		t := fmt.Sprintf("%.*f", prec, v)
		if strip {
			t = StripZeros(t)
		}
		ts[i] = t
	}
	return strings.Join(ts, sep)
}

// StripZeros removes trailing zero decimals from a formatted float, keeping
// the first zero after the decimal point. Exponent suffixes are left alone.
func StripZeros(s string) string {
	if !strings.HasSuffix(s, "0") {
		return s
	}
	z := strings.IndexByte(s, '.') + 2 // keep the first zero decimal
	if z > 1 && isDigits(s[z:]) {
		s = s[:z] + strings.TrimRight(s[z:], "0")
	}
	return s
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
