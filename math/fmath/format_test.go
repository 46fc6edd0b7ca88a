package fmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloats(t *testing.T) {
	s := FormatFloats([]float64{1.5, 2.25, 3}, 4, ", ")
	assert.Equal(t, "1.5, 2.25, 3.0", s)

	// Negative precision keeps trailing zeros.
	s = FormatFloats([]float64{1.5, 3}, -4, ", ")
	assert.Equal(t, "1.5000, 3.0000", s)

	s = FormatFloats([]float64{-0.25}, 6, "; ")
	assert.Equal(t, "-0.25", s)

	assert.Equal(t, "", FormatFloats(nil, 3, ", "))
}

func TestStripZeros(t *testing.T) {
	assert.Equal(t, "1.5", StripZeros("1.5000"))
	assert.Equal(t, "1.0", StripZeros("1.0000"))
	assert.Equal(t, "1.05", StripZeros("1.0500"))
	assert.Equal(t, "10", StripZeros("10"))
	assert.Equal(t, "1.25", StripZeros("1.25"))
	// Exponents are not digits, leave them alone.
	assert.Equal(t, "1.5e+10", StripZeros("1.5e+10"))
}
