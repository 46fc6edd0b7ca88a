package fmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDot(t *testing.T) {
	a := []float64{1, 1e100, 1, -1e100}
	b := []float64{1, 1, 1, 1}
	d, err := Dot(a, b)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, d)

	_, err = Dot([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrLenMismatch)
}

func TestDot3(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}
	c := []float64{1, 1, 2}
	d, err := Dot3(a, b, c, 0.5)
	assert.NoError(t, err)
	assert.Equal(t, 0.5+4+10+36, d)

	_, err = Dot3(a, b, []float64{1}, 0)
	assert.ErrorIs(t, err, ErrLenMismatch)
}

func TestHorner(t *testing.T) {
	// 2 + 3x + x^3 at x = 2 is 16.
	h, err := Horner(2, 2, 3, 0, 1)
	assert.NoError(t, err)
	assert.Equal(t, 16.0, h)

	p, err := Polynomial(2, 2, 3, 0, 1)
	assert.NoError(t, err)
	assert.Equal(t, h, p, "Horner and Polynomial must agree")

	_, err = Horner(math.NaN(), 1)
	assert.ErrorIs(t, err, ErrNotFinite)
	_, err = Horner(2)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestPowers(t *testing.T) {
	xs, err := Powers(3, 4)
	assert.NoError(t, err)
	assert.Equal(t, []float64{3, 9, 27, 81}, xs)

	_, err = Powers(3, 0)
	assert.Error(t, err)
}

func TestMean(t *testing.T) {
	m, err := Mean([]float64{1, 2, 3, 4})
	assert.NoError(t, err)
	assert.Equal(t, 2.5, m)

	_, err = Mean(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestAvg(t *testing.T) {
	assert.Equal(t, 1.5, Avg(1, 2, 0.5))
	assert.Equal(t, 1.0, Avg(1, 2, 0))
	assert.Equal(t, 2.0, Avg(1, 2, 1))
}

func TestHypot3(t *testing.T) {
	assert.Equal(t, math.Sqrt(3), Hypot3(1, 1, 1))
	assert.Equal(t, 5.0, Hypot3(0, 3, 4))
	assert.Equal(t, 5.0, Hypot3(3, 4, 0))
	// Huge components must not overflow.
	h := Hypot3(1e300, 1e300, 1e300)
	assert.False(t, math.IsInf(h, 0))
	assert.InEpsilon(t, math.Sqrt(3)*1e300, h, 1e-15)
}

func TestRoots(t *testing.T) {
	assert.InEpsilon(t, 4.0, Cbrt2(8), 1e-15)
	s, err := Sqrt3(4)
	assert.NoError(t, err)
	assert.InEpsilon(t, 8.0, s, 1e-15)
	_, err = Sqrt3(-1)
	assert.Error(t, err)
}
