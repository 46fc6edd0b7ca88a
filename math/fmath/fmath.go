package fmath

import (
	"fmt"
	"math"
)

// Dot computes the precision dot product sum(a[i]*b[i]).
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLenMismatch, len(a), len(b))
	}
	f := Fsum{}
	for i := range a {
		if err := f.Add(a[i] * b[i]); err != nil {
			return 0, err
		}
	}
	return f.Sum()
}

// Dot3 computes the precision triple product bias + sum(a[i]*b[i]*c[i]).
func Dot3(a, b, c []float64, bias float64) (float64, error) {
	if len(a) != len(b) || len(b) != len(c) {
		return 0, fmt.Errorf("%w: %d vs %d vs %d",
			ErrLenMismatch, len(a), len(b), len(c))
	}
	f := Fsum{}
	if bias != 0 {
		if err := f.Add(bias); err != nil {
			return 0, err
		}
	}
	for i := range a {
		if err := f.Add(a[i] * b[i] * c[i]); err != nil {
			return 0, err
		}
	}
	return f.Sum()
}

// Horner evaluates the polynomial sum(cs[i] * x^i) in Horner form: the
// accumulator is repeatedly multiplied by x and the next lower coefficient
// folded in, from the highest degree down to the constant term.
func Horner(x float64, cs ...float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, notFinite(x)
	}
	if len(cs) == 0 {
		return 0, fmt.Errorf("%w: no coefficients", ErrEmpty)
	}
	h, err := NewFsum(cs[len(cs)-1])
	if err != nil {
		return 0, err
	}
	for i := len(cs) - 2; i >= 0; i-- {
		if err := h.Mul(x); err != nil {
			return 0, err
		}
		if err := h.Add(cs[i]); err != nil {
			return 0, err
		}
	}
	return h.Sum()
}

// Polynomial evaluates sum(cs[i] * x^i) by folding the explicit power terms.
// Horner is usually the better choice; Polynomial exists for series whose
// terms the caller wants folded individually.
func Polynomial(x float64, cs ...float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, notFinite(x)
	}
	if len(cs) == 0 {
		return 0, fmt.Errorf("%w: no coefficients", ErrEmpty)
	}
	f := Fsum{}
	xp := 1.0
	if err := f.Add(cs[0]); err != nil {
		return 0, err
	}
	for _, c := range cs[1:] {
		xp *= x
		if err := f.Add(xp * c); err != nil {
			return 0, err
		}
	}
	return f.Sum()
}

// Powers returns the series x^1 .. x^n.
func Powers(x float64, n int) ([]float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, notFinite(x)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: n = %d", ErrEmpty, n)
	}
	xs := make([]float64, n)
	xs[0] = x
	for i := 1; i < n; i++ {
		xs[i] = xs[i-1] * x
	}
	return xs, nil
}

// Mean computes the precision mean of the values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: no values", ErrEmpty)
	}
	s, err := Sum(values)
	if err != nil {
		return 0, err
	}
	return s / float64(len(values)), nil
}

// Avg returns the weighted average v1 + f*(v2 - v1).
func Avg(v1, v2, f float64) float64 {
	return v1 + f*(v2-v1)
}

// Hypot1 computes sqrt(1 + x*x) without overflow.
func Hypot1(x float64) float64 {
	return math.Hypot(1, x)
}

// Hypot3 computes sqrt(x*x + y*y + z*z), scaling by the largest component to
// avoid premature overflow and folding the normalized squares precisely.
func Hypot3(x, y, z float64) float64 {
	x, y, z = math.Abs(x), math.Abs(y), math.Abs(z)
	if x < z {
		x, z = z, x
	}
	if y < z {
		y, z = z, y
	}
	if z == 0 {
		return math.Hypot(x, y)
	}
	if x < y {
		x, y = y, x
	}
	h := x
	if h > eps {
		t, err := Sums(1, (y/h)*(y/h), (z/h)*(z/h))
		if err == nil && t > 1+eps {
			h *= math.Sqrt(t)
		}
	}
	return h
}

// Cbrt2 computes the cube root squared, x^(2/3) of |x|.
func Cbrt2(x float64) float64 {
	return math.Pow(math.Abs(x), 2.0/3.0)
}

// Sqrt3 computes the square root cubed, x^(3/2). x must not be negative.
func Sqrt3(x float64) (float64, error) {
	if x < 0 {
		return 0, fmt.Errorf("%w: sqrt3(%g)", ErrNotFinite, x)
	}
	return math.Pow(x, 1.5), nil
}

const eps = 2.220446049250313e-16
