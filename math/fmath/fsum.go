// Package fmath provides precision floating point summation and the numeric
// utilities built on top of it: dot products, polynomial evaluation, power
// series, means and float formatting. Everything funnels through Fsum so the
// results are accurate to the final rounding regardless of the magnitude mix
// of the inputs.
package fmath

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNotFinite is wrapped by errors returned for NaN or infinite inputs.
	ErrNotFinite = errors.New("not finite")

	// ErrOverflow is wrapped by errors returned when a partial 2sum
	// overflows.
	ErrOverflow = errors.New("2sum overflow")

	// ErrEmpty is wrapped by errors returned for empty inputs where at least
	// one value is required.
	ErrEmpty = errors.New("empty input")

	// ErrLenMismatch is wrapped by errors returned when parallel slices have
	// different lengths.
	ErrLenMismatch = errors.New("length mismatch")
)

func notFinite(x float64) error {
	return fmt.Errorf("%w: %g", ErrNotFinite, x)
}

// twoSum is the error-free transformation of a + b: s is the rounded sum and
// r the exact residue, so that s + r == a + b exactly.
func twoSum(a, b float64) (s, r float64, err error) {
	s = a + b
	if math.IsInf(s, 0) {
		return 0, 0, fmt.Errorf("%w: %g + %g", ErrOverflow, a, b)
	}
	if math.Abs(a) < math.Abs(b) {
		return s, a - (s - b), nil
	}
	return s, b - (s - a), nil
}

// Fsum is an incremental precision floating point accumulator. It keeps a
// list of mutually non-overlapping partial sums; adding the partials with
// ordinary floating addition, smallest magnitude first, gives a result
// accurate to one unit in the last place of the true sum. Folding may
// continue after a Sum call.
//
// An Fsum must not be mutated concurrently. For parallel summation use one
// Fsum per goroutine and fold the per-goroutine Sum results into a final one.
type Fsum struct {
	ps []float64 // non-overlapping partials, increasing magnitude
	n  int       // values folded, not partials
}

// NewFsum creates an accumulator primed with zero or more start values.
func NewFsum(values ...float64) (*Fsum, error) {
	f := &Fsum{}
	if err := f.Add(values...); err != nil {
		return nil, err
	}
	return f, nil
}

// Len returns the number of values folded in so far.
func (f *Fsum) Len() int { return f.n }

// Add folds one or more values into the running sum. Each value is cascaded
// through the existing partials with twoSum, replacing them with their
// residues and appending the remainder, which keeps the partials
// non-overlapping (Shewchuk's expansion sum).
func (f *Fsum) Add(values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return notFinite(v)
		}
	}
	ps := f.ps
	for _, a := range values {
		i := 0
		for _, p := range ps {
			s, r, err := twoSum(a, p)
			if err != nil {
				f.ps = ps
				return err
			}
			a = s
			if r != 0 {
				ps[i] = r
				i++
			}
		}
		ps = append(ps[:i], a)
		f.n++
	}
	f.ps = ps
	return nil
}

// Mul multiplies the current sum by factor. The product is exact when factor
// is a power of two; otherwise each scaled partial picks up a rounding error,
// which re-folding the last partial corrects.
func (f *Fsum) Mul(factor float64) error {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return notFinite(factor)
	}
	if len(f.ps) == 0 {
		return nil
	}
	for i := range f.ps {
		f.ps[i] *= factor
	}
	last := f.ps[len(f.ps)-1]
	f.ps = f.ps[:len(f.ps)-1]
	if err := f.Add(last); err != nil {
		return err
	}
	f.n-- // Add counted the re-folded partial as a new value
	return nil
}

// Sum collapses the partials into a single float, summing from smallest to
// largest magnitude with a half-even correction when the residue's sign
// matches the next partial's. The call is non-destructive: the collapsed
// partials replace the old ones and accumulation may continue.
func (f *Fsum) Sum() (float64, error) {
	ps := f.ps
	i := len(ps) - 1
	if i < 0 {
		return 0, nil
	}
	s := ps[i]
	for i > 0 {
		i--
		var p float64
		var err error
		s, p, err = twoSum(s, ps[i])
		if err != nil {
			return 0, err
		}
		ps = ps[:i+1]
		ps[i] = s
		if p != 0 { // the collapsed sum became inexact
			ps = append(ps, p)
			if i > 0 {
				s, err = halfEven(s, ps[i-1], p)
				if err != nil {
					return 0, err
				}
			}
			break
		}
	}
	f.ps = ps
	return s, nil
}

// halfEven applies round-half-to-even: when the residue p and the next
// partial r carry the same sign, the plain collapse would round twice the
// same way, so s is nudged by 2p when that lands on an exact sum.
func halfEven(s, r, p float64) (float64, error) {
	if (r > 0 && p > 0) || (r < 0 && p < 0) {
		t, q, err := twoSum(s, p*2)
		if err != nil {
			return 0, err
		}
		if q == 0 {
			s = t
		}
	}
	return s, nil
}

// Sum computes the precision sum of a slice of values.
func Sum(values []float64) (float64, error) {
	f := Fsum{}
	if err := f.Add(values...); err != nil {
		return 0, err
	}
	return f.Sum()
}

// Sums computes the precision sum of the given values.
func Sums(values ...float64) (float64, error) {
	return Sum(values)
}
