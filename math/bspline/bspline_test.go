package bspline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func planeSamples(n int) (xs, ys, zs []float64) {
	// Scattered but deterministic coverage of the unit square.
	for i := 0; i < n; i++ {
		x := math.Mod(float64(i)*0.61803398875, 1.0)
		y := math.Mod(float64(i*i)*0.2643+0.17, 1.0)
		xs = append(xs, x)
		ys = append(ys, y)
		zs = append(zs, 2*x+3*y+1)
	}
	return xs, ys, zs
}

func unitOptions(degree int) Options {
	return Options{
		DegreeX: degree, DegreeY: degree,
		X0: 0, X1: 1, Y0: 0, Y1: 1,
	}
}

func TestFitPlaneLinear(t *testing.T) {
	xs, ys, zs := planeSamples(30)
	s, err := Fit(xs, ys, zs, nil, unitOptions(1))
	assert.NoError(t, err)

	// A degree-1 surface reproduces a plane everywhere.
	for _, p := range [][2]float64{{0.5, 0.5}, {0, 0}, {1, 1}, {0.2, 0.9}} {
		want := 2*p[0] + 3*p[1] + 1
		assert.InDelta(t, want, s.Eval(p[0], p[1]), 1e-9, "at %v", p)
	}
}

func TestFitPlaneCubic(t *testing.T) {
	xs, ys, zs := planeSamples(60)
	opt := unitOptions(3)
	opt.KnotsX = []float64{0.5}
	opt.KnotsY = []float64{0.5}
	s, err := Fit(xs, ys, zs, nil, opt)
	assert.NoError(t, err)

	for _, p := range [][2]float64{{0.5, 0.5}, {0.1, 0.8}, {0.9, 0.3}} {
		want := 2*p[0] + 3*p[1] + 1
		assert.InDelta(t, want, s.Eval(p[0], p[1]), 1e-8, "at %v", p)
	}
}

func TestFitSmoothQuadratic(t *testing.T) {
	var xs, ys, zs []float64
	for i := 0; i <= 10; i++ {
		for j := 0; j <= 10; j++ {
			x, y := float64(i)/10, float64(j)/10
			xs = append(xs, x)
			ys = append(ys, y)
			zs = append(zs, x*x+y*y)
		}
	}
	opt := unitOptions(3)
	opt.KnotsX = []float64{0.25, 0.5, 0.75}
	opt.KnotsY = []float64{0.25, 0.5, 0.75}
	opt.Smooth = 1e-9
	s, err := Fit(xs, ys, zs, nil, opt)
	assert.NoError(t, err)

	// Cubics represent quadratics exactly; the tiny ridge term only nudges.
	assert.InDelta(t, 0.5, s.Eval(0.5, 0.5), 1e-4)
	assert.InDelta(t, 0.0, s.Eval(0, 0), 1e-4)
}

func TestFitWeights(t *testing.T) {
	xs, ys, zs := planeSamples(40)
	w := make([]float64, len(zs))
	for i := range w {
		w[i] = 1 + float64(i%3)
	}
	s, err := Fit(xs, ys, zs, w, unitOptions(1))
	assert.NoError(t, err)
	assert.InDelta(t, 2*0.3+3*0.4+1, s.Eval(0.3, 0.4), 1e-9)

	_, err = Fit(xs, ys, zs, w[:3], unitOptions(1))
	assert.ErrorIs(t, err, ErrBadOptions)

	w[5] = 0
	_, err = Fit(xs, ys, zs, w, unitOptions(1))
	assert.ErrorIs(t, err, ErrBadOptions)
}

func TestFitErrors(t *testing.T) {
	xs, ys, zs := planeSamples(3)
	opt := unitOptions(3)
	_, err := Fit(xs, ys, zs, nil, opt)
	assert.ErrorIs(t, err, ErrTooFewSamples, "16 cubic coefficients from 3 samples")

	opt = unitOptions(2)
	_, err = Fit(xs, ys, zs, nil, opt)
	assert.ErrorIs(t, err, ErrBadOptions, "unsupported degree")

	opt = unitOptions(1)
	opt.X1 = 0
	_, err = Fit(xs, ys, zs, nil, opt)
	assert.ErrorIs(t, err, ErrBadOptions, "empty domain")

	opt = unitOptions(1)
	opt.KnotsX = []float64{0.9, 0.2}
	xs, ys, zs = planeSamples(30)
	_, err = Fit(xs, ys, zs, nil, opt)
	assert.ErrorIs(t, err, ErrBadOptions, "unordered knots")

	_, err = Fit(xs[:5], ys, zs, nil, unitOptions(1))
	assert.ErrorIs(t, err, ErrBadOptions, "length mismatch")
}

func TestEvalClamps(t *testing.T) {
	xs, ys, zs := planeSamples(30)
	s, err := Fit(xs, ys, zs, nil, unitOptions(1))
	assert.NoError(t, err)

	assert.Equal(t, s.Eval(0, 0.5), s.Eval(-2, 0.5))
	assert.Equal(t, s.Eval(1, 0.5), s.Eval(3, 0.5))
}

func TestEvalAll(t *testing.T) {
	xs, ys, zs := planeSamples(30)
	s, err := Fit(xs, ys, zs, nil, unitOptions(1))
	assert.NoError(t, err)

	qx := []float64{0.1, 0.5, 0.9}
	qy := []float64{0.9, 0.5, 0.1}
	got := s.EvalAll(qx, qy)
	assert.Len(t, got, 3)
	for i := range got {
		assert.Equal(t, s.Eval(qx[i], qy[i]), got[i])
	}

	buf := make([]float64, 3)
	got2 := s.EvalAll(qx, qy, buf)
	assert.Equal(t, got, got2)
}
