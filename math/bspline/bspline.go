// Package bspline fits tensor-product B-spline surfaces to scattered data by
// weighted linear least squares. It is the numerical backend behind the
// spline height interpolators: they prepare spherical coordinates and knot
// lines, this package owns the basis algebra and the solve (via gonum).
package bspline

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrTooFewSamples is wrapped by errors returned when the sample count
	// cannot determine the requested basis.
	ErrTooFewSamples = errors.New("too few samples")

	// ErrBadOptions is wrapped by errors returned for invalid degrees,
	// domains, knot lines or weights.
	ErrBadOptions = errors.New("bad options")

	// ErrSingular is wrapped by errors returned when the least squares
	// system cannot be solved reliably.
	ErrSingular = errors.New("singular system")
)

// Options configures a surface fit.
type Options struct {
	// DegreeX and DegreeY are the spline degrees per axis, 1 or 3.
	DegreeX, DegreeY int

	// KnotsX and KnotsY are the interior knot lines, strictly increasing
	// and strictly inside the domain. May be empty.
	KnotsX, KnotsY []float64

	// X0, X1, Y0, Y1 bound the fitting domain. Evaluation outside the
	// domain clamps to its edge.
	X0, X1, Y0, Y1 float64

	// Smooth is a ridge damping factor. Zero requests a plain least squares
	// fit, which then needs at least as many samples as coefficients;
	// positive values trade fidelity for smoothness and keep the system
	// solvable for any sample count.
	Smooth float64
}

// Surface is a fitted tensor-product B-spline surface.
type Surface struct {
	tx, ty []float64 // clamped knot vectors
	kx, ky int
	c      []float64 // coefficients, c[ix*ny + iy]
	nx, ny int
}

// Fit fits a surface z(x, y) to the samples. w is an optional per-sample
// weight slice (nil for uniform weights); weights must be positive.
func Fit(x, y, z, w []float64, opt Options) (*Surface, error) {
	m := len(z)
	if len(x) != m || len(y) != m {
		return nil, fmt.Errorf("%w: %d/%d/%d samples",
			ErrBadOptions, len(x), len(y), m)
	}
	if w != nil && len(w) != m {
		return nil, fmt.Errorf("%w: %d weights for %d samples",
			ErrBadOptions, len(w), m)
	}
	for _, wi := range w {
		if !(wi > 0) {
			return nil, fmt.Errorf("%w: weight %g", ErrBadOptions, wi)
		}
	}
	if err := checkAxis(opt.DegreeX, opt.X0, opt.X1, opt.KnotsX); err != nil {
		return nil, err
	}
	if err := checkAxis(opt.DegreeY, opt.Y0, opt.Y1, opt.KnotsY); err != nil {
		return nil, err
	}

	s := &Surface{
		tx: knotVector(opt.DegreeX, opt.X0, opt.X1, opt.KnotsX),
		ty: knotVector(opt.DegreeY, opt.Y0, opt.Y1, opt.KnotsY),
		kx: opt.DegreeX,
		ky: opt.DegreeY,
	}
	s.nx = len(s.tx) - opt.DegreeX - 1
	s.ny = len(s.ty) - opt.DegreeY - 1
	n := s.nx * s.ny

	rows := m
	if opt.Smooth > 0 {
		rows += n
	} else if m < n {
		return nil, fmt.Errorf("%w: %d samples for %d coefficients",
			ErrTooFewSamples, m, n)
	}

	a := mat.NewDense(rows, n, nil)
	b := mat.NewVecDense(rows, nil)
	bx := make([]float64, s.kx+1)
	by := make([]float64, s.ky+1)
	for i := 0; i < m; i++ {
		wi := 1.0
		if w != nil {
			wi = math.Sqrt(w[i])
		}
		sx := findSpan(s.tx, s.kx, s.nx, clamp(x[i], opt.X0, opt.X1))
		sy := findSpan(s.ty, s.ky, s.ny, clamp(y[i], opt.Y0, opt.Y1))
		basisFuns(s.tx, sx, s.kx, clamp(x[i], opt.X0, opt.X1), bx)
		basisFuns(s.ty, sy, s.ky, clamp(y[i], opt.Y0, opt.Y1), by)
		for rx := 0; rx <= s.kx; rx++ {
			for ry := 0; ry <= s.ky; ry++ {
				col := (sx-s.kx+rx)*s.ny + (sy - s.ky + ry)
				a.Set(i, col, wi*bx[rx]*by[ry])
			}
		}
		b.SetVec(i, wi*z[i])
	}
	if opt.Smooth > 0 {
		d := math.Sqrt(opt.Smooth)
		for j := 0; j < n; j++ {
			a.Set(m+j, j, d)
		}
	}

	var qr mat.QR
	qr.Factorize(a)
	cv := mat.NewVecDense(n, nil)
	if err := qr.SolveVecTo(cv, false, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	s.c = make([]float64, n)
	copy(s.c, cv.RawVector().Data)
	return s, nil
}

// Eval evaluates the surface at (x, y), clamping coordinates outside the
// fitting domain to its edge.
func (s *Surface) Eval(x, y float64) float64 {
	x = clamp(x, s.tx[s.kx], s.tx[len(s.tx)-s.kx-1])
	y = clamp(y, s.ty[s.ky], s.ty[len(s.ty)-s.ky-1])

	sx := findSpan(s.tx, s.kx, s.nx, x)
	sy := findSpan(s.ty, s.ky, s.ny, y)
	bx := make([]float64, s.kx+1)
	by := make([]float64, s.ky+1)
	basisFuns(s.tx, sx, s.kx, x, bx)
	basisFuns(s.ty, sy, s.ky, y, by)

	v := 0.0
	for rx := 0; rx <= s.kx; rx++ {
		row := (sx - s.kx + rx) * s.ny
		for ry := 0; ry <= s.ky; ry++ {
			v += bx[rx] * by[ry] * s.c[row+sy-s.ky+ry]
		}
	}
	return v
}

// EvalAll evaluates the surface at all the given points. If an output array
// is given, the output is written to that array (the array is still returned
// as a convenience).
func (s *Surface) EvalAll(xs, ys []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i := range xs {
		out[0][i] = s.Eval(xs[i], ys[i])
	}
	return out[0]
}

func checkAxis(k int, lo, hi float64, knots []float64) error {
	if k != 1 && k != 3 {
		return fmt.Errorf("%w: degree %d", ErrBadOptions, k)
	}
	if !(lo < hi) {
		return fmt.Errorf("%w: domain [%g, %g]", ErrBadOptions, lo, hi)
	}
	p := lo
	for _, t := range knots {
		if !(t > p) || !(t < hi) {
			return fmt.Errorf("%w: knot %g outside (%g, %g) or unordered",
				ErrBadOptions, t, lo, hi)
		}
		p = t
	}
	return nil
}

// knotVector builds a clamped knot vector: degree+1 copies of each domain
// end around the interior knots.
func knotVector(k int, lo, hi float64, interior []float64) []float64 {
	t := make([]float64, 0, 2*(k+1)+len(interior))
	for i := 0; i <= k; i++ {
		t = append(t, lo)
	}
	t = append(t, interior...)
	for i := 0; i <= k; i++ {
		t = append(t, hi)
	}
	return t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// findSpan returns the knot span index i with t[i] <= u < t[i+1], clamped to
// the valid range [k, n-1]. Uses a uniform-spacing guess before falling back
// to binary search.
func findSpan(t []float64, k, n int, u float64) int {
	if u >= t[n] {
		return n - 1
	}
	lo, hi := k, n
	if span := len(t) - 2*(k+1) + 1; span > 1 {
		guess := k + int((u-t[k])/(t[n]-t[k])*float64(span))
		if guess >= lo && guess < hi && t[guess] <= u && u < t[guess+1] {
			return guess
		}
	}
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if u < t[mid] {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}

// basisFuns computes the k+1 nonzero basis functions at u on the given span
// into out (Cox-de Boor recursion).
func basisFuns(t []float64, span, k int, u float64, out []float64) {
	var left, right [4]float64 // k <= 3
	out[0] = 1
	for j := 1; j <= k; j++ {
		left[j-1] = u - t[span+1-j]
		right[j-1] = t[span+j] - u
		saved := 0.0
		for r := 0; r < j; r++ {
			tmp := out[r] / (right[r] + left[j-1-r])
			out[r] = saved + right[r]*tmp
			saved = left[j-1-r] * tmp
		}
		out[j] = saved
	}
}
