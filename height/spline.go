package height

import (
	"math"

	"github.com/cwilder23/geomath"
	"github.com/cwilder23/geomath/math/bspline"
)

// Surface is a fitted height surface over the offset spherical coordinates,
// longitude in [0, 2pi) and colatitude-like latitude in [0, pi].
type Surface interface {
	Eval(x, y float64) float64
}

// Fitter fits a Surface to weighted scattered samples. The spline
// interpolators resolve their backend through DefaultFitter.
type Fitter interface {
	Fit(x, y, z, w []float64, opt bspline.Options) (Surface, error)
}

// BSplineFitter fits tensor-product B-spline surfaces by least squares.
type BSplineFitter struct{}

func (BSplineFitter) Fit(x, y, z, w []float64, opt bspline.Options) (Surface, error) {
	s, err := bspline.Fit(x, y, z, w, opt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// DefaultFitter is the backend used by the spline constructors. Programs
// substituting another implementation must do so once at startup, before
// any interpolator is built.
var DefaultFitter Fitter = BSplineFitter{}

// boundary keeps interior knot lines off the periodic domain edges.
const boundary = 1e-4

// Spline interpolates heights by evaluating a spline surface fitted to the
// knots once at construction time. Construct with NewLinear, NewCubic,
// NewLSQSphereSpline or NewSmoothSphereSpline.
type Spline struct {
	base
	surf   Surface
	degree int
}

// Degree returns the per-axis spline degree, 1 or 3.
func (s *Spline) Degree() int { return s.degree }

func newSpline(knots []geomath.Point, kmin, degree int, w []float64, smooth float64) (*Spline, error) {
	xs, ys, hs, err := knotArrays(knots, modeOffset, kmin)
	if err != nil {
		return nil, err
	}
	if w != nil {
		if len(w) != len(hs) {
			return nil, &HeightError{Kind: KindLenMismatch,
				Msg: "weights vs knots"}
		}
		for _, wi := range w {
			if !(wi > 0) || !geomath.IsFinite(wi) {
				return nil, errParam("weight", wi)
			}
		}
	}

	opt := bspline.Options{
		DegreeX: degree, DegreeY: degree,
		X0: 0, X1: 2 * math.Pi,
		Y0: 0, Y1: math.Pi,
		Smooth: smooth,
	}
	// Pick interior knot lines from the sample ordinates, thinned so the
	// least squares system stays overdetermined.
	m := len(hs)
	per := int(math.Sqrt(float64(m))) - degree - 1
	opt.KnotsX = subsample(ordedup(xs, boundary, 2*math.Pi-boundary), per)
	opt.KnotsY = subsample(ordedup(ys, boundary, math.Pi-boundary), per)
	n := (len(opt.KnotsX) + degree + 1) * (len(opt.KnotsY) + degree + 1)
	if opt.Smooth == 0 && m < n {
		opt.Smooth = 1e-12
	}

	surf, err := DefaultFitter.Fit(xs, ys, hs, w, opt)
	if err != nil {
		return nil, &HeightError{Kind: KindSplineIssue, Err: err}
	}
	s := &Spline{surf: surf, degree: degree}
	s.base = base{kmin: kmin, mode: modeOffset, ev: s.eval}
	return s, nil
}

func (s *Spline) eval(x, y float64) (float64, error) {
	return s.surf.Eval(x, y), nil
}

// NewLinear interpolates over a bilinear surface fitted to at least 2
// knots.
func NewLinear(knots []geomath.Point) (*Spline, error) {
	return newSpline(knots, 2, 1, nil, 0)
}

// NewCubic interpolates over a bicubic surface fitted to at least 16
// knots.
func NewCubic(knots []geomath.Point) (*Spline, error) {
	return newSpline(knots, 16, 3, nil, 0)
}

// NewLSQSphereSpline fits a weighted least squares bicubic surface to at
// least 16 knots. weights is per-knot and optional; nil means uniform, which
// also covers any single scalar weight since a uniform scale does not change
// the fit.
func NewLSQSphereSpline(knots []geomath.Point, weights []float64) (*Spline, error) {
	return newSpline(knots, 16, 3, weights, 0)
}

// NewSmoothSphereSpline fits a smoothing bicubic surface to at least 16
// knots. The smoothing factor s must be 4 or larger and is applied as
// damping on the fit.
func NewSmoothSphereSpline(knots []geomath.Point, s float64) (*Spline, error) {
	if !(s >= 4) || !geomath.IsFinite(s) {
		return nil, errParam("smoothing", s)
	}
	return newSpline(knots, 16, 3, nil, s*1e-12)
}
