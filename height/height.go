// Package height interpolates the height of locations from a fixed set of
// points with known heights, called knots. Two families are provided:
// inverse distance weighting over a pluggable angular distance kernel
// (package geodist) and tensor-product spline surfaces fitted by a
// numerical backend (package bspline by default).
//
// An interpolator is built once from its knots and is immutable afterwards;
// evaluation is read-only and safe for concurrent use. The knots do not need
// to be ordered.
package height

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwilder23/geomath"
)

// Kind labels the failure classes of a HeightError.
type Kind int

const (
	// KindInsufficientKnots: fewer knots or query points than required.
	KindInsufficientKnots Kind = iota + 1

	// KindInvalidKnot: a knot or query point with non-finite coordinates,
	// or one lacking a capability a variant needs.
	KindInvalidKnot

	// KindInvalidParam: an out-of-range construction parameter, such as a
	// beta outside 1..3 or a non-positive weight.
	KindInvalidParam

	// KindLenMismatch: parallel slices of different lengths.
	KindLenMismatch

	// KindSplineIssue: a failure inside the spline fitting backend,
	// re-raised under this package's error type.
	KindSplineIssue
)

func (k Kind) String() string {
	switch k {
	case KindInsufficientKnots:
		return "insufficient knots"
	case KindInvalidKnot:
		return "invalid knot"
	case KindInvalidParam:
		return "invalid parameter"
	case KindLenMismatch:
		return "length mismatch"
	case KindSplineIssue:
		return "spline issue"
	}
	return "height error"
}

// HeightError is the error type of every failure in this package.
type HeightError struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, may be nil
}

func (e *HeightError) Error() string {
	s := e.Kind.String()
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *HeightError) Unwrap() error { return e.Err }

// IsKind reports whether err is a HeightError of the given kind.
func IsKind(err error, k Kind) bool {
	var he *HeightError
	return errors.As(err, &he) && he.Kind == k
}

func errInsufficient(need, got int) error {
	return &HeightError{
		Kind: KindInsufficientKnots,
		Msg:  fmt.Sprintf("need %d, got %d", need, got),
	}
}

func errKnot(what string, i int, p geomath.Point) error {
	return &HeightError{
		Kind: KindInvalidKnot,
		Msg: fmt.Sprintf("%s[%d]: lat %g, lon %g, height %g",
			what, i, p.Lat(), p.Lon(), p.Height()),
	}
}

func errParam(name string, v interface{}) error {
	return &HeightError{
		Kind: KindInvalidParam,
		Msg:  fmt.Sprintf("%s = %v", name, v),
	}
}

// Interpolator is the contract every height interpolator satisfies. The
// three Eval entry points share one implementation and differ only in call
// shape; Height and Heights take split lat-/longitudes instead of Points.
type Interpolator interface {
	// Eval interpolates the height at a single location.
	Eval(ll geomath.Point) (float64, error)

	// EvalAll interpolates the heights at all locations; the result has one
	// entry per location, in order.
	EvalAll(lls []geomath.Point) ([]float64, error)

	// EvalEach is the variadic form of EvalAll.
	EvalEach(lls ...geomath.Point) ([]float64, error)

	// Height interpolates the height at a latitude and longitude in degrees.
	Height(lat, lon float64) (float64, error)

	// Heights interpolates the heights at parallel lat-/longitude slices.
	Heights(lats, lons []float64) ([]float64, error)

	// Kmin returns the minimum number of knots the variant requires.
	Kmin() int
}

// coordMode selects how query points are converted before evaluation.
type coordMode int

const (
	modeOffset coordMode = iota // x in [0, 2pi), y in [0, pi)
	modeSigned                  // x in [-pi, pi), y in [-pi/2, pi/2)
	modeDegrees                 // raw degrees, x = lon, y = lat
)

// base carries the evaluation plumbing shared by every interpolator: query
// conversion and the five entry-point shapes over a single ev function.
type base struct {
	kmin int
	mode coordMode
	ev   func(x, y float64) (float64, error)
	evll func(ll geomath.Point) (float64, error) // overrides ev when set
}

func (b *base) Kmin() int { return b.kmin }

func (b *base) Eval(ll geomath.Point) (float64, error) {
	if !geomath.IsFinite(ll.Lat()) || !geomath.IsFinite(ll.Lon()) {
		return 0, errKnot("query", 0, ll)
	}
	if b.evll != nil {
		return b.evll(ll)
	}
	x, y := convert(ll, b.mode)
	return b.ev(x, y)
}

func (b *base) EvalAll(lls []geomath.Point) ([]float64, error) {
	if len(lls) < 1 {
		return nil, errInsufficient(1, len(lls))
	}
	hs := make([]float64, len(lls))
	for i, ll := range lls {
		if !geomath.IsFinite(ll.Lat()) || !geomath.IsFinite(ll.Lon()) {
			return nil, errKnot("query", i, ll)
		}
		var err error
		if b.evll != nil {
			hs[i], err = b.evll(ll)
		} else {
			x, y := convert(ll, b.mode)
			hs[i], err = b.ev(x, y)
		}
		if err != nil {
			return nil, err
		}
	}
	return hs, nil
}

func (b *base) EvalEach(lls ...geomath.Point) ([]float64, error) {
	return b.EvalAll(lls)
}

func (b *base) Height(lat, lon float64) (float64, error) {
	return b.Eval(geomath.NewLatLon(lat, lon, 0))
}

func (b *base) Heights(lats, lons []float64) ([]float64, error) {
	if len(lats) != len(lons) {
		return nil, &HeightError{
			Kind: KindLenMismatch,
			Msg:  fmt.Sprintf("%d lats vs %d lons", len(lats), len(lons)),
		}
	}
	lls := make([]geomath.Point, len(lats))
	for i := range lats {
		lls[i] = geomath.NewLatLon(lats[i], lons[i], 0)
	}
	return b.EvalAll(lls)
}

// convert maps a location's (lon, lat) degrees into the interpolator's
// internal coordinates.
func convert(ll geomath.Point, mode coordMode) (x, y float64) {
	if mode == modeDegrees {
		return ll.Lon(), ll.Lat()
	}
	x = geomath.RadiansPI2(ll.Lon() + 180)
	// Lat+90 lands in [0, 180] for valid latitudes; the wrap only folds
	// out-of-range input, and the clamp keeps the north pole at pi.
	y = math.Max(0, geomath.RadiansPI(ll.Lat()+90))
	if mode == modeSigned {
		x -= math.Pi
		y -= math.Pi / 2
	}
	return x, y
}

// knotArrays converts and validates knots into coordinate and height arrays.
func knotArrays(knots []geomath.Point, mode coordMode, kmin int) (xs, ys, hs []float64, err error) {
	if len(knots) < kmin {
		return nil, nil, nil, errInsufficient(kmin, len(knots))
	}
	xs = make([]float64, len(knots))
	ys = make([]float64, len(knots))
	hs = make([]float64, len(knots))
	for i, k := range knots {
		if !geomath.IsFinite(k.Lat()) || !geomath.IsFinite(k.Lon()) ||
			!geomath.IsFinite(k.Height()) {
			return nil, nil, nil, errKnot("knots", i, k)
		}
		xs[i], ys[i] = convert(k, mode)
		hs[i] = k.Height()
	}
	return xs, ys, hs, nil
}

// ordedup clips values into [lo, hi], orders them and drops duplicates,
// returning a strictly increasing slice. The spherical spline variants use
// it to derive interior knot lines away from the periodic boundary.
func ordedup(ts []float64, lo, hi float64) []float64 {
	s := make([]float64, len(ts))
	for i, t := range ts {
		s[i] = math.Min(hi, math.Max(lo, t))
	}
	sortFloats(s)
	ks := s[:0]
	p := math.Inf(-1)
	for _, k := range s {
		if k > p {
			ks = append(ks, k)
			p = k
		}
	}
	return ks
}

func sortFloats(s []float64) {
	// Insertion sort; knot line counts are small.
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

// subsample thins vs to at most max entries, keeping the ends.
func subsample(vs []float64, max int) []float64 {
	if max <= 0 {
		return nil
	}
	if len(vs) <= max {
		return vs
	}
	out := make([]float64, max)
	step := float64(len(vs)-1) / float64(max-1)
	for i := range out {
		out[i] = vs[int(float64(i)*step+0.5)]
	}
	return out
}
