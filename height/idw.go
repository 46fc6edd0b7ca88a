package height

import (
	"math"

	"github.com/cwilder23/geomath"
	"github.com/cwilder23/geomath/geodist"
	"github.com/cwilder23/geomath/math/fmath"
)

// Datumed is the optional capability of knots that carry their own
// reference ellipsoid; the datum-aware variants pick it up from the first
// knot when no explicit datum is given.
type Datumed interface {
	Datum() *geodist.Ellipsoid
}

// Distancer is the capability NewIDWDistanceTo requires of its knots.
type Distancer interface {
	DistanceTo(other geomath.Point) float64
}

// IDW interpolates heights as the inverse-distance-weighted average of all
// knot heights, with weights 1 / distance**beta. A query coinciding with a
// knot returns that knot's height exactly. The distance kernel is fixed per
// variant; construct with one of the NewIDW... functions.
type IDW struct {
	base
	xs, ys, hs []float64
	beta       int
	wrap       bool
	adjust     bool
	datum      *geodist.Ellipsoid
	dist       func(i int, x, y float64) float64
}

// Beta returns the inverse distance power.
func (d *IDW) Beta() int { return d.beta }

// Wrap reports whether longitudinal deltas are unrolled across the
// anti-meridian.
func (d *IDW) Wrap() bool { return d.wrap }

// Adjust reports whether longitudinal deltas are scaled by the latitudinal
// cosine, for the variants that support it.
func (d *IDW) Adjust() bool { return d.adjust }

// Datum returns the reference ellipsoid of the datum-aware variants, or
// nil for the spherical ones.
func (d *IDW) Datum() *geodist.Ellipsoid { return d.datum }

func newIDW(knots []geomath.Point, beta int, mode coordMode) (*IDW, error) {
	if beta < 1 || beta > 3 {
		return nil, errParam("beta", beta)
	}
	xs, ys, hs, err := knotArrays(knots, mode, 2)
	if err != nil {
		return nil, err
	}
	d := &IDW{xs: xs, ys: ys, hs: hs, beta: beta}
	d.base = base{kmin: 2, mode: mode, ev: d.eval}
	return d, nil
}

func (d *IDW) eval(x, y float64) (float64, error) {
	ds := make([]float64, len(d.hs))
	for i := range ds {
		ds[i] = d.dist(i, x, y)
	}
	return fidw(d.hs, ds, d.beta)
}

// fidw returns the inverse-distance-weighted mean of hs. An exact zero
// distance short-circuits to the matching height; negative or non-finite
// distances are rejected.
func fidw(hs, ds []float64, beta int) (float64, error) {
	best, min := -1, math.Inf(1)
	for i, d := range ds {
		if d < 0 || !geomath.IsFinite(d) {
			return 0, errParam("distance", d)
		}
		if d < min {
			best, min = i, d
		}
	}
	if best < 0 {
		return 0, errInsufficient(1, 0)
	}
	if min == 0 {
		return hs[best], nil
	}
	var num, den fmath.Fsum
	for i, d := range ds {
		w := 1 / powInt(d, beta)
		if err := den.Add(w); err != nil {
			return 0, &HeightError{Kind: KindInvalidParam, Err: err}
		}
		if err := num.Add(w * hs[i]); err != nil {
			return 0, &HeightError{Kind: KindInvalidParam, Err: err}
		}
	}
	n, err := num.Sum()
	if err != nil {
		return 0, &HeightError{Kind: KindInvalidParam, Err: err}
	}
	m, err := den.Sum()
	if err != nil {
		return 0, &HeightError{Kind: KindInvalidParam, Err: err}
	}
	return n / m, nil
}

func powInt(d float64, beta int) float64 {
	switch beta {
	case 1:
		return d
	case 2:
		return d * d
	}
	return d * d * d
}

// resolveDatum picks the explicit ellipsoid when given, otherwise the one
// carried by the first knot, otherwise WGS84.
func resolveDatum(knots []geomath.Point, e *geodist.Ellipsoid) *geodist.Ellipsoid {
	if e != nil {
		return e
	}
	if len(knots) > 0 {
		if dk, ok := knots[0].(Datumed); ok && dk.Datum() != nil {
			return dk.Datum()
		}
	}
	return geodist.WGS84
}

// spherical builds a variant whose kernel takes both latitudes and the
// unrolled longitudinal delta, all in radians.
func spherical(knots []geomath.Point, beta int, wrap bool, k geodist.Kernel) (*IDW, error) {
	d, err := newIDW(knots, beta, modeSigned)
	if err != nil {
		return nil, err
	}
	d.wrap = wrap
	d.dist = func(i int, x, y float64) float64 {
		return k(d.ys[i], y, geomath.UnrollPI(d.xs[i], x, d.wrap))
	}
	return d, nil
}

// datumed builds a variant whose kernel additionally corrects for the
// flattening of a reference ellipsoid.
func datumed(knots []geomath.Point, datum *geodist.Ellipsoid, beta int, wrap bool, k geodist.DatumKernel) (*IDW, error) {
	d, err := newIDW(knots, beta, modeSigned)
	if err != nil {
		return nil, err
	}
	d.wrap = wrap
	d.datum = resolveDatum(knots, datum)
	d.dist = func(i int, x, y float64) float64 {
		return k(d.ys[i], y, geomath.UnrollPI(d.xs[i], x, d.wrap), d.datum)
	}
	return d, nil
}

// NewIDWCosineLaw uses the spherical law of cosines distance.
func NewIDWCosineLaw(knots []geomath.Point, beta int, wrap bool) (*IDW, error) {
	return spherical(knots, beta, wrap, geodist.CosineLaw)
}

// NewIDWHaversine uses the haversine distance.
func NewIDWHaversine(knots []geomath.Point, beta int, wrap bool) (*IDW, error) {
	return spherical(knots, beta, wrap, geodist.Haversine)
}

// NewIDWVincentys uses Vincenty's spherical distance.
func NewIDWVincentys(knots []geomath.Point, beta int, wrap bool) (*IDW, error) {
	return spherical(knots, beta, wrap, geodist.Vincentys)
}

// NewIDWFlatPolar uses the polar coordinate flat-earth distance.
func NewIDWFlatPolar(knots []geomath.Point, beta int, wrap bool) (*IDW, error) {
	return spherical(knots, beta, wrap, geodist.FlatPolar)
}

// NewIDWEuclidean uses a plain euclidean approximation; with adjust the
// longitudinal delta is scaled by the latitudinal cosine.
func NewIDWEuclidean(knots []geomath.Point, beta int, adjust bool) (*IDW, error) {
	d, err := newIDW(knots, beta, modeSigned)
	if err != nil {
		return nil, err
	}
	d.adjust = adjust
	d.dist = func(i int, x, y float64) float64 {
		return geodist.Euclidean(d.ys[i], y, d.xs[i]-x, d.adjust)
	}
	return d, nil
}

// NewIDWEquirect uses the squared equirectangular approximation. The power
// is fixed at one since the distances are already squared.
func NewIDWEquirect(knots []geomath.Point, adjust, wrap bool) (*IDW, error) {
	d, err := newIDW(knots, 1, modeSigned)
	if err != nil {
		return nil, err
	}
	d.adjust = adjust
	d.wrap = wrap
	d.dist = func(i int, x, y float64) float64 {
		dl := geomath.UnrollPI(d.xs[i], x, d.wrap)
		return geodist.Equirect(d.ys[i], y, dl, d.adjust)
	}
	return d, nil
}

// NewIDWCosineAndoyerLambert corrects the law of cosines distance with
// Andoyer's first order flattening terms. A nil datum means WGS84 unless
// the first knot carries its own.
func NewIDWCosineAndoyerLambert(knots []geomath.Point, datum *geodist.Ellipsoid, beta int, wrap bool) (*IDW, error) {
	return datumed(knots, datum, beta, wrap, geodist.CosineAndoyerLambert)
}

// NewIDWCosineForsytheAndoyerLambert applies the Forsythe-Andoyer-Lambert
// correction on the reduced latitudes.
func NewIDWCosineForsytheAndoyerLambert(knots []geomath.Point, datum *geodist.Ellipsoid, beta int, wrap bool) (*IDW, error) {
	return datumed(knots, datum, beta, wrap, geodist.CosineForsytheAndoyerLambert)
}

// NewIDWThomas uses Thomas' ellipsoidal approximation.
func NewIDWThomas(knots []geomath.Point, datum *geodist.Ellipsoid, beta int, wrap bool) (*IDW, error) {
	return datumed(knots, datum, beta, wrap, geodist.Thomas)
}

// NewIDWFlatLocal uses the squared Hubeny distance with the ellipsoid's
// radii of curvature at the mean latitude.
func NewIDWFlatLocal(knots []geomath.Point, datum *geodist.Ellipsoid, beta int, wrap bool) (*IDW, error) {
	return datumed(knots, datum, beta, wrap, geodist.FlatLocal)
}

// NewIDWHubeny is NewIDWFlatLocal under its other name.
func NewIDWHubeny(knots []geomath.Point, datum *geodist.Ellipsoid, beta int, wrap bool) (*IDW, error) {
	return NewIDWFlatLocal(knots, datum, beta, wrap)
}

// NewIDWGeodesic uses the exact geodesic arc between the points, in degrees.
// A nil datum means WGS84 unless the first knot carries its own.
func NewIDWGeodesic(knots []geomath.Point, datum *geodist.Ellipsoid, beta int, wrap bool) (*IDW, error) {
	d, err := newIDW(knots, beta, modeDegrees)
	if err != nil {
		return nil, err
	}
	d.wrap = wrap
	d.datum = resolveDatum(knots, datum)
	arc := geodist.GeodesicOf(d.datum)
	d.dist = func(i int, x, y float64) float64 {
		if d.wrap {
			x = d.xs[i] + geomath.Wrap180(x-d.xs[i])
		}
		return arc(d.ys[i], d.xs[i], y, x)
	}
	return d, nil
}

// NewIDWDistanceTo defers the distance to the knots themselves, which must
// implement Distancer.
func NewIDWDistanceTo(knots []geomath.Point, beta int) (*IDW, error) {
	if beta < 1 || beta > 3 {
		return nil, errParam("beta", beta)
	}
	if len(knots) < 2 {
		return nil, errInsufficient(2, len(knots))
	}
	ks := make([]Distancer, len(knots))
	hs := make([]float64, len(knots))
	for i, k := range knots {
		dk, ok := k.(Distancer)
		if !ok || !geomath.IsFinite(k.Height()) {
			return nil, errKnot("knots", i, k)
		}
		ks[i] = dk
		hs[i] = k.Height()
	}
	d := &IDW{hs: hs, beta: beta}
	d.base = base{kmin: 2}
	d.base.evll = func(ll geomath.Point) (float64, error) {
		ds := make([]float64, len(ks))
		for i := range ds {
			ds[i] = ks[i].DistanceTo(ll)
		}
		return fidw(hs, ds, beta)
	}
	return d, nil
}
