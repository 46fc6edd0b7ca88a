package sphere

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwilder23/geomath"
)

var (
	// ErrRadius: a circle radius is negative or exceeds pi radians.
	ErrRadius = errors.New("invalid circle radius")

	// ErrNearConcentric: the centers (nearly) coincide or are antipodal,
	// leaving the intersection direction undefined.
	ErrNearConcentric = errors.New("near-concentric circles")

	// ErrTooDistant: the circles do not touch.
	ErrTooDistant = errors.New("too distant circles")
)

// CircleIntersections computes the two points where the circles around c1
// and c2 with radii rad1 and rad2 cross. The radii are in the units of the
// earth radius; a zero radius argument means the mean earth radius in
// meters, a negative one means rad1 and rad2 are angular and already in
// radians. Abutting circles return the same point twice.
func CircleIntersections(c1 geomath.Point, rad1 float64, c2 geomath.Point, rad2 float64, radius float64) (geomath.LatLon, geomath.LatLon, error) {
	r1, r2 := rad1, rad2
	if radius >= 0 {
		r := orRadiusMean(radius)
		r1 /= r
		r2 /= r
	}
	x1, x2 := NewVec(c1.Lat(), c1.Lon()), NewVec(c2.Lat(), c2.Lon())
	if r1 < r2 {
		r1, r2 = r2, r1
		x1, x2 = x2, x1
	}
	var zero geomath.LatLon
	if r1 < 0 || r1 > math.Pi {
		return zero, zero, fmt.Errorf("%w: %g, %g radians", ErrRadius, r1, r2)
	}

	n, q := x1.Cross(x2), x1.Dot(x2)
	n2, q21 := n.Dot(n), 1-q*q
	if math.Min(math.Abs(q21), n2) < geomath.EPS {
		return zero, zero, ErrNearConcentric
	}

	cr1, cr2 := math.Cos(r1), math.Cos(r2)
	a := (cr1 - q*cr2) / q21
	b := (cr2 - q*cr1) / q21
	x0 := x1.Times(a).Plus(x2.Times(b))

	x := 1 - x0.Dot(x0)
	if x < geomath.EPS {
		return zero, zero, ErrTooDistant
	}
	n = n.Times(math.Sqrt(x / n2))
	if n.Length() <= geomath.EPS {
		// abutting circles
		p := x0.LatLon(0)
		return p, p, nil
	}
	return x0.Plus(n).LatLon(0), x0.Minus(n).LatLon(0), nil
}
