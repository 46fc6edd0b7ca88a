// Package geodist provides the angular distance kernels used by the height
// interpolators: spherical great-circle formulas, flat-earth approximations
// and flattening-corrected ellipsoidal approximations. A kernel is a
// stateless function of two latitudes and an (already wrapped or unrolled)
// longitudinal delta, all in radians, returning an angular distance in
// radians (squared radians for the two "flat" kernels). The exact geodesic
// kernel is the exception: it works in degrees end to end.
package geodist

import "math"

// Ellipsoid is the minimal reference ellipsoid the datum-aware kernels need:
// equatorial radius, polar radius and flattening, plus the derived squared
// eccentricities.
type Ellipsoid struct {
	A, B, F float64 // equatorial radius, polar radius (meters), flattening
	E2      float64 // first eccentricity squared, f*(2 - f)
	E22     float64 // second eccentricity squared, e2/(1 - e2)
}

// NewEllipsoid creates an ellipsoid from its equatorial radius in meters and
// flattening factor.
func NewEllipsoid(a, f float64) *Ellipsoid {
	e2 := f * (2 - f)
	return &Ellipsoid{
		A:   a,
		B:   a * (1 - f),
		F:   f,
		E2:  e2,
		E22: e2 / (1 - e2),
	}
}

// WGS84 is the World Geodetic System 1984 ellipsoid. Datum-aware kernels
// treat a nil *Ellipsoid as WGS84.
var WGS84 = NewEllipsoid(6378137, 1/298.257223563)

// RadiusMean returns the mean radius (2a + b) / 3 in meters.
func (e *Ellipsoid) RadiusMean() float64 {
	return (2*e.A + e.B) / 3
}

func orWGS84(e *Ellipsoid) *Ellipsoid {
	if e == nil {
		return WGS84
	}
	return e
}

// acos1 is acos clamped to the domain [-1, 1], guarding the cosine-law
// kernels against rounding just past the ends.
func acos1(x float64) float64 {
	if x >= 1 {
		return 0
	}
	if x <= -1 {
		return math.Pi
	}
	return math.Acos(x)
}
