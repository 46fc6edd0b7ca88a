package geodist

import (
	"math"

	"github.com/tidwall/geodesic"
)

// GeodesicOf returns the exact inverse geodesic kernel for the ellipsoid, nil
// meaning WGS84. Unlike the radians kernels the returned function takes full
// positions, in degrees, and resolves the shortest path itself; it reports a
// non-negative angular arc in degrees. The heavy lifting is Karney's
// algorithm as ported by the geodesic package; the metric distance it yields
// is turned back into an arc over the ellipsoid's mean radius.
func GeodesicOf(e *Ellipsoid) func(lat1, lon1, lat2, lon2 float64) float64 {
	e = orWGS84(e)
	g := geodesic.WGS84
	if e != WGS84 {
		g = geodesic.NewEllipsoid(e.A, e.F)
	}
	r := e.RadiusMean()
	return func(lat1, lon1, lat2, lon2 float64) float64 {
		var s12 float64
		g.Inverse(lat1, lon1, lat2, lon2, &s12, nil, nil)
		return math.Abs(s12 / r * (180 / math.Pi))
	}
}

// Geodesic is the WGS84 geodesic arc between two points in degrees.
func Geodesic(lat1, lon1, lat2, lon2 float64) float64 {
	return wgs84Arc(lat1, lon1, lat2, lon2)
}

var wgs84Arc = GeodesicOf(nil)
