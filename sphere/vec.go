/*package sphere contains routines for spherical earth models: rhumb line
navigation, great circle latitude extrema and circle-circle intersections.

Positions are geomath Points in degrees; the cartesian helpers work on unit
vectors with the z axis through the north pole.
*/
package sphere

import (
	"math"

	"github.com/cwilder23/geomath"
)

// Vec is a three dimensional vector.
type Vec [3]float64

// NewVec returns the unit vector of a lat-/longitude in degrees.
func NewVec(lat, lon float64) Vec {
	sa, ca := math.Sincos(geomath.Radians(lat))
	sb, cb := math.Sincos(geomath.Radians(lon))
	return Vec{ca * cb, ca * sb, sa}
}

// Dot computes the inner product of v and u.
func (v Vec) Dot(u Vec) float64 {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2]
}

// Cross computes the cross product of v and u.
func (v Vec) Cross(u Vec) Vec {
	return Vec{
		v[1]*u[2] - v[2]*u[1],
		v[2]*u[0] - v[0]*u[2],
		v[0]*u[1] - v[1]*u[0],
	}
}

func (v Vec) Plus(u Vec) Vec  { return Vec{v[0] + u[0], v[1] + u[1], v[2] + u[2]} }
func (v Vec) Minus(u Vec) Vec { return Vec{v[0] - u[0], v[1] - u[1], v[2] - u[2]} }

// Times scales v by s.
func (v Vec) Times(s float64) Vec { return Vec{v[0] * s, v[1] * s, v[2] * s} }

// Length computes the euclidean norm of v.
func (v Vec) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns v scaled to unit length. The zero vector is returned as is.
func (v Vec) Unit() Vec {
	n := v.Length()
	if n == 0 {
		return v
	}
	return v.Times(1 / n)
}

// LatLon converts v back to a position in degrees, with the given height.
func (v Vec) LatLon(height float64) geomath.LatLon {
	lat := geomath.Degrees(math.Atan2(v[2], math.Hypot(v[0], v[1])))
	lon := geomath.Degrees(math.Atan2(v[1], v[0]))
	return geomath.NewLatLon(lat, lon, height)
}
