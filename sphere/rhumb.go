package sphere

import (
	"math"

	"github.com/cwilder23/geomath"
	"github.com/cwilder23/geomath/math/fmath"
)

// tanHalf returns tan(pi/4 + lat/2), the Mercator projection stretch term.
func tanHalf(lat float64) float64 {
	return math.Tan((math.Pi/2 + lat) / 2)
}

// rhumb3 returns the latitudinal, longitudinal and Mercator deltas between
// two points, in radians. Longitudinal deltas beyond 180 degrees take the
// shorter rhumb line across the anti-meridian.
func rhumb3(p1, p2 geomath.Point) (da, db, dp float64) {
	a1 := geomath.Radians(p1.Lat())
	a2 := geomath.Radians(p2.Lat())
	da = a2 - a1
	db = geomath.WrapPI(geomath.Radians(p2.Lon() - p1.Lon()))
	dp = math.Log(tanHalf(a2) / tanHalf(a1))
	return da, db, dp
}

// stretch returns the Mercator stretch factor da/dp, falling back to the
// latitudinal cosine on east-west courses where the ratio degenerates to
// 0/0.
func stretch(da, dp, lat1 float64) float64 {
	if math.Abs(dp) > geomath.EPS {
		return da / dp
	}
	return math.Cos(lat1)
}

func orRadiusMean(radius float64) float64 {
	if radius > 0 {
		return radius
	}
	return geomath.RadiusMean
}

// RhumbDistance returns the distance between two points along a rhumb
// (loxodrome) line, in the units of the earth radius. A non-positive
// radius means the mean earth radius in meters.
func RhumbDistance(p1, p2 geomath.Point, radius float64) float64 {
	da, db, dp := rhumb3(p1, p2)
	q := stretch(da, dp, geomath.Radians(p1.Lat()))
	return math.Hypot(da, q*db) * orRadiusMean(radius)
}

// RhumbBearing returns the constant bearing from p1 to p2 along a rhumb
// line, in compass degrees.
func RhumbBearing(p1, p2 geomath.Point) float64 {
	_, db, dp := rhumb3(p1, p2)
	return geomath.Degrees360(math.Atan2(db, dp))
}

// RhumbDestination returns the point reached travelling the given distance
// from p on the constant bearing, both in the units of the earth radius and
// compass degrees. The height of p carries over.
func RhumbDestination(p geomath.Point, distance, bearing, radius float64) geomath.LatLon {
	r := distance / orRadiusMean(radius)
	a1 := geomath.Radians(p.Lat())
	b1 := geomath.Radians(p.Lon())
	sb, cb := math.Sincos(geomath.Radians(bearing))

	da := r * cb
	a2 := a1 + da
	// reflect a latitude past the pole back
	if a2 > math.Pi/2 {
		a2 = math.Pi - a2
	} else if a2 < -math.Pi/2 {
		a2 = -math.Pi - a2
	}

	dp := math.Log(tanHalf(a2) / tanHalf(a1))
	q := stretch(da, dp, a1)
	b2 := b1
	if math.Abs(q) > geomath.EPS {
		b2 += r * sb / q
	}
	return geomath.NewLatLon(geomath.Degrees90(a2), geomath.Degrees180(b2), p.Height())
}

// RhumbMidpoint returns the point halfway between p1 and p2 along the
// rhumb line, at the mean of their heights.
func RhumbMidpoint(p1, p2 geomath.Point) geomath.LatLon {
	a1 := geomath.Radians(p1.Lat())
	b1 := geomath.Radians(p1.Lon())
	a2 := geomath.Radians(p2.Lat())
	b2 := geomath.Radians(p2.Lon())
	if math.Abs(b2-b1) > math.Pi {
		b1 += 2 * math.Pi // crossing the anti-meridian
	}

	a3 := fmath.Avg(a1, a2, 0.5)
	b3 := fmath.Avg(b1, b2, 0.5)

	f1 := tanHalf(a1)
	if math.Abs(f1) > geomath.EPS {
		f2 := tanHalf(a2)
		if f := f2 / f1; math.Abs(f) > geomath.EPS {
			if f = math.Log(f); math.Abs(f) > geomath.EPS {
				f3 := tanHalf(a3)
				s, err := fmath.Sums(b1*math.Log(f2),
					-b2*math.Log(f1), (b2-b1)*math.Log(f3))
				if err == nil {
					b3 = s / f
				}
			}
		}
	}

	h := fmath.Avg(p1.Height(), p2.Height(), 0.5)
	return geomath.NewLatLon(geomath.Degrees90(a3), geomath.Degrees180(b3), h)
}

// MaxLat returns the maximum latitude in degrees reached on a great circle
// leaving p on the given compass bearing, by Clairaut's formula. It is the
// same for all points on a given latitude.
func MaxLat(p geomath.Point, bearing float64) float64 {
	sb := math.Sin(geomath.Radians(bearing))
	m := math.Abs(sb * math.Cos(geomath.Radians(p.Lat())))
	if m > 1 {
		m = 1
	}
	return geomath.Degrees90(math.Acos(m))
}

// MinLat returns the minimum latitude reached on that great circle, on the
// southern hemisphere.
func MinLat(p geomath.Point, bearing float64) float64 {
	return -MaxLat(p, bearing)
}
