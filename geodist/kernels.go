package geodist

import "math"

// Kernel is a spherical angular distance function of two latitudes and a
// longitudinal delta, all in radians.
type Kernel func(lat1, lat2, dlon float64) float64

// DatumKernel is an angular distance function corrected for an ellipsoid.
type DatumKernel func(lat1, lat2, dlon float64, e *Ellipsoid) float64

// CosineLaw computes the great-circle angular distance with the spherical
// law of cosines.
func CosineLaw(lat1, lat2, dlon float64) float64 {
	s1, c1 := math.Sincos(lat1)
	s2, c2 := math.Sincos(lat2)
	return acos1(s1*s2 + c1*c2*math.Cos(dlon))
}

// Haversine computes the great-circle angular distance with the haversine
// formula, which is well conditioned for nearby points.
func Haversine(lat1, lat2, dlon float64) float64 {
	sa := math.Sin((lat2 - lat1) / 2)
	sb := math.Sin(dlon / 2)
	h := sa*sa + math.Cos(lat1)*math.Cos(lat2)*sb*sb
	if h >= 1 {
		return math.Pi
	}
	if h <= 0 {
		return 0
	}
	return 2 * math.Asin(math.Sqrt(h))
}

// Vincentys computes the great-circle angular distance with Vincenty's
// spherical formula, well conditioned at all distances including near
// antipodal points.
func Vincentys(lat1, lat2, dlon float64) float64 {
	s1, c1 := math.Sincos(lat1)
	s2, c2 := math.Sincos(lat2)
	sd, cd := math.Sincos(dlon)
	y := math.Hypot(c2*sd, c1*s2-s1*c2*cd)
	x := s1*s2 + c1*c2*cd
	return math.Atan2(y, x)
}

// FlatPolar computes the angular distance on the polar flat-earth
// approximation: law of cosines in polar coordinates with colatitudes as
// radii.
func FlatPolar(lat1, lat2, dlon float64) float64 {
	z1 := math.Pi/2 - lat1
	z2 := math.Pi/2 - lat2
	d2 := z1*z1 + z2*z2 - 2*z1*z2*math.Cos(dlon)
	if d2 <= 0 {
		return 0
	}
	return math.Sqrt(d2)
}

// Euclidean computes the planar angular distance, with the longitudinal
// delta optionally scaled by the cosine of the mean latitude.
func Euclidean(lat1, lat2, dlon float64, adjust bool) float64 {
	if adjust {
		dlon *= ScaleRad(lat1, lat2)
	}
	return math.Hypot(lat2-lat1, dlon)
}

// Equirect computes the squared equirectangular angular distance in radians
// squared, with the longitudinal delta optionally scaled by the cosine of
// the mean latitude. Squared distances order the same as distances, which is
// all inverse distance weighting needs.
func Equirect(lat1, lat2, dlon float64, adjust bool) float64 {
	if adjust {
		dlon *= ScaleRad(lat1, lat2)
	}
	da := lat2 - lat1
	return da*da + dlon*dlon
}

// ScaleRad returns the cosine of the mean of two latitudes, the factor by
// which longitude distances shrink away from the equator.
func ScaleRad(lat1, lat2 float64) float64 {
	return math.Cos((lat1 + lat2) / 2)
}
