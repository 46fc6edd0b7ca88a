package geodist

import "math"

// andoyer applies Andoyer's first order flattening correction to the
// spherical angular distance d between latitudes a1 and a2.
func andoyer(d, a1, a2, f float64) float64 {
	if d == 0 || f == 0 {
		return d
	}
	sd, cd := math.Sincos(d)
	sF, cF := math.Sincos((a1 + a2) / 2)
	sG, cG := math.Sincos((a2 - a1) / 2)

	c2 := (1 + cd) / 2 // cos^2(d/2)
	s2 := (1 - cd) / 2 // sin^2(d/2)

	var x, y float64
	if c2 > eps {
		x = (d - sd) * sF * sF * cG * cG / c2
	}
	if s2 > eps {
		y = (d + sd) * cF * cF * sG * sG / s2
	}
	return d - f/2*(x+y)
}

// CosineAndoyerLambert computes the angular distance from the spherical law
// of cosines with Andoyer's first order correction for the ellipsoid's
// flattening.
func CosineAndoyerLambert(lat1, lat2, dlon float64, e *Ellipsoid) float64 {
	e = orWGS84(e)
	return andoyer(CosineLaw(lat1, lat2, dlon), lat1, lat2, e.F)
}

// CosineForsytheAndoyerLambert computes the angular distance like
// CosineAndoyerLambert but on the reduced (parametric) latitudes, Forsythe's
// refinement of Lambert's method for long lines.
func CosineForsytheAndoyerLambert(lat1, lat2, dlon float64, e *Ellipsoid) float64 {
	e = orWGS84(e)
	b1 := reduced(lat1, e.F)
	b2 := reduced(lat2, e.F)
	return andoyer(CosineLaw(b1, b2, dlon), b1, b2, e.F)
}

// Thomas computes the angular distance with Thomas' formula: the half-angle
// form of the great circle with the (3R-1)/(3R+1) flattening correction.
func Thomas(lat1, lat2, dlon float64, e *Ellipsoid) float64 {
	e = orWGS84(e)
	sF, cF := math.Sincos((lat1 + lat2) / 2)
	sG, cG := math.Sincos((lat2 - lat1) / 2)
	sL, cL := math.Sincos(dlon / 2)

	s := sG*sG*cL*cL + cF*cF*sL*sL
	c := cG*cG*cL*cL + sF*sF*sL*sL
	w := math.Atan2(math.Sqrt(s), math.Sqrt(c))
	if w == 0 {
		return 0
	}
	d := 2 * w
	if s > eps && c > eps && e.F != 0 {
		r := math.Sqrt(s*c) / w
		h1 := (3*r - 1) / (2 * c)
		h2 := (3*r + 1) / (2 * s)
		d *= 1 + e.F*(h1*sF*sF*cG*cG-h2*cF*cF*sG*sG)
	}
	return d
}

// FlatLocal computes the squared angular distance on the local flat-earth
// approximation (Hubeny's formula): planar distance scaled by the radii of
// curvature at the mean latitude, in radians squared.
func FlatLocal(lat1, lat2, dlon float64, e *Ellipsoid) float64 {
	e = orWGS84(e)
	sm, cm := math.Sincos((lat1 + lat2) / 2)
	t := 1 - e.E2*sm*sm
	m := (1 - e.E2) / (t * math.Sqrt(t)) // normalized meridional radius
	n := 1 / math.Sqrt(t)                // normalized prime vertical radius
	x := n * cm * dlon
	y := m * (lat2 - lat1)
	return x*x + y*y
}

// Hubeny is FlatLocal under the name of its author.
func Hubeny(lat1, lat2, dlon float64, e *Ellipsoid) float64 {
	return FlatLocal(lat1, lat2, dlon, e)
}

// reduced converts a geodetic latitude to the reduced (parametric) latitude
// for flattening f.
func reduced(lat, f float64) float64 {
	if c := math.Cos(lat); math.Abs(c) > eps {
		return math.Atan2((1-f)*math.Sin(lat), c)
	}
	return lat
}

const eps = 2.220446049250313e-16
