package geomath

import "math"

const (
	// EPS is the distance between 1.0 and the next larger float64. Angular
	// quantities smaller than EPS are treated as zero throughout the toolkit.
	EPS = 2.220446049250313e-16

	// EPS1 is 1 - EPS.
	EPS1 = 1.0 - EPS

	// RadiusMean is the mean earth radius in meters (IUGG R1). Functions
	// taking a radius argument fall back to it when passed a value <= 0.
	RadiusMean = 6371008.8
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * (math.Pi / 180) }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * (180 / math.Pi) }

// Degrees90 converts radians to degrees and wraps the result into [-90, 90].
func Degrees90(rad float64) float64 {
	d := math.Mod(Degrees(rad), 360)
	switch {
	case d > 270:
		d -= 360
	case d > 90:
		d = 180 - d
	case d < -270:
		d += 360
	case d < -90:
		d = -180 - d
	}
	return d
}

// Degrees180 converts radians to degrees and wraps the result into
// (-180, 180].
func Degrees180(rad float64) float64 { return Wrap180(Degrees(rad)) }

// Degrees360 converts radians to compass degrees in [0, 360).
func Degrees360(rad float64) float64 {
	d := math.Mod(Degrees(rad), 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Wrap180 wraps degrees into (-180, 180].
func Wrap180(deg float64) float64 {
	if deg > 180 || deg <= -180 {
		deg = math.Mod(deg, 360)
		if deg > 180 {
			deg -= 360
		} else if deg <= -180 {
			deg += 360
		}
	}
	return deg
}

// WrapPI wraps radians into (-pi, pi].
func WrapPI(rad float64) float64 {
	if rad > math.Pi || rad <= -math.Pi {
		rad = math.Mod(rad, 2*math.Pi)
		if rad > math.Pi {
			rad -= 2 * math.Pi
		} else if rad <= -math.Pi {
			rad += 2 * math.Pi
		}
	}
	return rad
}

// RadiansPI2 converts degrees to radians wrapped into [0, 2*pi).
func RadiansPI2(deg float64) float64 {
	r := math.Mod(Radians(deg), 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return r
}

// RadiansPI converts degrees to radians wrapped into (-pi, pi].
func RadiansPI(deg float64) float64 {
	return WrapPI(Radians(deg))
}

// UnrollPI returns the signed longitudinal delta rad2 - rad1 in radians. With
// wrap set, deltas crossing the anti-meridian are unrolled so the shorter way
// around is used.
func UnrollPI(rad1, rad2 float64, wrap bool) float64 {
	d := rad2 - rad1
	if wrap && math.Abs(d) > math.Pi {
		d = WrapPI(d)
	}
	return d
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
