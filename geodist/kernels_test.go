package geodist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func rad(deg float64) float64 { return deg * math.Pi / 180 }

// London and Paris, the pair used throughout the package tests.
var (
	lonLat1 = rad(51.4778)
	lonLat2 = rad(48.8567)
	lonDlon = rad(2.3508 - -0.0016)
)

func TestSphericalKernelsAgree(t *testing.T) {
	// All spherical great-circle kernels compute the same arc.
	want := Haversine(lonLat1, lonLat2, lonDlon)
	assert.InDelta(t, want, CosineLaw(lonLat1, lonLat2, lonDlon), 1e-12)
	assert.InDelta(t, want, Vincentys(lonLat1, lonLat2, lonDlon), 1e-12)

	// London-Paris is about 343 km, or 0.054 rad.
	assert.InDelta(t, 343e3/6371e3, want, 2e-3)
}

func TestKernelsZero(t *testing.T) {
	for name, d := range map[string]float64{
		"cosineLaw": CosineLaw(lonLat1, lonLat1, 0),
		"haversine": Haversine(lonLat1, lonLat1, 0),
		"vincentys": Vincentys(lonLat1, lonLat1, 0),
		"flatPolar": FlatPolar(lonLat1, lonLat1, 0),
		"euclidean": Euclidean(lonLat1, lonLat1, 0, true),
		"equirect":  Equirect(lonLat1, lonLat1, 0, true),
		"andoyer":   CosineAndoyerLambert(lonLat1, lonLat1, 0, nil),
		"forsythe":  CosineForsytheAndoyerLambert(lonLat1, lonLat1, 0, nil),
		"thomas":    Thomas(lonLat1, lonLat1, 0, nil),
		"flatLocal": FlatLocal(lonLat1, lonLat1, 0, nil),
	} {
		// acos-based kernels may land a rounding ulp away from 1.
		assert.InDelta(t, 0.0, d, 1e-7, name)
	}
}

func TestKernelsSymmetric(t *testing.T) {
	type k2 func(a, b, d float64) float64
	for name, k := range map[string]k2{
		"cosineLaw": CosineLaw,
		"haversine": Haversine,
		"vincentys": Vincentys,
		"flatPolar": FlatPolar,
	} {
		ab := k(lonLat1, lonLat2, lonDlon)
		ba := k(lonLat2, lonLat1, -lonDlon)
		assert.InDelta(t, ab, ba, 1e-15, name)
	}
}

func TestEllipsoidalKernelsNearSpherical(t *testing.T) {
	// Flattening corrections are order f, about 1/300.
	sph := Haversine(lonLat1, lonLat2, lonDlon)
	for name, d := range map[string]float64{
		"andoyer":  CosineAndoyerLambert(lonLat1, lonLat2, lonDlon, nil),
		"forsythe": CosineForsytheAndoyerLambert(lonLat1, lonLat2, lonDlon, nil),
		"thomas":   Thomas(lonLat1, lonLat2, lonDlon, nil),
	} {
		assert.InEpsilon(t, sph, d, 1e-2, name)
		assert.NotEqual(t, sph, d, name)
	}

	// Zero flattening turns the corrections off.
	sphere := NewEllipsoid(6371e3, 0)
	assert.InDelta(t, CosineLaw(lonLat1, lonLat2, lonDlon),
		CosineAndoyerLambert(lonLat1, lonLat2, lonDlon, sphere), 1e-15)
}

func TestFlatKernelsSquared(t *testing.T) {
	// The flat-local and equirectangular kernels return squared radians:
	// their square roots should approximate the haversine arc for nearby
	// points.
	a1, a2, dl := rad(50.0), rad(50.1), rad(0.1)
	want := Haversine(a1, a2, dl)
	assert.InEpsilon(t, want, math.Sqrt(Equirect(a1, a2, dl, true)), 1e-4)
	assert.InEpsilon(t, want, math.Sqrt(FlatLocal(a1, a2, dl, nil)), 1e-2)
}

func TestEuclideanAdjust(t *testing.T) {
	a1, a2, dl := rad(60.0), rad(60.0), rad(1.0)
	plain := Euclidean(a1, a2, dl, false)
	adjusted := Euclidean(a1, a2, dl, true)
	assert.InEpsilon(t, plain*math.Cos(rad(60)), adjusted, 1e-12)
}

func TestGeodesicKernel(t *testing.T) {
	// Same point.
	assert.InDelta(t, 0.0, Geodesic(51.4778, -0.0016, 51.4778, -0.0016), 1e-9)

	// London-Paris again, in degrees this time: about 343 km is 3.09 deg.
	d := Geodesic(51.4778, -0.0016, 48.8567, 2.3508)
	assert.InDelta(t, 343e3/6371e3*180/math.Pi, d, 0.05)

	// Order must not matter.
	assert.InDelta(t, d, Geodesic(48.8567, 2.3508, 51.4778, -0.0016), 1e-9)
}

func TestEllipsoid(t *testing.T) {
	assert.InDelta(t, 6356752.3142, WGS84.B, 1e-3)
	assert.InDelta(t, 6.694379990e-3, WGS84.E2, 1e-11)
	assert.InDelta(t, 6371008.77, WGS84.RadiusMean(), 0.1)
}
