package sphere

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwilder23/geomath"
	"github.com/cwilder23/geomath/geodist"
)

// angular returns the great circle distance between two points in radians.
func angular(p, q geomath.Point) float64 {
	return geodist.Haversine(
		geomath.Radians(p.Lat()), geomath.Radians(q.Lat()),
		geomath.Radians(q.Lon()-p.Lon()))
}

func TestCircleIntersections(t *testing.T) {
	c1 := geomath.NewLatLon(0, 0, 0)
	c2 := geomath.NewLatLon(0, 2, 0)
	r := 0.03 // radians

	i1, i2, err := CircleIntersections(c1, r, c2, r, -1)
	assert.NoError(t, err)

	// Both points lie on both circles, mirrored across the equator.
	for _, p := range []geomath.LatLon{i1, i2} {
		assert.InDelta(t, r, angular(c1, p), 1e-9)
		assert.InDelta(t, r, angular(c2, p), 1e-9)
		assert.InDelta(t, 1, p.Lon(), 1e-9)
	}
	assert.InDelta(t, -i1.Lat(), i2.Lat(), 1e-9)
	assert.NotEqual(t, i1.Lat(), i2.Lat())
}

func TestCircleIntersectionsSwapped(t *testing.T) {
	c1 := geomath.NewLatLon(10, 20, 0)
	c2 := geomath.NewLatLon(12, 23, 0)

	a1, a2, err := CircleIntersections(c1, 0.05, c2, 0.04, -1)
	assert.NoError(t, err)
	b1, b2, err := CircleIntersections(c2, 0.04, c1, 0.05, -1)
	assert.NoError(t, err)

	// The same two points come back, in either order.
	got := [][2]float64{{b1.Lat(), b1.Lon()}, {b2.Lat(), b2.Lon()}}
	for _, p := range []geomath.LatLon{a1, a2} {
		found := false
		for _, g := range got {
			if math.Abs(g[0]-p.Lat()) < 1e-9 && math.Abs(g[1]-p.Lon()) < 1e-9 {
				found = true
			}
		}
		assert.True(t, found)
	}
}

func TestCircleIntersectionsMeters(t *testing.T) {
	london := geomath.NewLatLon(51.5074, -0.1278, 0)
	paris := geomath.NewLatLon(48.8566, 2.3522, 0)

	i1, i2, err := CircleIntersections(london, 300e3, paris, 290e3, 0)
	assert.NoError(t, err)
	for _, p := range []geomath.LatLon{i1, i2} {
		assert.InDelta(t, 300e3, angular(london, p)*geomath.RadiusMean, 100)
		assert.InDelta(t, 290e3, angular(paris, p)*geomath.RadiusMean, 100)
	}
}

func TestCircleIntersectionsErrors(t *testing.T) {
	c1 := geomath.NewLatLon(0, 0, 0)
	c2 := geomath.NewLatLon(0, 2, 0)

	_, _, err := CircleIntersections(c1, 4, c2, 0.1, -1)
	assert.ErrorIs(t, err, ErrRadius)

	_, _, err = CircleIntersections(c1, 0.1, c1, 0.1, -1)
	assert.ErrorIs(t, err, ErrNearConcentric)

	antipode := geomath.NewLatLon(0, 180, 0)
	_, _, err = CircleIntersections(c1, 0.1, antipode, 0.1, -1)
	assert.ErrorIs(t, err, ErrNearConcentric)

	_, _, err = CircleIntersections(c1, 0.001, c2, 0.001, -1)
	assert.ErrorIs(t, err, ErrTooDistant)

	// One circle strictly inside the other.
	_, _, err = CircleIntersections(c1, 1, c2, 0.001, -1)
	assert.ErrorIs(t, err, ErrTooDistant)
}
