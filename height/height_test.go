package height

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwilder23/geomath"
)

func TestOrdedup(t *testing.T) {
	ks := ordedup([]float64{3, 1, 2, 2, 9, 1}, 1.5, 5)
	assert.Equal(t, []float64{1.5, 2, 3, 5}, ks)

	assert.Empty(t, ordedup(nil, 0, 1))
	assert.Equal(t, []float64{2}, ordedup([]float64{2, 2, 2}, 0, 10))
}

func TestSubsample(t *testing.T) {
	vs := []float64{1, 2, 3, 4, 5, 6, 7}
	assert.Nil(t, subsample(vs, 0))
	assert.Equal(t, vs, subsample(vs, 7))
	assert.Equal(t, vs, subsample(vs, 10))

	th := subsample(vs, 3)
	assert.Len(t, th, 3)
	assert.Equal(t, 1.0, th[0])
	assert.Equal(t, 7.0, th[2])
}

func TestConvert(t *testing.T) {
	x, y := convert(geomath.NewLatLon(0, 0, 0), modeOffset)
	assert.InDelta(t, math.Pi, x, 1e-12)
	assert.InDelta(t, math.Pi/2, y, 1e-12)

	x, y = convert(geomath.NewLatLon(0, 0, 0), modeSigned)
	assert.InDelta(t, 0, x, 1e-12)
	assert.InDelta(t, 0, y, 1e-12)

	x, y = convert(geomath.NewLatLon(45, -120, 0), modeDegrees)
	assert.Equal(t, -120.0, x)
	assert.Equal(t, 45.0, y)

	// Offset coordinates stay inside [0, 2pi) x [0, pi].
	for _, ll := range [][2]float64{
		{89, 179}, {-89, -179}, {0, 359}, {45, -361},
	} {
		x, y = convert(geomath.NewLatLon(ll[0], ll[1], 0), modeOffset)
		assert.True(t, 0 <= x && x < 2*math.Pi)
		assert.True(t, 0 <= y && y <= math.Pi)
	}

	// The poles map to the ends of the latitude interval.
	_, y = convert(geomath.NewLatLon(90, 0, 0), modeOffset)
	assert.Equal(t, math.Pi, y)
	_, y = convert(geomath.NewLatLon(-90, 0, 0), modeOffset)
	assert.Equal(t, 0.0, y)

	_, y = convert(geomath.NewLatLon(90, 0, 0), modeSigned)
	assert.InDelta(t, math.Pi/2, y, 1e-12)
	_, y = convert(geomath.NewLatLon(-90, 0, 0), modeSigned)
	assert.InDelta(t, -math.Pi/2, y, 1e-12)
}

func TestHeightErrorKinds(t *testing.T) {
	err := errInsufficient(16, 5)
	assert.True(t, IsKind(err, KindInsufficientKnots))
	assert.Contains(t, err.Error(), "need 16, got 5")

	err = errParam("beta", 7)
	assert.True(t, IsKind(err, KindInvalidParam))
	assert.False(t, IsKind(err, KindLenMismatch))
	assert.False(t, IsKind(nil, KindInvalidParam))

	for _, k := range []Kind{
		KindInsufficientKnots, KindInvalidKnot, KindInvalidParam,
		KindLenMismatch, KindSplineIssue,
	} {
		assert.NotEqual(t, "height error", k.String())
	}
}
