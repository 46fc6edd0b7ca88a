package geomath

// Point is anything with a geodetic position and a height. Latitudes and
// longitudes are in degrees, heights in meters. Interpolators and the
// spherical routines read Points but never hold on to them: coordinates are
// converted into internal arrays at construction time.
type Point interface {
	Lat() float64
	Lon() float64
	Height() float64
}

// LatLon is the minimal concrete Point. It is what the height interpolators
// hand back and what callers use for query locations when they have nothing
// richer of their own.
type LatLon struct {
	lat, lon, height float64
}

var _ Point = LatLon{}

// NewLatLon creates a LatLon from a latitude and longitude in degrees and a
// height in meters.
func NewLatLon(lat, lon, height float64) LatLon {
	return LatLon{lat: lat, lon: lon, height: height}
}

func (ll LatLon) Lat() float64    { return ll.lat }
func (ll LatLon) Lon() float64    { return ll.lon }
func (ll LatLon) Height() float64 { return ll.height }
