package main

import (
	"strings"
)

const (
	ExampleHeightFile = `[Height]

#######################
# Required Parameters #
#######################

# Whitespace separated table of the known points, one per line with
# longitude, latitude and height columns, in degrees and meters.
KnotFile = path/to/knots.txt

# Whitespace separated table of the query points, one per line with
# longitude and latitude columns, in degrees.
QueryFile = path/to/queries.txt

# The interpolation method. The inverse distance weighting methods are:
# [ CosineLaw | Haversine | Vincentys | FlatPolar | Euclidean | Equirect |
#   Andoyer | Forsythe | Thomas | FlatLocal | Hubeny | Geodesic ]
# The spline surface methods are:
# [ Linear | Cubic | LSQ | Smooth ]
Method = Haversine

#######################
# Optional Parameters #
#######################

# Power of the inverse distance weights. Must be 1, 2 or 3. Ignored by the
# spline methods and by Equirect. Default is 2.
# Beta = 2

# Unroll longitude deltas across the anti-meridian. Default is false.
# Wrap = false

# Scale longitude deltas by the latitude cosine for the Euclidean and
# Equirect methods. Default is true.
# Adjust = true

# Smoothing factor for the Smooth method. Must be at least 4.
# Smooth = 4

# Number of decimals in the output heights. Default is 3. Negative values
# keep trailing zeros.
# Precision = 3

# File the interpolated heights are written to, one 'lon lat height' line
# per query. Writes to stdout when unset.
# Output = path/to/heights.txt

# Plot the height profile along the query sequence to this image file.
# PlotFile = profile.png

# LogFile = log.out`

	ExampleRhumbFile = `[Rhumb]

#######################
# Required Parameters #
#######################

# Start and end point of the rhumb line, in degrees.
Lat1 = 51.127
Lon1 = 1.338
Lat2 = 50.964
Lon2 = 1.853

#######################
# Optional Parameters #
#######################

# Earth radius in meters. Default is the mean earth radius, 6371008.8.
# Radius = 6371008.8

# When both are set, also report the destination reached from the start
# point travelling Distance meters on the constant Bearing in degrees.
# Distance = 40300
# Bearing = 116.7

# Number of decimals in the output. Default is 3.
# Precision = 3

# LogFile = log.out`
)

var heightMethods = []string{
	"cosinelaw", "haversine", "vincentys", "flatpolar", "euclidean",
	"equirect", "andoyer", "forsythe", "thomas", "flatlocal", "hubeny",
	"geodesic", "linear", "cubic", "lsq", "smooth",
}

type SharedConfig struct {
	// Optional
	LogFile   string
	Precision int
}

func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}

type HeightConfig struct {
	SharedConfig
	// Required
	KnotFile, QueryFile, Method string

	// Optional
	Beta     int
	Wrap     bool
	Adjust   bool
	Smooth   float64
	Output   string
	PlotFile string
}

func DefaultHeightWrapper() *HeightWrapper {
	con := HeightConfig{}
	con.Beta = 2
	con.Adjust = true
	con.Smooth = 4
	con.Precision = 3
	return &HeightWrapper{con}
}

func (con *HeightConfig) ValidKnotFile() bool {
	return con.KnotFile != ""
}
func (con *HeightConfig) ValidQueryFile() bool {
	return con.QueryFile != ""
}
func (con *HeightConfig) ValidMethod() bool {
	m := strings.ToLower(con.Method)
	for _, name := range heightMethods {
		if name == m {
			return true
		}
	}
	return false
}
func (con *HeightConfig) ValidBeta() bool {
	return con.Beta >= 1 && con.Beta <= 3
}
func (con *HeightConfig) ValidSmooth() bool {
	return con.Smooth >= 4
}
func (con *HeightConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *HeightConfig) ValidPlotFile() bool {
	return con.PlotFile != ""
}

type RhumbConfig struct {
	SharedConfig
	// Required
	Lat1, Lon1, Lat2, Lon2 float64

	// Optional
	Radius            float64
	Distance, Bearing float64
}

func DefaultRhumbWrapper() *RhumbWrapper {
	con := RhumbConfig{}
	con.Distance = -1
	con.Bearing = -1
	con.Precision = 3
	return &RhumbWrapper{con}
}

func (con *RhumbConfig) ValidPoints() bool {
	return con.Lat1 >= -90 && con.Lat1 <= 90 &&
		con.Lat2 >= -90 && con.Lat2 <= 90
}
func (con *RhumbConfig) ValidRadius() bool {
	return con.Radius >= 0
}
func (con *RhumbConfig) ValidDestination() bool {
	return con.Distance >= 0 && con.Bearing >= 0
}

type HeightWrapper struct {
	Height HeightConfig
}

type RhumbWrapper struct {
	Rhumb RhumbConfig
}
