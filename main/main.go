package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/table"
	plt "github.com/phil-mansfield/pyplot"

	"github.com/cwilder23/geomath"
	"github.com/cwilder23/geomath/height"
	"github.com/cwilder23/geomath/math/fmath"
	"github.com/cwilder23/geomath/sphere"
)

func main() {
	var (
		heightFile, rhumbFile string
		exampleConfig         string
	)
	vars := map[string]*string{
		"Height":        &heightFile,
		"Rhumb":         &rhumbFile,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&heightFile, "Height", "",
		"Configuration file for [Height] mode.",
	)
	flag.StringVar(
		&rhumbFile, "Rhumb", "",
		"Configuration file for [Rhumb] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are 'Height' and 'Rhumb'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Height":
		wrap := DefaultHeightWrapper()
		err := gcfg.ReadFileInto(wrap, heightFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Height

		if !con.ValidKnotFile() {
			log.Fatal("Invalid/non-existent 'KnotFile' value.")
		} else if !con.ValidQueryFile() {
			log.Fatal("Invalid/non-existent 'QueryFile' value.")
		} else if !con.ValidMethod() {
			log.Fatalf("Invalid/non-existent 'Method' value. The only "+
				"accepted methods are: %s.", strings.Join(heightMethods, ", "))
		} else if !con.ValidBeta() {
			log.Fatal("Invalid 'Beta' value. Must be 1, 2 or 3.")
		} else if !con.ValidSmooth() {
			log.Fatal("Invalid 'Smooth' value. Must be at least 4.")
		}

		setupLog(&con.SharedConfig)
		heightMain(con)

	case "Rhumb":
		wrap := DefaultRhumbWrapper()
		err := gcfg.ReadFileInto(wrap, rhumbFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Rhumb

		if !con.ValidPoints() {
			log.Fatal("'Lat1' and 'Lat2' must be in the range [-90, 90].")
		} else if !con.ValidRadius() {
			log.Fatal("Invalid 'Radius' value.")
		}

		setupLog(&con.SharedConfig)
		rhumbMain(con)

	case "ExampleConfig":
		switch exampleConfig {
		case "Height":
			fmt.Println(ExampleHeightFile)
		case "Rhumb":
			fmt.Println(ExampleRhumbFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Height' and 'Rhumb'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but geomath only accepts "+
				"one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func setupLog(con *SharedConfig) {
	if !con.ValidLogFile() {
		return
	}
	f, err := os.Create(con.LogFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.SetOutput(f)
}

// readPoints reads a whitespace table of 'lon lat [height]' lines.
func readPoints(fname string, withHeight bool) []geomath.Point {
	colIdxs := []int{0, 1}
	if withHeight {
		colIdxs = []int{0, 1, 2}
	}
	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		log.Fatal(err.Error())
	}

	lons, lats := cols[0], cols[1]
	pts := make([]geomath.Point, len(lons))
	for i := range pts {
		h := 0.0
		if withHeight {
			h = cols[2][i]
		}
		pts[i] = geomath.NewLatLon(lats[i], lons[i], h)
	}
	return pts
}

func newInterpolator(con *HeightConfig, knots []geomath.Point) (height.Interpolator, error) {
	switch strings.ToLower(con.Method) {
	case "cosinelaw":
		return height.NewIDWCosineLaw(knots, con.Beta, con.Wrap)
	case "haversine":
		return height.NewIDWHaversine(knots, con.Beta, con.Wrap)
	case "vincentys":
		return height.NewIDWVincentys(knots, con.Beta, con.Wrap)
	case "flatpolar":
		return height.NewIDWFlatPolar(knots, con.Beta, con.Wrap)
	case "euclidean":
		return height.NewIDWEuclidean(knots, con.Beta, con.Adjust)
	case "equirect":
		return height.NewIDWEquirect(knots, con.Adjust, con.Wrap)
	case "andoyer":
		return height.NewIDWCosineAndoyerLambert(knots, nil, con.Beta, con.Wrap)
	case "forsythe":
		return height.NewIDWCosineForsytheAndoyerLambert(knots, nil, con.Beta, con.Wrap)
	case "thomas":
		return height.NewIDWThomas(knots, nil, con.Beta, con.Wrap)
	case "flatlocal", "hubeny":
		return height.NewIDWFlatLocal(knots, nil, con.Beta, con.Wrap)
	case "geodesic":
		return height.NewIDWGeodesic(knots, nil, con.Beta, con.Wrap)
	case "linear":
		return height.NewLinear(knots)
	case "cubic":
		return height.NewCubic(knots)
	case "lsq":
		return height.NewLSQSphereSpline(knots, nil)
	case "smooth":
		return height.NewSmoothSphereSpline(knots, con.Smooth)
	}
	panic("Impossible")
}

func heightMain(con *HeightConfig) {
	knots := readPoints(con.KnotFile, true)
	queries := readPoints(con.QueryFile, false)
	log.Printf("Read %d knots and %d queries.", len(knots), len(queries))

	intr, err := newInterpolator(con, knots)
	if err != nil {
		log.Fatal(err.Error())
	}

	hs, err := intr.EvalAll(queries)
	if err != nil {
		log.Fatal(err.Error())
	}

	out := os.Stdout
	if con.ValidOutput() {
		out, err = os.Create(con.Output)
		if err != nil {
			log.Fatal(err.Error())
		}
		defer out.Close()
	}
	for i, q := range queries {
		line := fmath.FormatFloats(
			[]float64{q.Lon(), q.Lat(), hs[i]}, con.Precision, " ",
		)
		fmt.Fprintln(out, line)
	}

	if con.ValidPlotFile() {
		plotProfile(con.PlotFile, hs)
	}
}

// plotProfile draws the interpolated heights along the query sequence.
func plotProfile(fname string, hs []float64) {
	idxs := make([]float64, len(hs))
	for i := range idxs {
		idxs[i] = float64(i)
	}

	plt.Figure()
	plt.Plot(idxs, hs, "b", plt.LW(2))
	plt.XLabel("Query")
	plt.YLabel("Height [m]")
	plt.SaveFig(fname)
	plt.Execute()
}

func rhumbMain(con *RhumbConfig) {
	p1 := geomath.NewLatLon(con.Lat1, con.Lon1, 0)
	p2 := geomath.NewLatLon(con.Lat2, con.Lon2, 0)
	prec := con.Precision

	d := sphere.RhumbDistance(p1, p2, con.Radius)
	b := sphere.RhumbBearing(p1, p2)
	m := sphere.RhumbMidpoint(p1, p2)

	fmt.Printf("Distance = %s\n",
		fmath.FormatFloats([]float64{d}, prec, " "))
	fmt.Printf("Bearing  = %s\n",
		fmath.FormatFloats([]float64{b}, prec, " "))
	fmt.Printf("Midpoint = %s\n",
		fmath.FormatFloats([]float64{m.Lat(), m.Lon()}, prec, " "))

	if con.ValidDestination() {
		q := sphere.RhumbDestination(p1, con.Distance, con.Bearing, con.Radius)
		fmt.Printf("Destination = %s\n",
			fmath.FormatFloats([]float64{q.Lat(), q.Lon()}, prec, " "))
	}
}
