// Package faultmap defines the static fault region catalogs drawn behind
// the Duval triangle diagrams. Each catalog lists named polygonal zones
// in percentage-triple coordinates with their display colors.
//
// The catalogs are presentation artifacts: the diagnostic rule set keeps
// its own hard-coded thresholds, which only approximate these polygons.
// The two are deliberately independent and are not kept in exact sync.
package faultmap

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"

	"github.com/gridsentry/dgaportal/pkg/ternary"
)

// sumTolerance bounds how far a vertex's shares may drift from 100.
const sumTolerance = 1e-6

// Region is a named polygonal fault zone. Fill is the polygon fill color
// and Ink the label text color, both CSS color names.
type Region struct {
	Name     string           `json:"name"`
	Fill     string           `json:"fill"`
	Ink      string           `json:"ink"`
	Vertices []ternary.Triple `json:"vertices"`
}

// Triangle is one diagram's catalog: the axis gas names in corner order
// plus the fault regions in draw order.
type Triangle struct {
	Name    string   `json:"name"`
	Gas1    string   `json:"gas1"`
	Gas2    string   `json:"gas2"`
	Gas3    string   `json:"gas3"`
	Regions []Region `json:"regions"`
}

// v builds a catalog vertex from its three percentage shares.
func v(p1, p2, p3 float64) ternary.Triple {
	return ternary.Triple{P1: p1, P2: p2, P3: p3, Total: p1 + p2 + p3}
}

// Triangle1 returns the Duval Triangle 1 catalog over CH4, C2H4, and
// C2H2 shares: partial discharge, the three thermal bands, and the two
// discharge zones.
func Triangle1() Triangle {
	return Triangle{
		Name: "Duval Triangle 1",
		Gas1: "CH4",
		Gas2: "C2H4",
		Gas3: "C2H2",
		Regions: []Region{
			{Name: "PD", Fill: "lightblue", Ink: "blue", Vertices: []ternary.Triple{
				v(98, 2, 0), v(90, 0, 10), v(95, 0, 5), v(100, 0, 0),
			}},
			{Name: "T1", Fill: "lightgreen", Ink: "green", Vertices: []ternary.Triple{
				v(90, 0, 10), v(70, 0, 30), v(80, 20, 0), v(98, 2, 0),
			}},
			{Name: "T2", Fill: "yellow", Ink: "darkgoldenrod", Vertices: []ternary.Triple{
				v(70, 0, 30), v(50, 0, 50), v(40, 60, 0), v(80, 20, 0),
			}},
			{Name: "T3", Fill: "orange", Ink: "red", Vertices: []ternary.Triple{
				v(40, 60, 0), v(0, 100, 0), v(0, 50, 50), v(50, 0, 50),
			}},
			{Name: "D2", Fill: "salmon", Ink: "darkred", Vertices: []ternary.Triple{
				v(0, 100, 0), v(0, 0, 100), v(40, 60, 0),
			}},
			{Name: "D1", Fill: "purple", Ink: "white", Vertices: []ternary.Triple{
				v(0, 50, 50), v(0, 0, 100), v(50, 0, 50),
			}},
		},
	}
}

// Triangle4 returns the Duval Triangle 4 catalog over H2, C2H2, and C2H4
// shares: stray gassing, severe thermal, and high energy arcing zones.
func Triangle4() Triangle {
	return Triangle{
		Name: "Duval Triangle 4",
		Gas1: "H2",
		Gas2: "C2H2",
		Gas3: "C2H4",
		Regions: []Region{
			{Name: "S", Fill: "lightgray", Ink: "black", Vertices: []ternary.Triple{
				v(95, 5, 0), v(70, 30, 0), v(70, 0, 30), v(95, 0, 5),
			}},
			{Name: "T3", Fill: "gold", Ink: "orange", Vertices: []ternary.Triple{
				v(30, 0, 70), v(0, 0, 100), v(0, 30, 70), v(30, 70, 0),
			}},
			{Name: "D2", Fill: "darkred", Ink: "white", Vertices: []ternary.Triple{
				v(0, 100, 0), v(0, 70, 30), v(30, 0, 70), v(0, 0, 100),
			}},
		},
	}
}

// Lookup resolves a triangle catalog by its short key, "t1" or "t4".
func Lookup(key string) (Triangle, bool) {
	switch key {
	case "t1":
		return Triangle1(), true
	case "t4":
		return Triangle4(), true
	}
	return Triangle{}, false
}

// Validate aggregates every defect in the catalog: regions with fewer
// than three vertices, vertices whose shares do not sum to 100, and
// missing display colors. A clean catalog returns nil.
func (t Triangle) Validate() error {
	var errs *multierror.Error

	if t.Gas1 == "" || t.Gas2 == "" || t.Gas3 == "" {
		errs = multierror.Append(errs, fmt.Errorf("%s: missing axis gas names", t.Name))
	}

	for _, region := range t.Regions {
		if len(region.Vertices) < 3 {
			errs = multierror.Append(errs,
				fmt.Errorf("%s region %s: %d vertices, need at least 3", t.Name, region.Name, len(region.Vertices)))
		}
		if region.Fill == "" || region.Ink == "" {
			errs = multierror.Append(errs,
				fmt.Errorf("%s region %s: missing display colors", t.Name, region.Name))
		}
		for i, vert := range region.Vertices {
			sum := vert.P1 + vert.P2 + vert.P3
			if math.Abs(sum-100) > sumTolerance {
				errs = multierror.Append(errs,
					fmt.Errorf("%s region %s: vertex %d shares sum to %g, expected 100", t.Name, region.Name, i, sum))
			}
		}
	}

	return errs.ErrorOrNil()
}
