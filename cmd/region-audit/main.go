// region-audit samples the ternary percentage simplex on a uniform grid,
// classifies every composition with the Duval triangle rule set, and
// reports how much of the diagram each verdict covers. For the triangles
// with a drawn region catalog it also measures how often the rule verdict
// disagrees with the catalog polygon under the sample point. The rules
// and the catalog are maintained independently, so some disagreement is
// expected; this tool quantifies it.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/gridsentry/dgaportal/pkg/dga"
	"github.com/gridsentry/dgaportal/pkg/faultmap"
	"github.com/gridsentry/dgaportal/pkg/ternary"
)

// audit describes one triangle method under test: how a grid composition
// becomes a Reading, which classifier judges it, and which catalog (if
// any) draws it.
type audit struct {
	name     string
	classify func(dga.Reading) dga.Diagnosis
	reading  func(p1, p2, p3 float64) dga.Reading
	catalog  *faultmap.Triangle
}

// samplePoint is one classified grid composition.
type samplePoint struct {
	triple ternary.Triple
	fault  string
	region string // catalog polygon under the point, "" when uncovered
}

func main() {
	var (
		step    = flag.Float64("step", 1.0, "Grid step in percentage points")
		csvFile = flag.String("csv", "", "Optional CSV output file for the per-point classifications")
	)
	flag.Parse()

	if *step <= 0 || *step > 50 {
		fmt.Fprintf(os.Stderr, "Error: -step must be in (0, 50], got %v\n", *step)
		os.Exit(1)
	}

	t1 := faultmap.Triangle1()
	t4 := faultmap.Triangle4()

	audits := []audit{
		{
			name:     "Duval Triangle 1",
			classify: dga.DuvalTriangle1,
			reading:  func(p1, p2, p3 float64) dga.Reading { return dga.Reading{CH4: p1, C2H4: p2, C2H2: p3} },
			catalog:  &t1,
		},
		{
			name:     "Duval Triangle 4",
			classify: dga.DuvalTriangle4,
			reading:  func(p1, p2, p3 float64) dga.Reading { return dga.Reading{H2: p1, C2H2: p2, C2H4: p3} },
			catalog:  &t4,
		},
		{
			name:     "Duval Triangle 5",
			classify: dga.DuvalTriangle5,
			reading:  func(p1, p2, p3 float64) dga.Reading { return dga.Reading{CH4: p1, C2H4: p2, C2H2: p3} },
		},
	}

	fmt.Printf("Fault Rule Coverage Audit\n")
	fmt.Printf("=========================\n\n")
	fmt.Printf("Grid step: %.2f%%\n\n", *step)

	var rows [][]string
	for _, a := range audits {
		points := sampleSimplex(a, *step)
		displayCoverage(a, points)
		if a.catalog != nil {
			displayDrift(a, points)
		}
		fmt.Println()

		if *csvFile != "" {
			for _, pt := range points {
				rows = append(rows, []string{
					a.name,
					fmt.Sprintf("%.2f", pt.triple.P1),
					fmt.Sprintf("%.2f", pt.triple.P2),
					fmt.Sprintf("%.2f", pt.triple.P3),
					pt.fault,
					pt.region,
				})
			}
		}
	}

	if *csvFile != "" {
		if err := writeCSV(*csvFile, rows); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d sample points to %s\n", len(rows), *csvFile)
	}
}

// sampleSimplex walks the percentage simplex P2 + P3 <= 100 on a uniform
// grid and classifies every composition.
func sampleSimplex(a audit, step float64) []samplePoint {
	var points []samplePoint

	for p2 := 0.0; p2 <= 100; p2 += step {
		for p3 := 0.0; p2+p3 <= 100; p3 += step {
			p1 := 100 - p2 - p3
			d := a.classify(a.reading(p1, p2, p3))

			pt := samplePoint{
				triple: ternary.Triple{P1: p1, P2: p2, P3: p3, Total: 100},
				fault:  d.Fault,
			}
			if a.catalog != nil {
				pt.region = regionUnder(*a.catalog, pt.triple)
			}
			points = append(points, pt)
		}
	}

	return points
}

// regionUnder returns the name of the first catalog region whose polygon
// contains the point, or "" when no region covers it.
func regionUnder(tri faultmap.Triangle, t ternary.Triple) string {
	pt := t.Point()
	for _, region := range tri.Regions {
		poly := make([]ternary.Point, len(region.Vertices))
		for i, vtx := range region.Vertices {
			poly[i] = vtx.Point()
		}
		if containsPoint(poly, pt) {
			return region.Name
		}
	}
	return ""
}

// containsPoint tests polygon membership by ray casting. Points exactly
// on an edge may land on either side; at audit grid resolution that is
// noise, not signal.
func containsPoint(poly []ternary.Point, p ternary.Point) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// displayCoverage prints the share of the simplex each verdict claims.
func displayCoverage(a audit, points []samplePoint) {
	counts := make(map[string]int)
	for _, pt := range points {
		counts[pt.fault]++
	}

	faults := make([]string, 0, len(counts))
	for f := range counts {
		faults = append(faults, f)
	}
	sort.Slice(faults, func(i, j int) bool { return counts[faults[i]] > counts[faults[j]] })

	fmt.Printf("%s (%d samples):\n", a.name, len(points))
	for _, f := range faults {
		fmt.Printf("  %-28s %6.2f%%\n", f, float64(counts[f])/float64(len(points))*100)
	}
}

// displayDrift prints how often the rule verdict and the drawn catalog
// region under the same point disagree.
func displayDrift(a audit, points []samplePoint) {
	disagree := make([]float64, len(points))
	uncovered := 0
	for i, pt := range points {
		if pt.region == "" {
			uncovered++
			continue
		}
		if pt.fault != pt.region {
			disagree[i] = 1
		}
	}

	fmt.Printf("  Catalog drift: %.2f%% of samples disagree with the drawn region", stat.Mean(disagree, nil)*100)
	fmt.Printf(" (%.2f%% outside any polygon)\n", float64(uncovered)/float64(len(points))*100)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"method", "p1", "p2", "p3", "fault", "region"}); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
