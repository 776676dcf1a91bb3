package plot

import (
	"math"
	"strings"
	"testing"

	"github.com/gridsentry/dgaportal/pkg/faultmap"
	"github.com/gridsentry/dgaportal/pkg/ternary"
)

// referenceSample normalizes CH4=25, C2H4=10, C2H2=0.5.
func referenceSample() ternary.Triple {
	return ternary.Normalize(25, 10, 0.5)
}

func TestBuild(t *testing.T) {
	tri := faultmap.Triangle1()
	p := Build(tri, "Duval Triangle 1 (T1, T2, D1, D2, PD)", referenceSample())

	if p.Title != "Duval Triangle 1 (T1, T2, D1, D2, PD)" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.Gas1 != "CH4" || p.Gas2 != "C2H4" || p.Gas3 != "C2H2" {
		t.Errorf("axes = %s/%s/%s, expected CH4/C2H4/C2H2", p.Gas1, p.Gas2, p.Gas3)
	}
	if len(p.Shapes) != len(tri.Regions) {
		t.Fatalf("len(Shapes) = %d, expected %d", len(p.Shapes), len(tri.Regions))
	}
	if p.Corners != ternary.Corners() {
		t.Errorf("Corners = %v, expected reference triangle corners", p.Corners)
	}

	if p.Marker == nil {
		t.Fatal("Marker is nil for a non-zero sample")
	}
	want := referenceSample().Point()
	if math.Abs(p.Marker.X-want.X) > 1e-9 || math.Abs(p.Marker.Y-want.Y) > 1e-9 {
		t.Errorf("Marker = (%.4f, %.4f), expected (%.4f, %.4f)", p.Marker.X, p.Marker.Y, want.X, want.Y)
	}
}

func TestBuildAnchors(t *testing.T) {
	// Each label anchor is the arithmetic mean of the region's projected
	// vertices
	tri := faultmap.Triangle4()
	p := Build(tri, "Duval Triangle 4 (T3, D2, S)", referenceSample())

	for i, shape := range p.Shapes {
		var sumX, sumY float64
		for _, vert := range tri.Regions[i].Vertices {
			pt := vert.Point()
			sumX += pt.X
			sumY += pt.Y
		}
		n := float64(len(tri.Regions[i].Vertices))
		if math.Abs(shape.Anchor.X-sumX/n) > 1e-9 || math.Abs(shape.Anchor.Y-sumY/n) > 1e-9 {
			t.Errorf("%s anchor = (%.4f, %.4f), expected (%.4f, %.4f)",
				shape.Name, shape.Anchor.X, shape.Anchor.Y, sumX/n, sumY/n)
		}
	}
}

func TestBuildZeroSample(t *testing.T) {
	p := Build(faultmap.Triangle1(), "Duval Triangle 1 (T1, T2, D1, D2, PD)", ternary.Normalize(0, 0, 0))

	if p.Marker != nil {
		t.Errorf("Marker = %v, expected nil for zero sample", p.Marker)
	}
	if p.Title != "Duval Triangle 1 - No Gas Input" {
		t.Errorf("Title = %q, expected the no-input variant", p.Title)
	}
	if len(p.Shapes) != 6 {
		t.Errorf("len(Shapes) = %d, catalog shapes should survive a zero sample", len(p.Shapes))
	}
}

func TestSVG(t *testing.T) {
	p := Build(faultmap.Triangle1(), "Duval Triangle 1 (T1, T2, D1, D2, PD)", referenceSample())
	svg := p.SVG()

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		"Duval Triangle 1 (T1, T2, D1, D2, PD)",
		`fill="lightblue" fill-opacity="0.3"`,
		`stroke-dasharray="2,2"`,
		`fill="red" stroke="black"`,
		"(CH4:70, C2H4:28, C2H2:1)",
		"CH4 (100%)",
		"C2H4 (100%)",
		"C2H2 (100%)",
		"</svg>",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}

	for _, region := range []string{"PD", "T1", "T2", "T3", "D2", "D1"} {
		if !strings.Contains(svg, ">"+region+"</text>") {
			t.Errorf("SVG missing region label %q", region)
		}
	}
}

func TestSVGZeroState(t *testing.T) {
	p := Build(faultmap.Triangle4(), "Duval Triangle 4 (T3, D2, S)", ternary.Normalize(0, 0, 0))
	svg := p.SVG()

	if !strings.Contains(svg, "Total Gas Concentration is Zero") {
		t.Error("SVG missing the zero-gas message")
	}
	if !strings.Contains(svg, "Duval Triangle 4 - No Gas Input") {
		t.Error("SVG missing the no-input title")
	}
	if strings.Contains(svg, "<circle") || strings.Contains(svg, "<polygon") {
		t.Error("zero-state SVG should not render shapes or the marker")
	}
}

func TestSVGDeterministic(t *testing.T) {
	a := Build(faultmap.Triangle1(), "Duval Triangle 1 (T1, T2, D1, D2, PD)", referenceSample()).SVG()
	b := Build(faultmap.Triangle1(), "Duval Triangle 1 (T1, T2, D1, D2, PD)", referenceSample()).SVG()
	if a != b {
		t.Error("identical inputs produced different SVG documents")
	}
}

func TestSVGApexPlacement(t *testing.T) {
	// The apex corner projects to (50, 50*sqrt(3)); flipped onto the SVG
	// canvas that is (55, 105-86.60)
	p := Build(faultmap.Triangle1(), "t", referenceSample())
	svg := p.SVG()
	if !strings.Contains(svg, "55.00,18.40") {
		t.Error("SVG missing the apex coordinate in the triangle outline")
	}
}
