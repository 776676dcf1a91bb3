// Package plot builds ternary diagram descriptions from a fault region
// catalog and one gas sample, and renders them as standalone SVG
// documents. Construction and rendering are deterministic: identical
// inputs produce byte-identical output.
package plot

import (
	"gonum.org/v1/gonum/stat"

	"github.com/gridsentry/dgaportal/pkg/faultmap"
	"github.com/gridsentry/dgaportal/pkg/ternary"
)

// Shape is one fault region projected onto the diagram plane. Anchor is
// the unweighted centroid of the projected vertices and positions the
// region label.
type Shape struct {
	Name   string          `json:"name"`
	Points []ternary.Point `json:"points"`
	Anchor ternary.Point   `json:"anchor"`
	Fill   string          `json:"fill"`
	Ink    string          `json:"ink"`
}

// Plot is a fully projected ternary diagram: the reference triangle, the
// catalog regions, and the sample position. Marker is nil when the
// sample's contributing gases sum to zero — the diagram then renders its
// no-input state.
type Plot struct {
	Title   string           `json:"title"`
	Gas1    string           `json:"gas1"`
	Gas2    string           `json:"gas2"`
	Gas3    string           `json:"gas3"`
	Corners [3]ternary.Point `json:"corners"`
	Shapes  []Shape          `json:"shapes"`
	Sample  ternary.Triple   `json:"sample"`
	Marker  *ternary.Point   `json:"marker,omitempty"`
}

// Build projects a catalog and a normalized sample into a Plot. A zero
// sample total replaces the given title with the diagram's no-input
// variant and leaves Marker nil.
func Build(tri faultmap.Triangle, title string, sample ternary.Triple) Plot {
	p := Plot{
		Title:   title,
		Gas1:    tri.Gas1,
		Gas2:    tri.Gas2,
		Gas3:    tri.Gas3,
		Corners: ternary.Corners(),
		Sample:  sample,
	}

	for _, region := range tri.Regions {
		shape := Shape{
			Name:   region.Name,
			Fill:   region.Fill,
			Ink:    region.Ink,
			Points: make([]ternary.Point, len(region.Vertices)),
		}
		xs := make([]float64, len(region.Vertices))
		ys := make([]float64, len(region.Vertices))
		for i, vert := range region.Vertices {
			pt := vert.Point()
			shape.Points[i] = pt
			xs[i], ys[i] = pt.X, pt.Y
		}
		shape.Anchor = ternary.Point{X: stat.Mean(xs, nil), Y: stat.Mean(ys, nil)}
		p.Shapes = append(p.Shapes, shape)
	}

	if sample.Total == 0 {
		p.Title = tri.Name + " - No Gas Input"
		return p
	}

	marker := sample.Point()
	p.Marker = &marker
	return p
}
