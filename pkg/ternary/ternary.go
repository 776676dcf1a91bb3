// Package ternary provides percentage normalization and the barycentric
// projection used to place three-gas compositions on a ternary diagram.
// The reference triangle spans A=(0,0), B=(100,0), C=(50, 50*sqrt(3)), so
// a composition of 100% on one axis lands exactly on that axis's corner.
package ternary

import "math"

// Triple is a normalized percentage composition. P1, P2, and P3 are shares
// of the pre-normalization sum and add to 100 unless Total is zero. Total
// preserves the original concentration sum (ppm) so callers can recognize
// the degenerate zero-gas case without recomputing it.
type Triple struct {
	P1    float64 `json:"p1"`    // share of the first axis gas, percent
	P2    float64 `json:"p2"`    // share of the second axis gas, percent
	P3    float64 `json:"p3"`    // share of the third axis gas, percent
	Total float64 `json:"total"` // sum of the raw inputs before normalization
}

// Point is a position in diagram coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Normalize converts three gas concentrations into percentage shares of
// their sum. A zero sum yields the zero Triple; Total == 0 is the signal
// that there was no gas to classify.
func Normalize(g1, g2, g3 float64) Triple {
	total := g1 + g2 + g3
	if total == 0 {
		return Triple{}
	}
	return Triple{
		P1:    g1 / total * 100,
		P2:    g2 / total * 100,
		P3:    g3 / total * 100,
		Total: total,
	}
}

// Cartesian projects a percentage triple onto the diagram plane:
//
//	x = p2 + p3/2
//	y = p3 * sqrt(3)/2
//
// Only p2 and p3 drive the projection; once normalized, p1 is implied by
// the other two. It is accepted anyway so call sites read in axis order.
func Cartesian(p1, p2, p3 float64) Point {
	return Point{
		X: p2 + p3/2,
		Y: p3 * math.Sqrt(3) / 2,
	}
}

// Point projects the triple onto the diagram plane.
func (t Triple) Point() Point {
	return Cartesian(t.P1, t.P2, t.P3)
}

// Corners returns the reference triangle corners in axis order: the P1
// corner at the origin, the P2 corner at (100,0), the P3 corner at the
// apex.
func Corners() [3]Point {
	return [3]Point{
		{X: 0, Y: 0},
		{X: 100, Y: 0},
		{X: 50, Y: 50 * math.Sqrt(3)},
	}
}
