package plot

import (
	"fmt"
	"strings"

	"github.com/gridsentry/dgaportal/pkg/ternary"
)

// The SVG canvas wraps the diagram's native coordinate range (x in
// [-5, 105], y in [-5, 95]) with headroom for the title above the apex
// and the sample annotation below the base. The y axis flips because
// SVG grows downward.
const (
	viewWidth  = 110
	viewHeight = 116
)

func svgX(x float64) float64 { return x + 5 }
func svgY(y float64) float64 { return 105 - y }

// SVG renders the plot as a standalone SVG document: dashed gray region
// outlines with translucent fills, region labels at their anchors, the
// black reference triangle, and the red sample marker with its share
// annotation. A plot without a marker renders the zero-gas message
// instead of the diagram.
func (p Plot) SVG() string {
	var b strings.Builder

	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %d %d\" width=\"550\" height=\"580\">\n",
		viewWidth, viewHeight)
	fmt.Fprintf(&b, "<rect width=\"%d\" height=\"%d\" fill=\"white\"/>\n", viewWidth, viewHeight)
	fmt.Fprintf(&b, "<text x=\"55\" y=\"7\" font-size=\"6\" font-weight=\"bold\" text-anchor=\"middle\">%s</text>\n", p.Title)

	if p.Marker == nil {
		fmt.Fprintf(&b, "<text x=\"55\" y=\"55\" font-size=\"5\" text-anchor=\"middle\">Total Gas Concentration is Zero</text>\n")
		b.WriteString("</svg>\n")
		return b.String()
	}

	for _, s := range p.Shapes {
		fmt.Fprintf(&b, "<polygon points=\"%s\" fill=\"%s\" fill-opacity=\"0.3\" stroke=\"gray\" stroke-width=\"0.5\" stroke-dasharray=\"2,2\"/>\n",
			pointsAttr(s.Points), s.Fill)
	}
	for _, s := range p.Shapes {
		fmt.Fprintf(&b, "<text x=\"%.2f\" y=\"%.2f\" font-size=\"4\" font-weight=\"bold\" fill=\"%s\" text-anchor=\"middle\" dominant-baseline=\"middle\">%s</text>\n",
			svgX(s.Anchor.X), svgY(s.Anchor.Y), s.Ink, s.Name)
	}

	fmt.Fprintf(&b, "<polygon points=\"%s\" fill=\"none\" stroke=\"black\" stroke-width=\"1\"/>\n", pointsAttr(p.Corners[:]))

	fmt.Fprintf(&b, "<circle cx=\"%.2f\" cy=\"%.2f\" r=\"2\" fill=\"red\" stroke=\"black\" stroke-width=\"0.5\"/>\n",
		svgX(p.Marker.X), svgY(p.Marker.Y))
	fmt.Fprintf(&b, "<text x=\"%.2f\" y=\"%.2f\" font-size=\"3.5\" font-weight=\"bold\" fill=\"red\" text-anchor=\"middle\">(%s:%.0f, %s:%.0f, %s:%.0f)</text>\n",
		svgX(p.Marker.X), svgY(p.Marker.Y-8),
		p.Gas1, p.Sample.P1, p.Gas2, p.Sample.P2, p.Gas3, p.Sample.P3)

	fmt.Fprintf(&b, "<text x=\"%.2f\" y=\"%.2f\" font-size=\"5\" font-weight=\"bold\" text-anchor=\"middle\">%s (100%%)</text>\n",
		svgX(p.Corners[0].X), svgY(p.Corners[0].Y-5), p.Gas1)
	fmt.Fprintf(&b, "<text x=\"%.2f\" y=\"%.2f\" font-size=\"5\" font-weight=\"bold\" text-anchor=\"middle\">%s (100%%)</text>\n",
		svgX(p.Corners[1].X), svgY(p.Corners[1].Y-5), p.Gas2)
	fmt.Fprintf(&b, "<text x=\"%.2f\" y=\"%.2f\" font-size=\"5\" font-weight=\"bold\" text-anchor=\"middle\">%s (100%%)</text>\n",
		svgX(p.Corners[2].X), svgY(p.Corners[2].Y+5), p.Gas3)

	b.WriteString("</svg>\n")
	return b.String()
}

// pointsAttr renders projected points as an SVG polygon points attribute.
func pointsAttr(pts []ternary.Point) string {
	parts := make([]string, len(pts))
	for i, pt := range pts {
		parts[i] = fmt.Sprintf("%.2f,%.2f", svgX(pt.X), svgY(pt.Y))
	}
	return strings.Join(parts, " ")
}
