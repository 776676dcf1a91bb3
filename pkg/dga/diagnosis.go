package dga

import (
	"fmt"

	"github.com/gridsentry/dgaportal/pkg/ternary"
)

// Method display names as they appear in the analysis summary.
const (
	MethodDuvalTriangle1 = "Duval's Triangle 1 (T1/T2/D1)"
	MethodDuvalTriangle4 = "Duval's Triangle 4 (T3/D2/S)"
	MethodDuvalTriangle5 = "Duval's Triangle 5 (HC/T1/T2)"
	MethodRogersRatio    = "Rogers Ratio Method (R1/R2/R5)"
	MethodDoernenburg    = "Doernenburg's Method"
	MethodDuvalPentagon  = "Duval's Pentagon (Conceptual)"
)

// Ratio is a named gas concentration ratio carried for display.
type Ratio struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Diagnosis is the outcome of one classifier. Fault is the short category
// label ("T1", "D2 / T3", "Inconclusive", ...); Detail is its optional
// parenthesized description. The numeric values that produced the verdict
// are always exposed structurally: Percent for the triangle methods
// (nil when the contributing gases sum to zero), Ratios for the ratio
// methods (ordered as rendered), and Code for the Rogers three-digit
// code.
type Diagnosis struct {
	Method  string          `json:"method"`
	Fault   string          `json:"fault"`
	Detail  string          `json:"detail,omitempty"`
	Percent *ternary.Triple `json:"percent,omitempty"`
	Ratios  []Ratio         `json:"ratios,omitempty"`
	Code    string          `json:"code,omitempty"`
}

// verdict is a fault label plus its optional parenthesized description.
type verdict struct {
	fault  string
	detail string
}

// label renders the fault category with its description, e.g.
// "T1 (Thermal fault T < 300°C)" or a bare "Undefined/Mixed Fault".
func (d Diagnosis) label() string {
	if d.Detail == "" {
		return d.Fault
	}
	return d.Fault + " (" + d.Detail + ")"
}

// String renders the one-line summary for the diagnosis: the verdict
// followed by the numeric detail that produced it, in the layout each
// method historically used (percentages to one decimal, ratios to two,
// the Rogers code as "Code: NNNXX").
func (d Diagnosis) String() string {
	switch {
	case d.Code != "":
		return fmt.Sprintf("Code: %sXX, Diagnosis: %s (R1:%.2f, R2:%.2f, R5:%.2f)",
			d.Code, d.label(), d.Ratios[0].Value, d.Ratios[1].Value, d.Ratios[2].Value)
	case d.Percent != nil:
		g := [3]string{"CH4", "C2H4", "C2H2"}
		if d.Method == MethodDuvalTriangle4 {
			g = [3]string{"H2", "C2H2", "C2H4"}
		}
		return fmt.Sprintf("%s (%s: %.1f%%, %s: %.1f%%, %s: %.1f%%)",
			d.label(), g[0], d.Percent.P1, g[1], d.Percent.P2, g[2], d.Percent.P3)
	case len(d.Ratios) > 0:
		return d.label() + " (Check thresholds in plot tab)"
	default:
		return d.label()
	}
}
