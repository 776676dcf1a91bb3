// Package dga implements dissolved gas analysis fault classification for
// oil-filled transformers. Six independent classifiers map a five-gas
// reading to a textual diagnosis: Duval Triangles 1, 4, and 5, the Rogers
// Ratio method, Doernenburg's ratio method, and a conceptual Duval
// Pentagon approximation. The boundary constants are deliberately
// simplified screening approximations of the IEC 60599 / IEEE C57.104
// methods, not the standards themselves.
//
// Every classifier is a pure function of its Reading: no state, no
// errors. Degenerate inputs resolve to named fallback verdicts
// ("Not Applicable", "Inconclusive", mixed/undefined) rather than
// failures.
package dga

// Reading is a single dissolved gas sample in ppm. All concentrations are
// non-negative by contract; zero is valid for any individual gas. A
// Reading is immutable input to every classifier.
type Reading struct {
	H2   float64 `json:"h2"`
	CH4  float64 `json:"ch4"`
	C2H4 float64 `json:"c2h4"`
	C2H2 float64 `json:"c2h2"`
	CO   float64 `json:"co"`
}

// TCG returns the total combustible gas concentration, the sum of all
// five tracked gases.
func (r Reading) TCG() float64 {
	return r.H2 + r.CH4 + r.C2H4 + r.C2H2 + r.CO
}

// DiagnoseAll evaluates every classifier against the reading, in the
// order the analysis summary presents them.
func DiagnoseAll(r Reading) []Diagnosis {
	return []Diagnosis{
		DuvalTriangle1(r),
		DuvalTriangle4(r),
		DuvalTriangle5(r),
		RogersRatio(r),
		Doernenburg(r),
		DuvalPentagon(r),
	}
}
