package portal

import (
	"time"

	"github.com/gridsentry/dgaportal/pkg/dga"
	"github.com/gridsentry/dgaportal/pkg/faultmap"
	"github.com/gridsentry/dgaportal/pkg/plot"
	"github.com/gridsentry/dgaportal/pkg/ternary"
)

// DiagnosisReport is one classifier outcome plus the rendered one-line
// summary shown in the analysis table.
type DiagnosisReport struct {
	dga.Diagnosis
	Summary string `json:"summary"`
}

// DiagnoseReport is the full payload for the diagnose endpoints: the
// echoed reading, total combustible gas, and every classifier verdict.
type DiagnoseReport struct {
	ID          string            `json:"id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Reading     dga.Reading       `json:"reading"`
	TCG         float64           `json:"tcg"`
	Diagnoses   []DiagnosisReport `json:"diagnoses"`
}

// PlotResponse pairs the projected plot with the catalog triangle it was
// built from, so clients can work from either the plane coordinates or
// the raw ternary vertices.
type PlotResponse struct {
	Plot    plot.Plot         `json:"plot"`
	Catalog faultmap.Triangle `json:"catalog"`
}

// StatusResponse reports portal health for monitoring probes.
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// plotTitle returns the dashboard title for a catalog triangle key.
func plotTitle(key string) string {
	switch key {
	case "t1":
		return "Duval Triangle 1 (T1, T2, D1, D2, PD)"
	case "t4":
		return "Duval Triangle 4 (T3, D2, S)"
	}
	return ""
}

// sampleFor projects a reading onto the gas axes of a catalog triangle.
// The axes match the classification rules: CH4/C2H4/C2H2 for Triangle 1
// and H2/C2H2/C2H4 for Triangle 4.
func sampleFor(key string, r dga.Reading) ternary.Triple {
	switch key {
	case "t1":
		return ternary.Normalize(r.CH4, r.C2H4, r.C2H2)
	case "t4":
		return ternary.Normalize(r.H2, r.C2H2, r.C2H4)
	}
	return ternary.Triple{}
}
