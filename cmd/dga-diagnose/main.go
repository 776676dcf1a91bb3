package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gridsentry/dgaportal/pkg/dga"
	"github.com/gridsentry/dgaportal/pkg/faultmap"
	"github.com/gridsentry/dgaportal/pkg/plot"
	"github.com/gridsentry/dgaportal/pkg/ternary"
)

func main() {
	var (
		h2     = flag.Float64("h2", 0, "Hydrogen concentration in ppm")
		ch4    = flag.Float64("ch4", 0, "Methane concentration in ppm")
		c2h4   = flag.Float64("c2h4", 0, "Ethylene concentration in ppm")
		c2h2   = flag.Float64("c2h2", 0, "Acetylene concentration in ppm")
		co     = flag.Float64("co", 0, "Carbon monoxide concentration in ppm")
		asJSON = flag.Bool("json", false, "Emit the full report as JSON instead of a table")
		svgDir = flag.String("svg-dir", "", "Directory to write t1.svg and t4.svg diagrams into (optional)")
	)
	flag.Parse()

	for name, v := range map[string]float64{"h2": *h2, "ch4": *ch4, "c2h4": *c2h4, "c2h2": *c2h2, "co": *co} {
		if v < 0 {
			fmt.Fprintf(os.Stderr, "Error: -%s must be non-negative, got %v\n", name, v)
			os.Exit(1)
		}
	}

	reading := dga.Reading{H2: *h2, CH4: *ch4, C2H4: *c2h4, C2H2: *c2h2, CO: *co}
	diagnoses := dga.DiagnoseAll(reading)

	if *asJSON {
		report := struct {
			Reading   dga.Reading `json:"reading"`
			TCG       float64     `json:"tcg"`
			Diagnoses []struct {
				dga.Diagnosis
				Summary string `json:"summary"`
			} `json:"diagnoses"`
		}{Reading: reading, TCG: reading.TCG()}
		for _, d := range diagnoses {
			report.Diagnoses = append(report.Diagnoses, struct {
				dga.Diagnosis
				Summary string `json:"summary"`
			}{d, d.String()})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Printf("DGA Fault Analysis\n")
		fmt.Printf("  Reading (ppm): H2=%.1f CH4=%.1f C2H4=%.1f C2H2=%.1f CO=%.1f\n",
			reading.H2, reading.CH4, reading.C2H4, reading.C2H2, reading.CO)
		fmt.Printf("  TCG:           %.1f ppm\n\n", reading.TCG())
		for _, d := range diagnoses {
			fmt.Printf("  %-32s %s\n", d.Method, d.String())
		}
	}

	if *svgDir != "" {
		if err := writeDiagrams(*svgDir, reading); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing diagrams: %v\n", err)
			os.Exit(1)
		}
	}
}

// writeDiagrams renders both triangle diagrams for the reading into dir.
func writeDiagrams(dir string, r dga.Reading) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	diagrams := []struct {
		file   string
		tri    faultmap.Triangle
		title  string
		sample ternary.Triple
	}{
		{"t1.svg", faultmap.Triangle1(), "Duval Triangle 1 (T1, T2, D1, D2, PD)", ternary.Normalize(r.CH4, r.C2H4, r.C2H2)},
		{"t4.svg", faultmap.Triangle4(), "Duval Triangle 4 (T3, D2, S)", ternary.Normalize(r.H2, r.C2H2, r.C2H4)},
	}

	for _, d := range diagrams {
		path := filepath.Join(dir, d.file)
		svg := plot.Build(d.tri, d.title, d.sample).SVG()
		if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Printf("  Wrote %s\n", path)
	}
	return nil
}
