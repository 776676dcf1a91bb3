package dga

import (
	"math"
	"testing"
)

func TestDuvalTriangle1(t *testing.T) {
	tests := []struct {
		name       string
		reading    Reading
		wantFault  string
		wantDetail string
	}{
		{
			// Reference reading from the portal defaults: C2H2 share 1.4%
			// fails the <0.5 and <1 checks, C2H4 share 28.2% fails >50
			name:       "reference reading falls to undefined",
			reading:    Reading{H2: 150, CH4: 25, C2H4: 10, C2H2: 0.5, CO: 800},
			wantFault:  "Undefined/Mixed Fault",
			wantDetail: "",
		},
		{
			name:       "low temperature thermal",
			reading:    Reading{CH4: 90, C2H4: 10},
			wantFault:  "T1",
			wantDetail: "Thermal fault T < 300°C",
		},
		{
			name:       "mid temperature thermal",
			reading:    Reading{CH4: 60, C2H4: 40},
			wantFault:  "T2",
			wantDetail: "Thermal fault 300°C–700°C",
		},
		{
			name:       "arcing in oil",
			reading:    Reading{CH4: 40, C2H4: 30, C2H2: 30},
			wantFault:  "D2",
			wantDetail: "Arcing in oil",
		},
		{
			name:       "high temperature thermal",
			reading:    Reading{CH4: 44, C2H4: 55, C2H2: 1},
			wantFault:  "T3",
			wantDetail: "Thermal fault T > 700°C",
		},
		{
			name:       "zero contributing gases",
			reading:    Reading{H2: 500, CO: 1000},
			wantFault:  "Not Applicable",
			wantDetail: "Total gas is zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DuvalTriangle1(tt.reading)

			if got.Method != MethodDuvalTriangle1 {
				t.Errorf("Method = %q, expected %q", got.Method, MethodDuvalTriangle1)
			}
			if got.Fault != tt.wantFault {
				t.Errorf("Fault = %q, expected %q", got.Fault, tt.wantFault)
			}
			if got.Detail != tt.wantDetail {
				t.Errorf("Detail = %q, expected %q", got.Detail, tt.wantDetail)
			}
		})
	}
}

func TestDuvalTriangle1RuleOrder(t *testing.T) {
	// CH4=30, C2H4=69.5, C2H2=0.5 satisfies both the T2 rule (C2H4 > 25,
	// C2H2 < 1) and the later T3 rule (C2H4 > 50, C2H2 < 2). First match
	// must win.
	got := DuvalTriangle1(Reading{CH4: 30, C2H4: 69.5, C2H2: 0.5})
	if got.Fault != "T2" {
		t.Errorf("Fault = %q, expected T2 to win by rule order over T3", got.Fault)
	}
}

func TestDuvalTriangle1String(t *testing.T) {
	got := DuvalTriangle1(Reading{H2: 150, CH4: 25, C2H4: 10, C2H2: 0.5, CO: 800}).String()
	want := "Undefined/Mixed Fault (CH4: 70.4%, C2H4: 28.2%, C2H2: 1.4%)"
	if got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}

	got = DuvalTriangle1(Reading{H2: 500, CO: 1000}).String()
	want = "Not Applicable (Total gas is zero)"
	if got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestDuvalTriangle4(t *testing.T) {
	tests := []struct {
		name       string
		reading    Reading
		wantFault  string
		wantDetail string
	}{
		{
			name:       "stray gassing",
			reading:    Reading{H2: 90, C2H2: 2, C2H4: 8},
			wantFault:  "S",
			wantDetail: "Stray Gassing / Hot metal contacts",
		},
		{
			name:       "severe thermal",
			reading:    Reading{H2: 5, C2H2: 20, C2H4: 75},
			wantFault:  "T3",
			wantDetail: "Severe Thermal Fault T > 700°C",
		},
		{
			name:       "high energy arcing",
			reading:    Reading{H2: 50, C2H2: 30, C2H4: 20},
			wantFault:  "D2",
			wantDetail: "High Energy Arcing",
		},
		{
			name:       "mixed region fallback",
			reading:    Reading{H2: 50, C2H2: 5, C2H4: 45},
			wantFault:  "Mixed or Undefined Region",
			wantDetail: "",
		},
		{
			// H2 dominates the reference reading (93.5% share)
			name:       "reference reading is stray gassing",
			reading:    Reading{H2: 150, CH4: 25, C2H4: 10, C2H2: 0.5, CO: 800},
			wantFault:  "S",
			wantDetail: "Stray Gassing / Hot metal contacts",
		},
		{
			name:       "zero contributing gases",
			reading:    Reading{CH4: 25, CO: 800},
			wantFault:  "Not Applicable",
			wantDetail: "Total gas is zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DuvalTriangle4(tt.reading)

			if got.Method != MethodDuvalTriangle4 {
				t.Errorf("Method = %q, expected %q", got.Method, MethodDuvalTriangle4)
			}
			if got.Fault != tt.wantFault {
				t.Errorf("Fault = %q, expected %q", got.Fault, tt.wantFault)
			}
			if got.Detail != tt.wantDetail {
				t.Errorf("Detail = %q, expected %q", got.Detail, tt.wantDetail)
			}
		})
	}
}

func TestDuvalTriangle4String(t *testing.T) {
	// Axis order for Triangle 4 is H2, C2H2, C2H4
	got := DuvalTriangle4(Reading{H2: 150, CH4: 25, C2H4: 10, C2H2: 0.5, CO: 800}).String()
	want := "S (Stray Gassing / Hot metal contacts) (H2: 93.5%, C2H2: 0.3%, C2H4: 6.2%)"
	if got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestDuvalTriangle5(t *testing.T) {
	tests := []struct {
		name       string
		reading    Reading
		wantFault  string
		wantDetail string
	}{
		{
			name:       "hot cellulosic",
			reading:    Reading{CH4: 42, C2H4: 52, C2H2: 6},
			wantFault:  "HC",
			wantDetail: "Hot cellulosic materials",
		},
		{
			name:       "cellulose low temperature",
			reading:    Reading{CH4: 85, C2H4: 5, C2H2: 10},
			wantFault:  "T1",
			wantDetail: "Thermal T < 300°C - Cellulose/Paper",
		},
		{
			name:       "mid temperature thermal",
			reading:    Reading{CH4: 65, C2H4: 34.8, C2H2: 0.2},
			wantFault:  "T2",
			wantDetail: "Thermal T 300°C–770°C",
		},
		{
			// CH4 share 70.4% passes >70 but C2H4 share 28.2% fails <10,
			// and 28.2 fails >30, so the reference reading falls through
			name:       "reference reading is mixed oil",
			reading:    Reading{H2: 150, CH4: 25, C2H4: 10, C2H2: 0.5, CO: 800},
			wantFault:  "Mixed Oil Fault",
			wantDetail: "",
		},
		{
			name:       "zero contributing gases",
			reading:    Reading{H2: 150, CO: 800},
			wantFault:  "Not Applicable",
			wantDetail: "Total gas is zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DuvalTriangle5(tt.reading)

			if got.Method != MethodDuvalTriangle5 {
				t.Errorf("Method = %q, expected %q", got.Method, MethodDuvalTriangle5)
			}
			if got.Fault != tt.wantFault {
				t.Errorf("Fault = %q, expected %q", got.Fault, tt.wantFault)
			}
			if got.Detail != tt.wantDetail {
				t.Errorf("Detail = %q, expected %q", got.Detail, tt.wantDetail)
			}
		})
	}
}

func TestTrianglePercentages(t *testing.T) {
	// Non-degenerate diagnoses carry the normalized shares that produced
	// them, summing to 100
	r := Reading{H2: 150, CH4: 25, C2H4: 10, C2H2: 0.5, CO: 800}
	for _, d := range []Diagnosis{DuvalTriangle1(r), DuvalTriangle4(r), DuvalTriangle5(r)} {
		if d.Percent == nil {
			t.Fatalf("%s: Percent is nil for a non-zero reading", d.Method)
		}
		sum := d.Percent.P1 + d.Percent.P2 + d.Percent.P3
		if math.Abs(sum-100) > 1e-9 {
			t.Errorf("%s: shares sum to %.12f, expected 100", d.Method, sum)
		}
		if d.Percent.Total == 0 {
			t.Errorf("%s: Total = 0 for a non-zero reading", d.Method)
		}
	}

	if d := DuvalTriangle1(Reading{CO: 800}); d.Percent != nil {
		t.Errorf("Percent = %+v for zero contributing gases, expected nil", d.Percent)
	}
}
