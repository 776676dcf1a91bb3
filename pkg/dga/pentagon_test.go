package dga

import "testing"

func TestDuvalPentagon(t *testing.T) {
	tests := []struct {
		name       string
		reading    Reading
		wantFault  string
		wantDetail string
	}{
		{
			name:       "arcing with hotspot",
			reading:    Reading{C2H2: 20, C2H4: 100},
			wantFault:  "D2 / T3",
			wantDetail: "High Energy Arcing + Hotspot",
		},
		{
			name:       "partial discharge",
			reading:    Reading{H2: 600, C2H4: 10},
			wantFault:  "PD / D1",
			wantDetail: "Partial Discharge / Low Energy Discharge",
		},
		{
			name:       "cellulose degradation",
			reading:    Reading{H2: 100, CO: 1500, C2H4: 5},
			wantFault:  "C",
			wantDetail: "Cellulose/Paper degradation - thermal",
		},
		{
			name:       "thermal fault",
			reading:    Reading{H2: 30, C2H4: 250},
			wantFault:  "T2",
			wantDetail: "Thermal Fault 300°C-700°C",
		},
		{
			name:       "reference reading is unclassified",
			reading:    Reading{H2: 150, CH4: 25, C2H4: 10, C2H2: 0.5, CO: 800},
			wantFault:  "Mixed/Unclassified Fault Zone",
			wantDetail: "",
		},
		{
			name:       "zero reading is unclassified",
			reading:    Reading{},
			wantFault:  "Mixed/Unclassified Fault Zone",
			wantDetail: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DuvalPentagon(tt.reading)

			if got.Method != MethodDuvalPentagon {
				t.Errorf("Method = %q, expected %q", got.Method, MethodDuvalPentagon)
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

func TestDuvalPentagonRuleOrder(t *testing.T) {
	// H2 > 500 with low C2H4 matches the PD rule before the cellulose
	// rule can see CO > 1000
	got := DuvalPentagon(Reading{H2: 600, C2H4: 5, CO: 1500})
	if got.Fault != "PD / D1" {
		t.Errorf("Fault = %q, expected PD / D1 to win by rule order over C", got.Fault)
	}
}

func TestDuvalPentagonString(t *testing.T) {
	got := DuvalPentagon(Reading{C2H2: 20, C2H4: 100}).String()
	want := "D2 / T3 (High Energy Arcing + Hotspot)"
	if got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}
