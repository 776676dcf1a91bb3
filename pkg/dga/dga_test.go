package dga

import (
	"reflect"
	"testing"
)

// referenceReading is the portal's default form input.
var referenceReading = Reading{H2: 150, CH4: 25, C2H4: 10, C2H2: 0.5, CO: 800}

func TestTCG(t *testing.T) {
	if got := referenceReading.TCG(); got != 985.5 {
		t.Errorf("TCG() = %v, expected 985.5", got)
	}
	if got := (Reading{}).TCG(); got != 0 {
		t.Errorf("TCG() = %v, expected 0 for the zero reading", got)
	}
}

func TestDiagnoseAllOrder(t *testing.T) {
	want := []string{
		MethodDuvalTriangle1,
		MethodDuvalTriangle4,
		MethodDuvalTriangle5,
		MethodRogersRatio,
		MethodDoernenburg,
		MethodDuvalPentagon,
	}

	got := DiagnoseAll(referenceReading)
	if len(got) != len(want) {
		t.Fatalf("len = %d, expected %d", len(got), len(want))
	}
	for i, d := range got {
		if d.Method != want[i] {
			t.Errorf("result %d: Method = %q, expected %q", i, d.Method, want[i])
		}
	}
}

func TestDiagnoseAllReferenceReading(t *testing.T) {
	want := []string{
		"Undefined/Mixed Fault (CH4: 70.4%, C2H4: 28.2%, C2H2: 1.4%)",
		"S (Stray Gassing / Hot metal contacts) (H2: 93.5%, C2H2: 0.3%, C2H4: 6.2%)",
		"Mixed Oil Fault (CH4: 70.4%, C2H4: 28.2%, C2H2: 1.4%)",
		"Code: 100XX, Diagnosis: T1 (Thermal Fault T < 300°C) (R1:0.17, R2:0.40, R5:0.05)",
		"Inconclusive (Gas limits below Doernenburg thresholds)",
		"Mixed/Unclassified Fault Zone",
	}

	got := DiagnoseAll(referenceReading)
	for i, d := range got {
		if d.String() != want[i] {
			t.Errorf("result %d: String() = %q, expected %q", i, d.String(), want[i])
		}
	}
}

func TestDiagnoseAllIdempotent(t *testing.T) {
	// Two evaluations of the same reading are byte-identical: there is no
	// hidden state anywhere in the rule set
	first := DiagnoseAll(referenceReading)
	second := DiagnoseAll(referenceReading)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated evaluation differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
	for i := range first {
		if first[i].String() != second[i].String() {
			t.Errorf("result %d: summary changed between evaluations", i)
		}
	}
}

func TestDiagnoseAllZeroReading(t *testing.T) {
	// Every classifier resolves the all-zero reading to a named fallback,
	// never an empty or panicking result
	want := []string{
		"Not Applicable",
		"Not Applicable",
		"Not Applicable",
		"Undefined/Developing Fault",
		"Inconclusive",
		"Mixed/Unclassified Fault Zone",
	}

	got := DiagnoseAll(Reading{})
	for i, d := range got {
		if d.Fault != want[i] {
			t.Errorf("result %d (%s): Fault = %q, expected %q", i, d.Method, d.Fault, want[i])
		}
		if d.String() == "" {
			t.Errorf("result %d (%s): empty summary", i, d.Method)
		}
	}
}
