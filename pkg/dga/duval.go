package dga

import "github.com/gridsentry/dgaportal/pkg/ternary"

// Duval Triangle 1 boundaries over (P1=CH4, P2=C2H4, P3=C2H2) shares.
var triangle1Rules = []triangleRule{
	{func(p ternary.Triple) bool { return p.P3 < 0.5 && p.P1 > 80 }, verdict{"T1", "Thermal fault T < 300°C"}},
	{func(p ternary.Triple) bool { return p.P2 > 25 && p.P3 < 1 }, verdict{"T2", "Thermal fault 300°C–700°C"}},
	{func(p ternary.Triple) bool { return p.P3 > 5 && p.P2 > 15 }, verdict{"D2", "Arcing in oil"}},
	{func(p ternary.Triple) bool { return p.P2 > 50 && p.P3 < 2 }, verdict{"T3", "Thermal fault T > 700°C"}},
}

// Duval Triangle 4 boundaries over (P1=H2, P2=C2H2, P3=C2H4) shares.
var triangle4Rules = []triangleRule{
	{func(p ternary.Triple) bool { return p.P1 > 80 && p.P2 < 5 }, verdict{"S", "Stray Gassing / Hot metal contacts"}},
	{func(p ternary.Triple) bool { return p.P3 > 60 && p.P1 < 10 }, verdict{"T3", "Severe Thermal Fault T > 700°C"}},
	{func(p ternary.Triple) bool { return p.P2 > 15 }, verdict{"D2", "High Energy Arcing"}},
}

// Duval Triangle 5 boundaries over (P1=CH4, P2=C2H4, P3=C2H2) shares.
var triangle5Rules = []triangleRule{
	{func(p ternary.Triple) bool { return p.P2 > 50 && p.P1 > 40 }, verdict{"HC", "Hot cellulosic materials"}},
	{func(p ternary.Triple) bool { return p.P1 > 70 && p.P2 < 10 }, verdict{"T1", "Thermal T < 300°C - Cellulose/Paper"}},
	{func(p ternary.Triple) bool { return p.P2 > 30 && p.P3 < 1 }, verdict{"T2", "Thermal T 300°C–770°C"}},
}

// DuvalTriangle1 classifies methane, ethylene, and acetylene shares with
// the Duval Triangle 1 boundaries, covering low- through high-temperature
// thermal faults and oil arcing.
func DuvalTriangle1(r Reading) Diagnosis {
	return classifyTriangle(MethodDuvalTriangle1, triangle1Rules, "Undefined/Mixed Fault",
		ternary.Normalize(r.CH4, r.C2H4, r.C2H2))
}

// DuvalTriangle4 classifies hydrogen, acetylene, and ethylene shares with
// the Duval Triangle 4 boundaries, distinguishing stray gassing, severe
// thermal faults, and high energy arcing.
func DuvalTriangle4(r Reading) Diagnosis {
	return classifyTriangle(MethodDuvalTriangle4, triangle4Rules, "Mixed or Undefined Region",
		ternary.Normalize(r.H2, r.C2H2, r.C2H4))
}

// DuvalTriangle5 classifies methane, ethylene, and acetylene shares with
// the Duval Triangle 5 boundaries, focused on cellulose-related and
// mid-temperature thermal faults.
func DuvalTriangle5(r Reading) Diagnosis {
	return classifyTriangle(MethodDuvalTriangle5, triangle5Rules, "Mixed Oil Fault",
		ternary.Normalize(r.CH4, r.C2H4, r.C2H2))
}

// classifyTriangle runs one triangle's rule chain over a normalized
// composition. A zero total short-circuits to Not Applicable; a reading
// matching no rule takes the triangle's fallback label.
func classifyTriangle(method string, rules []triangleRule, fallback string, pct ternary.Triple) Diagnosis {
	if pct.Total == 0 {
		return Diagnosis{Method: method, Fault: "Not Applicable", Detail: "Total gas is zero"}
	}

	v := verdict{fault: fallback}
	if m, ok := matchTriangle(rules, pct); ok {
		v = m
	}

	return Diagnosis{
		Method:  method,
		Fault:   v.fault,
		Detail:  v.detail,
		Percent: &pct,
	}
}
