package dga

// Duval Pentagon screening rules over absolute concentrations. The real
// pentagon method places a five-ratio point inside 2-D fault polygons;
// this is the conceptual approximation of its outcomes.
var pentagonRules = []readingRule{
	{func(r Reading) bool { return r.C2H2 > 10 && r.C2H4 > 50 }, verdict{"D2 / T3", "High Energy Arcing + Hotspot"}},
	{func(r Reading) bool { return r.H2 > 500 && r.C2H4 < 50 }, verdict{"PD / D1", "Partial Discharge / Low Energy Discharge"}},
	{func(r Reading) bool { return r.CO > 1000 && r.C2H4 < 10 }, verdict{"C", "Cellulose/Paper degradation - thermal"}},
	{func(r Reading) bool { return r.C2H4 > 200 && r.H2 < 50 }, verdict{"T2", "Thermal Fault 300°C-700°C"}},
}

// DuvalPentagon classifies a reading with the conceptual pentagon rules.
// It is the only classifier that consults carbon monoxide.
func DuvalPentagon(r Reading) Diagnosis {
	v := verdict{fault: "Mixed/Unclassified Fault Zone"}
	if m, ok := matchReading(pentagonRules, r); ok {
		v = m
	}

	return Diagnosis{
		Method: MethodDuvalPentagon,
		Fault:  v.fault,
		Detail: v.detail,
	}
}
