package dga

// Doernenburg applicability minimums in ppm. Readings below any minimum
// are inconclusive before a single ratio is computed — a hard gate, not
// a warning. The gate also guarantees every ratio denominator below is
// strictly positive.
const (
	doernenburgMinH2   = 100
	doernenburgMinCH4  = 10
	doernenburgMinC2H2 = 0.5
	doernenburgMinC2H4 = 50
)

// Doernenburg boundary checks over the post-gate ratios.
var doernenburgRules = []readingRule{
	{func(r Reading) bool { return r.C2H2/r.C2H4 > 0.3 && r.C2H2/r.CH4 < 0.7 }, verdict{"D1", "Discharge/Arcing"}},
	{func(r Reading) bool { return r.C2H2/r.C2H4 < 0.3 && r.CH4/r.H2 > 1.0 }, verdict{"T2", "Thermal fault 300°C–700°C"}},
}

// Doernenburg classifies a reading with the Doernenburg ratio method.
// Unless H2, CH4, C2H2, and C2H4 all meet their minimum concentrations
// the verdict is Inconclusive and no ratios are reported.
func Doernenburg(r Reading) Diagnosis {
	if r.H2 < doernenburgMinH2 || r.CH4 < doernenburgMinCH4 ||
		r.C2H2 < doernenburgMinC2H2 || r.C2H4 < doernenburgMinC2H4 {
		return Diagnosis{
			Method: MethodDoernenburg,
			Fault:  "Inconclusive",
			Detail: "Gas limits below Doernenburg thresholds",
		}
	}

	v := verdict{fault: "Mixed/Other fault"}
	if m, ok := matchReading(doernenburgRules, r); ok {
		v = m
	}

	return Diagnosis{
		Method: MethodDoernenburg,
		Fault:  v.fault,
		Detail: v.detail,
		Ratios: []Ratio{
			{Name: "CH4 / H2", Value: r.CH4 / r.H2},
			{Name: "C2H2 / C2H4", Value: r.C2H2 / r.C2H4},
			{Name: "C2H2 / CH4", Value: r.C2H2 / r.CH4},
			{Name: "C2H2 / H2", Value: r.C2H2 / r.H2},
		},
	}
}
