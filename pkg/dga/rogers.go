package dga

// Rogers code lookup table. Codes not present resolve to the developing
// fault fallback; the code itself is always reported alongside.
var rogersFaults = map[string]verdict{
	"100": {"T1", "Thermal Fault T < 300°C"},
	"110": {"T2", "Thermal Fault 300°C–700°C"},
	"210": {"T3", "Thermal Fault T > 700°C"},
	"102": {"D1", "Low Energy Discharge/PD"},
	"001": {"D2", "High Energy Discharge/Arcing"},
	"000": {"No fault / Normal aging", ""},
	"010": {"Undefined/Mixed thermal", ""},
	"011": {"Undefined/Mixed thermal", ""},
	"111": {"Mixed thermal and electrical", ""},
}

// RogersRatio classifies a reading by bucketing three gas ratios into a
// three-digit code and looking the code up in a fixed fault table. The
// code concatenates in R1, R2, R5 order.
func RogersRatio(r Reading) Diagnosis {
	r1 := ratioOrSentinel(r.CH4, r.H2)
	r2 := ratioOrSentinel(r.C2H4, r.CH4)
	r5 := ratioOrSentinel(r.C2H2, r.C2H4)

	code := string([]byte{
		bucket(r1, 0.1, 1.0),
		bucket(r2, 1.0, 3.0),
		bucket(r5, 0.5, 3.0),
	})

	v, ok := rogersFaults[code]
	if !ok {
		v = verdict{fault: "Undefined/Developing Fault"}
	}

	return Diagnosis{
		Method: MethodRogersRatio,
		Fault:  v.fault,
		Detail: v.detail,
		Code:   code,
		Ratios: []Ratio{
			{Name: "R1 (CH4/H2)", Value: r1},
			{Name: "R2 (C2H4/CH4)", Value: r2},
			{Name: "R5 (C2H2/C2H4)", Value: r5},
		},
	}
}

// ratioOrSentinel divides num by den. A denominator that is not positive
// substitutes the out-of-range sentinel 99 so downstream bucketing still
// resolves to the high bucket instead of dividing by zero.
func ratioOrSentinel(num, den float64) float64 {
	if den > 0 {
		return num / den
	}
	return 99
}

// bucket maps a ratio onto its ordinal code digit: '0' below lo, '2'
// above hi, '1' in between. Values exactly at a cutoff land in the
// middle bucket.
func bucket(v, lo, hi float64) byte {
	switch {
	case v < lo:
		return '0'
	case v > hi:
		return '2'
	default:
		return '1'
	}
}
