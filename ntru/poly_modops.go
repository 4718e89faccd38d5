package ntru

// Modulo reduces every coefficient of p into [0, m) using the mathematical
// (Euclidean) remainder, then trims the result.
func (p ConvPoly) Modulo(m int) ConvPoly {
	out := make([]int64, len(p.Coeffs))
	for i, c := range p.Coeffs {
		out[i] = int64(euclidMod(int(c), m))
	}
	return ConvPoly{Coeffs: out}.Trim()
}

// CenterLift applies the integer centerLift to each coefficient, returning
// a polynomial with signed coefficients in the symmetric range around zero
// (spec §4.1, §4.2). A coefficient that becomes 0 may be trimmed away, but
// the result is not otherwise canonicalized.
func (p ConvPoly) CenterLift(m int) ConvPoly {
	out := make([]int64, len(p.Coeffs))
	for i, c := range p.Coeffs {
		out[i] = int64(centerLift(int(c), m))
	}
	return ConvPoly{Coeffs: out}.Trim()
}

// Add returns p + q over Z, coefficient-wise, with no modular reduction.
// The result length is the max of the two input lengths.
func (p ConvPoly) Add(q ConvPoly) ConvPoly {
	n := maxLen(len(p.Coeffs), len(q.Coeffs))
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		out[i] = at(p.Coeffs, i) + at(q.Coeffs, i)
	}
	return ConvPoly{Coeffs: out}
}

// Sub returns p - q over Z, coefficient-wise, with no modular reduction.
func (p ConvPoly) Sub(q ConvPoly) ConvPoly {
	n := maxLen(len(p.Coeffs), len(q.Coeffs))
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		out[i] = at(p.Coeffs, i) - at(q.Coeffs, i)
	}
	return ConvPoly{Coeffs: out}
}

// ScalarMul multiplies every coefficient of p by c over Z, with no modular
// reduction.
func (p ConvPoly) ScalarMul(c int64) ConvPoly {
	out := make([]int64, len(p.Coeffs))
	for i, v := range p.Coeffs {
		out[i] = v * c
	}
	return ConvPoly{Coeffs: out}.Trim()
}

func maxLen(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func at(coeffs []int64, i int) int64 {
	if i < len(coeffs) {
		return coeffs[i]
	}
	return 0
}
