package ntru

import "fmt"

// ExtendedGCD runs the polynomial extended Euclidean algorithm over the
// field Z/mZ (m prime) between a and b, returning d, s, t such that
// s*a + t*b ≡ d (mod m, x^N-1) with d canonicalized to be monic (leading
// coefficient 1) whenever it is non-zero. Grounded on the teacher's
// invertPoly EEA loop (R0/R1/S0/S1/T0/T1), generalized from a fixed
// negacyclic modulus to an arbitrary pair of operands (spec §4.2).
//
// The division steps inside the loop operate on plain polynomials over
// Z/mZ[x], with no reduction mod x^N-1: only the final d, s, t are folded
// into N-bounded representatives. Folding the operands up front would be
// wrong for the case this function exists to serve — computing inv(f) via
// ExtendedGCD(f, x^N-1, m, N) — since x^N-1 folds to the zero polynomial
// in R_m and would make b vanish before the algorithm ever ran.
func (a ConvPoly) ExtendedGCD(b ConvPoly, m, N int) (d, s, t ConvPoly, err error) {
	aR := a.Modulo(m)
	bR := b.Modulo(m)
	if aR.IsZero() && bR.IsZero() {
		return ConvPoly{}, ConvPoly{}, ConvPoly{}, fmt.Errorf("%w: both operands are zero in Z/%dZ", ErrInvalidInput, m)
	}

	R0, R1 := aR, bR
	S0, S1 := Constant(1, N), Constant(0, N)
	T0, T1 := Constant(0, N), Constant(1, N)

	for !R1.IsZero() {
		q, r, divErr := longDivision(R0, R1, m)
		if divErr != nil {
			return ConvPoly{}, ConvPoly{}, ConvPoly{}, divErr
		}
		R0, R1 = R1, r
		S0, S1 = S1, subModPlain(S0, mulModPlain(q, S1, m), m)
		T0, T1 = T1, subModPlain(T0, mulModPlain(q, T1, m), m)
	}

	d = ConvPoly{Coeffs: foldCyclic(R0.Coeffs, N)}.Modulo(m)
	s = ConvPoly{Coeffs: foldCyclic(S0.Coeffs, N)}.Modulo(m)
	t = ConvPoly{Coeffs: foldCyclic(T0.Coeffs, N)}.Modulo(m)

	if d.IsZero() {
		return d, s, t, nil
	}
	invLc, invErr := inverse(int(d.Lc()), m)
	if invErr != nil {
		return ConvPoly{}, ConvPoly{}, ConvPoly{}, fmt.Errorf("%w: modulus %d is not prime", ErrInvalidInput, m)
	}
	return scalarMulMod(d, invLc, m), scalarMulMod(s, invLc, m), scalarMulMod(t, invLc, m), nil
}

// mulPlain is the ordinary (non-cyclic) polynomial product: length grows to
// len(a)+len(b)-1, with no reduction mod any ring modulus.
func mulPlain(a, b ConvPoly) ConvPoly {
	if a.IsZero() || b.IsZero() {
		return ConvPoly{Coeffs: []int64{0}}
	}
	out := make([]int64, len(a.Coeffs)+len(b.Coeffs)-1)
	for i, x := range a.Coeffs {
		if x == 0 {
			continue
		}
		for j, y := range b.Coeffs {
			out[i+j] += x * y
		}
	}
	return ConvPoly{Coeffs: out}
}

func mulModPlain(a, b ConvPoly, m int) ConvPoly {
	return mulPlain(a, b).Modulo(m)
}

func subModPlain(a, b ConvPoly, m int) ConvPoly {
	return a.Sub(b).Modulo(m)
}

// scalarMulMod multiplies every coefficient of p by c, reducing mod m.
func scalarMulMod(p ConvPoly, c, m int) ConvPoly {
	out := make([]int64, len(p.Coeffs))
	for i, x := range p.Coeffs {
		out[i] = int64(euclidMod(int(x)*c, m))
	}
	return ConvPoly{Coeffs: out}.Trim()
}
