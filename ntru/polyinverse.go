package ntru

import "fmt"

// xNMinusOne returns the polynomial x^N - 1 as a literal ConvPoly of
// degree N: coefficient -1 at index 0, coefficient 1 at index N. Used only
// as the second operand to ExtendedGCD, never folded mod itself.
func xNMinusOne(N int) ConvPoly {
	c := make([]int64, N+1)
	c[0] = -1
	c[N] = 1
	return ConvPoly{Coeffs: c}
}

// Inverse computes the multiplicative inverse of p in R_m = (Z/mZ)[x]/(x^N-1)
// with m prime, by running ExtendedGCD(p, x^N-1, m, N) (spec §4.2). p is
// invertible iff gcd(p, x^N-1) is a unit of Z/mZ, i.e. a non-zero constant;
// ExtendedGCD already canonicalizes a non-zero gcd to be monic, so that
// case reduces to checking the gcd is the constant polynomial 1.
func (p ConvPoly) Inverse(m, N int) (ConvPoly, error) {
	d, s, _, err := p.ExtendedGCD(xNMinusOne(N), m, N)
	if err != nil {
		return ConvPoly{}, err
	}
	if d.IsZero() || d.Deg() != 0 {
		return ConvPoly{}, fmt.Errorf("%w: gcd(f, x^%d-1) is not a unit in Z/%dZ", ErrNoInverse, N, m)
	}
	return s.Trim(), nil
}

// InversePow2 computes the multiplicative inverse of p in R_q = Z[x]/(x^N-1)
// taken mod q, where q = 2^k, via Hensel lifting (spec §4.2, §9): the
// polynomial extended Euclidean algorithm only works over a prime modulus,
// so q=2 is used to seed an inverse, then the precision is doubled each
// round by inv ← inv*(2 - p*inv) mod 2^(2e) until it covers all of q.
func (p ConvPoly) InversePow2(N, q int) (ConvPoly, error) {
	k, err := log2Exact(q)
	if err != nil {
		return ConvPoly{}, err
	}

	inv, err := p.Inverse(2, N)
	if err != nil {
		return ConvPoly{}, fmt.Errorf("%w: not invertible mod 2, so not invertible mod %d", ErrNoInverse, q)
	}

	e := 1
	for e < k {
		e2 := e * 2
		modAt := 1 << uint(e2)
		prod := p.Mul(inv, N).Modulo(modAt)
		factor := Constant(2, N).Sub(prod).Modulo(modAt)
		inv = inv.Mul(factor, N).Modulo(modAt)
		e = e2
	}
	return inv.Modulo(q), nil
}

// log2Exact returns k such that q = 2^k, or an error if q is not a power of
// two greater than 1.
func log2Exact(q int) (int, error) {
	if q < 2 {
		return 0, fmt.Errorf("%w: %d is not a power of two", ErrInvalidInput, q)
	}
	k := 0
	n := q
	for n > 1 {
		if n%2 != 0 {
			return 0, fmt.Errorf("%w: %d is not a power of two", ErrInvalidInput, q)
		}
		n /= 2
		k++
	}
	return k, nil
}
