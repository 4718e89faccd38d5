package ntru

import "fmt"

// gcd computes the non-negative greatest common divisor of a and b. It
// fails with ErrInvalidInput when a = b = 0, a programmer error per spec
// §4.1.
func gcd(a, b int) (int, error) {
	if a == 0 && b == 0 {
		return 0, fmt.Errorf("%w: gcd(0, 0) is undefined", ErrInvalidInput)
	}
	a, b = absInt(a), absInt(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a, nil
}

// extendedGCD returns (d, x, y) with d = |a|*x + |b|*y and d = gcd(a, b).
// Signs of a and b are stripped before the loop; a caller that needs
// Bézout coefficients against the original signed a, b must reapply the
// signs itself (spec §4.1). Fails with ErrInvalidInput for (0, 0).
func extendedGCD(a, b int) (d, x, y int, err error) {
	if a == 0 && b == 0 {
		return 0, 0, 0, fmt.Errorf("%w: extended_gcd(0, 0) is undefined", ErrInvalidInput)
	}
	absA, absB := absInt(a), absInt(b)

	// Iterative extended Euclid over non-negative operands.
	oldR, r := absA, absB
	oldS, s := 1, 0
	oldT, t := 0, 1
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}
	return oldR, oldS, oldT, nil
}

// inverse returns the unique inv in [0, m) with (a*inv) mod m = 1. It fails
// with ErrInvalidInput when a = 0, and with ErrNoInverse when gcd(|a|, m) !=
// 1. Negative a is accepted and treated as its canonical representative mod
// m (spec §4.1).
func inverse(a, m int) (int, error) {
	if a == 0 {
		return 0, fmt.Errorf("%w: inverse(0, m) is undefined", ErrInvalidInput)
	}
	if m < 1 {
		return 0, fmt.Errorf("%w: modulus must be positive", ErrInvalidInput)
	}
	aMod := euclidMod(a, m)
	if aMod == 0 {
		return 0, fmt.Errorf("%w: %d has no inverse mod %d", ErrNoInverse, a, m)
	}
	d, x, _, err := extendedGCD(aMod, m)
	if err != nil {
		return 0, err
	}
	if d != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) = %d != 1", ErrNoInverse, a, m, d)
	}
	return euclidMod(x, m), nil
}

// centerLift returns the representative of a mod m in the symmetric
// interval around zero: (-m/2, m/2] for odd m, [-m/2, m/2] for even m with
// values strictly greater than m/2 reduced by m (spec §4.1, §9).
func centerLift(a, m int) int {
	r := euclidMod(a, m)
	if r > m/2 {
		r -= m
	}
	return r
}

// euclidMod returns the mathematical (Euclidean) remainder of a mod m,
// always in [0, m) for m > 0, regardless of the sign of a.
func euclidMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += absInt(m)
	}
	return r
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
