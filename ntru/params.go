package ntru

import "fmt"

// Params fixes the ring dimension and moduli the engine operates under: R =
// Z[x]/(x^N-1), R_p = R reduced mod p, R_q = R reduced mod q. N must be
// prime for ConvPoly.Inverse to work unconditionally on every invertible
// element (spec §3, §9); p and q must be coprime with q much larger than p
// so that centered-lift decryption (§4.5) recovers the plaintext exactly.
type Params struct {
	N int // ring dimension, prime
	P int // small message modulus
	Q int // large ciphertext modulus, a power of two in this engine
	D int // ternary sampling weight
}

// NewParams validates and constructs a parameter set. N must be prime, P and
// Q must be coprime and at least 2, and D must leave room for the weight
// 2*D+1 used by private-key sampling (T(d+1,d)) to fit within N.
func NewParams(N, P, Q, D int) (Params, error) {
	if N < 2 || !isPrime(N) {
		return Params{}, fmt.Errorf("%w: N=%d must be prime", ErrInvalidInput, N)
	}
	if P < 2 || Q < 2 {
		return Params{}, fmt.Errorf("%w: P and Q must be >= 2", ErrInvalidInput)
	}
	if g, _ := gcd(P, Q); g != 1 {
		return Params{}, fmt.Errorf("%w: P=%d and Q=%d must be coprime", ErrInvalidInput, P, Q)
	}
	if D < 0 || 2*D+1 > N {
		return Params{}, fmt.Errorf("%w: D=%d leaves no room in N=%d", ErrInvalidInput, D, N)
	}
	return Params{N: N, P: P, Q: Q, D: D}, nil
}

// DefaultParams returns the engine's fixed production parameters:
// N=167 (prime), p=3, q=128, d=18.
func DefaultParams() Params {
	p, err := NewParams(167, 3, 128, 18)
	if err != nil {
		panic("ntru: default parameters are invalid: " + err.Error())
	}
	return p
}

// isPrime is a plain trial-division primality test; N stays in the low
// hundreds for every parameter set this engine uses, so this is not a
// bottleneck.
func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
