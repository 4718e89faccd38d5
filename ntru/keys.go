package ntru

import "fmt"

// maxKeygenTrials bounds the otherwise-unbounded retry loop in
// GenerateKeyPair so a pathological parameter set fails loudly instead of
// spinning forever (spec §4.5 notes the retry loop "is unbounded in
// principle" but terminates quickly for sensible parameters).
const maxKeygenTrials = 10000

// NtruPrivateKey holds the secret polynomial f together with its
// precomputed inverses in R_p and R_q, so decryption does not recompute
// them on every call.
type NtruPrivateKey struct {
	Params Params
	F      ConvPoly
	FInvP  ConvPoly
	FInvQ  ConvPoly
}

// NtruPublicKey holds h = f^-1_q * g, reduced into [0, q).
type NtruPublicKey struct {
	Params Params
	H      ConvPoly
}

// NtruKeyPair bundles a private and public key generated together.
type NtruKeyPair struct {
	Private NtruPrivateKey
	Public  NtruPublicKey
}

// GenerateKeyPair samples f from T(d+1, d), retrying until f is invertible
// in both R_p and R_q, then samples g from T(d, d) with no invertibility
// requirement and derives h = f^-1_q * g (spec §4.5).
func GenerateKeyPair(par Params, r *RNG) (NtruKeyPair, error) {
	var f, fInvP, fInvQ ConvPoly
	found := false
	attempt := 0
	for ; attempt < maxKeygenTrials; attempt++ {
		cand, err := TernaryPolynomial(r, par.N, par.D+1, par.D)
		if err != nil {
			return NtruKeyPair{}, err
		}
		invP, err := cand.Inverse(par.P, par.N)
		if err != nil {
			continue
		}
		invQ, err := invertModQ(cand, par)
		if err != nil {
			continue
		}
		f, fInvP, fInvQ = cand, invP, invQ
		found = true
		break
	}
	if !found {
		return NtruKeyPair{}, fmt.Errorf("%w: no invertible f found in %d attempts", ErrNoInverse, maxKeygenTrials)
	}
	Debugf("ntru: found invertible f after %d attempt(s) (N=%d, P=%d, Q=%d)\n", attempt+1, par.N, par.P, par.Q)

	g, err := TernaryPolynomial(r, par.N, par.D, par.D)
	if err != nil {
		return NtruKeyPair{}, err
	}
	h := fInvQ.Mul(g, par.N).Modulo(par.Q)
	Debugf("ntru: derived public key h, max|coeff|=%d\n", h.MaxAbsCoeff())

	priv := NtruPrivateKey{Params: par, F: f, FInvP: fInvP, FInvQ: fInvQ}
	pub := NtruPublicKey{Params: par, H: h}
	return NtruKeyPair{Private: priv, Public: pub}, nil
}

// PublicKey returns the pair's public half.
func (kp NtruKeyPair) PublicKey() NtruPublicKey { return kp.Public }

// PrivateKey returns the pair's private half.
func (kp NtruKeyPair) PrivateKey() NtruPrivateKey { return kp.Private }

// Encrypt encrypts message with the pair's public key (spec §6 convenience
// surface).
func (kp NtruKeyPair) Encrypt(message []byte, r *RNG) (ConvPoly, error) {
	return kp.Public.Encrypt(message, r)
}

// Decrypt decrypts ciphertext with the pair's private key.
func (kp NtruKeyPair) Decrypt(ciphertext ConvPoly) ([]byte, error) {
	return kp.Private.DecryptToBytes(ciphertext)
}

// invertModQ inverts f in R_q, dispatching to the Hensel-lifted path when q
// is a power of two and to the plain prime-field inversion otherwise (spec
// §4.2, §9).
func invertModQ(f ConvPoly, par Params) (ConvPoly, error) {
	if _, err := log2Exact(par.Q); err == nil {
		return f.InversePow2(par.N, par.Q)
	}
	return f.Inverse(par.Q, par.N)
}
