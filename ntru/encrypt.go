package ntru

import "fmt"

// Encrypt implements spec §4.5 encrypt: reject oversized messages, encode
// the message into the ring, blind it with a fresh ternary r(x), and
// return e(x) = (m(x) + p*r(x)*h(x)) mod q with coefficients in [0, q). A
// fresh blinding polynomial is drawn from r on every call, so no blinding
// polynomial is reused across encryptions.
func (pub NtruPublicKey) Encrypt(message []byte, r *RNG) (ConvPoly, error) {
	par := pub.Params
	if digitsPerByte*len(message) > par.N {
		return ConvPoly{}, fmt.Errorf("%w: message of %d bytes needs %d ring slots, ring has %d", ErrInvalidInput, len(message), digitsPerByte*len(message), par.N)
	}

	m, err := Serialize(message)
	if err != nil {
		return ConvPoly{}, err
	}
	blind, err := TernaryPolynomial(r, par.N, par.D, par.D)
	if err != nil {
		return ConvPoly{}, err
	}

	blindedH := blind.Mul(pub.H, par.N).ScalarMul(int64(par.P))
	e := m.Add(blindedH).Modulo(par.Q)
	Debugf("ntru: encrypted %d-byte message into ciphertext, max|coeff|=%d\n", len(message), e.MaxAbsCoeff())
	return e, nil
}
