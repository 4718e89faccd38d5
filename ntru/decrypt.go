package ntru

// DecryptToBytes implements spec §4.5 decrypt: recover a(x) = e(x)*f(x) in
// R_q, center-lift it into the symmetric range (valid as long as q is much
// larger than the true coefficient magnitude of p*r*g + m*f), reduce mod p,
// multiply by f^-1_p in R_p, and deserialize the result back into bytes.
// The result always holds ceil(N/5) bytes: the message followed by zero
// bytes, since the message length is agreed out of band.
// A decryption failure is not reported as an error: if the parameters let
// the center-lift step wrap, the returned bytes silently differ from the
// original message (spec §4.5), matching the original engine's failure
// mode.
func (priv NtruPrivateKey) DecryptToBytes(ciphertext ConvPoly) ([]byte, error) {
	par := priv.Params

	a := ciphertext.Mul(priv.F, par.N).Modulo(par.Q).CenterLift(par.Q)
	aModP := a.Modulo(par.P)
	m := aModP.Mul(priv.FInvP, par.N).Modulo(par.P).CenterLift(par.P)

	// Pad m back to all N coefficients so trailing zero bytes of the message
	// are not lost to Trim.
	full := make([]int64, par.N)
	copy(full, m.Coeffs)
	plaintext := Deserialize(ConvPoly{Coeffs: full})
	Debugf("ntru: decrypted ciphertext into %d-byte message\n", len(plaintext))
	return plaintext, nil
}
