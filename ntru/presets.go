package ntru

// TinyParams returns a small parameter set suitable for fast unit tests of
// the arithmetic layers (L0/L1) where the production ring size (N=167)
// would make property tests slow. Mirrors the teacher's small smoke presets
// (PresetSmooth3_6_Q1038337 and friends): a named, reduced-scale stand-in
// for the default, not a security claim.
func TinyParams() Params {
	par, err := NewParams(11, 3, 32, 2)
	if err != nil {
		panic("ntru: tiny parameters are invalid: " + err.Error())
	}
	return par
}

// TestParams returns a mid-sized parameter set used by the NTRU round-trip
// property tests: large enough to carry realistic messages, small enough
// that retry-until-invertible key generation stays fast in a test suite.
func TestParams() Params {
	par, err := NewParams(61, 3, 64, 8)
	if err != nil {
		panic("ntru: test parameters are invalid: " + err.Error())
	}
	return par
}
