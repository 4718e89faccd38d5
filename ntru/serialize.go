package ntru

import "fmt"

// digitsPerByte is the number of balanced-ternary digits used to encode a
// single byte: 3^5 = 243 < 256, so not every byte value fits and this encoding only
// accepts byte values strictly below 243 (spec §4.4; ASCII input, the
// engine's intended use, always satisfies this).
const digitsPerByte = 5

const maxSerializableByte = 3*3*3*3*3 - 1 // 242

// Serialize encodes bytes into a polynomial of length at most 5*len(bytes)
// with coefficients in {-1, 0, 1}: each byte becomes 5 balanced-ternary
// digits, least-significant digit first, concatenated byte after byte, and
// trailing zero digits are trimmed (spec §4.4).
// Fails with ErrInvalidInput if any byte is >= 243.
func Serialize(data []byte) (ConvPoly, error) {
	coeffs := make([]int64, 0, digitsPerByte*len(data))
	for _, b := range data {
		if int(b) > maxSerializableByte {
			return ConvPoly{}, fmt.Errorf("%w: byte value %d does not fit in %d balanced-ternary digits", ErrInvalidInput, b, digitsPerByte)
		}
		coeffs = append(coeffs, byteToTrits(b)...)
	}
	return ConvPoly{Coeffs: coeffs}.Trim(), nil
}

// Deserialize is the inverse of Serialize: it groups the coefficients of
// poly into consecutive blocks of 5 and reconstructs one byte per block
// (spec §4.4). The coefficient sequence is padded with trailing zeros to a
// multiple of 5 first, since Trim may have stripped trailing zero digits
// that Serialize originally produced. Zero bytes at the end of the original
// message are not restored: the result holds one byte per 5-coefficient
// block of the padded poly.
func Deserialize(poly ConvPoly) []byte {
	coeffs := poly.Coeffs
	for len(coeffs)%digitsPerByte != 0 {
		coeffs = append(coeffs, 0)
	}
	out := make([]byte, 0, len(coeffs)/digitsPerByte)
	for i := 0; i < len(coeffs); i += digitsPerByte {
		var block [digitsPerByte]int64
		copy(block[:], coeffs[i:i+digitsPerByte])
		out = append(out, tritsToByte(block))
	}
	return out
}

// byteToTrits decomposes b into 5 balanced-ternary digits d_0..d_4 with
// b = sum(d_i * 3^i), each d_i in {-1, 0, 1}.
func byteToTrits(b byte) []int64 {
	v := int64(b)
	digits := make([]int64, digitsPerByte)
	for i := 0; i < digitsPerByte; i++ {
		r := v % 3
		if r == 2 {
			r = -1
		}
		digits[i] = r
		v = (v - r) / 3
	}
	return digits
}

// tritsToByte recomposes a byte from 5 balanced-ternary digits. The
// weighted sum is negative for byte values whose highest non-zero digit is
// -1 (b >= 122, since 3^5=243 and the symmetric range is [-121, 121]); it must be
// reduced mod 243 before the cast to byte, or Go's byte(int64) truncation
// (mod 256, not mod 243) silently corrupts the result.
func tritsToByte(digits [digitsPerByte]int64) byte {
	var v int64
	p := int64(1)
	for i := 0; i < digitsPerByte; i++ {
		v += digits[i] * p
		p *= 3
	}
	return byte(euclidMod(int(v), maxSerializableByte+1))
}
