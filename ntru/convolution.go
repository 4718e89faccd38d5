package ntru

// Mul returns the convolution product of p and q in R = Z[x]/(x^N-1):
// compute the ordinary product (length up to len(p)+len(q)-1), then fold
// index i >= N onto index i - N by addition (spec §4.2). The result has
// length at most N.
func (p ConvPoly) Mul(q ConvPoly, N int) ConvPoly {
	out := make([]int64, N)
	for i, a := range p.Coeffs {
		if a == 0 {
			continue
		}
		for j, b := range q.Coeffs {
			if b == 0 {
				continue
			}
			out[(i+j)%N] += a * b
		}
	}
	return ConvPoly{Coeffs: out}.Trim()
}
