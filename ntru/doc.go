package ntru

// Package ntru implements the NTRU public-key cryptosystem: truncated
// polynomial ring arithmetic over R = Z[x]/(x^N-1), ternary-polynomial key
// generation, and message encryption/decryption, with a Go-friendly API
// around error returns rather than panics.
