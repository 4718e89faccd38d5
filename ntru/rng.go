package ntru

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/sha3"
)

// RNG is a deterministic, seedable random source built on a SHAKE256
// extendable-output function. Ternary sampling (spec §4.3) needs a stream
// of unbiased integers, not the non-cryptographic math/rand generator the
// teacher used for its FFT sampler: two RNGs seeded with the same bytes
// produce identical streams, which is what the sampling property tests
// rely on, while NewSystemRNG gives production callers real entropy.
type RNG struct {
	xof io.Reader
}

// NewRNG derives a SHAKE256 stream from seed and returns an RNG reading
// from it.
func NewRNG(seed []byte) *RNG {
	h := sha3.NewShake256()
	h.Write(seed)
	return &RNG{xof: h}
}

// NewSystemRNG returns an RNG seeded from the operating system's entropy
// source, for key generation and encryption.
func NewSystemRNG() (*RNG, error) {
	seed := make([]byte, 64)
	if _, err := io.ReadFull(rand.Reader, seed); err != nil {
		return nil, err
	}
	return NewRNG(seed), nil
}

// Intn returns a uniformly distributed integer in [0, n) via rejection
// sampling, so the distribution is not skewed by a naive modulo reduction.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		panic("ntru: Intn called with n <= 0")
	}
	limit := uint32(n)
	bound := (uint32(0xFFFFFFFF) / limit) * limit
	for {
		v := r.uint32()
		if v < bound {
			return int(v % limit)
		}
	}
}

func (r *RNG) uint32() uint32 {
	var b [4]byte
	if _, err := io.ReadFull(r.xof, b[:]); err != nil {
		panic("ntru: shake256 stream read failed: " + err.Error())
	}
	return binary.BigEndian.Uint32(b[:])
}
