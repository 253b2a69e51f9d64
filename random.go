// Package javarandom reproduces the output of java.util.Random.
//
// A Random seeded with the same value as a Java Random yields the same
// sequence from every method. It is fully predictable from its seed and
// must not be used where unpredictability matters.
package javarandom

import (
	"crypto/rand"
	"encoding/binary"
)

const (
	multiplier = 0x5DEECE66D
	addend     = 0xB
	mask       = (1 << 48) - 1
)

// Random is a 48-bit linear congruential generator. It is not safe for
// concurrent use; callers sharing one must serialize access.
type Random struct {
	seed                 uint64
	nextNextGaussian     float64
	haveNextNextGaussian bool
}

// New returns a Random seeded from the system entropy source.
func New() *Random {
	var b [8]byte
	// crypto/rand.Read does not fail on supported platforms
	_, _ = rand.Read(b[:])
	return NewSeed(int64(binary.LittleEndian.Uint64(b[:]) & mask))
}

func NewSeed(seed int64) *Random {
	r := &Random{}
	r.SetSeed(seed)
	return r
}

// SetSeed scrambles seed into the generator state and drops any pending
// Gaussian value.
func (r *Random) SetSeed(seed int64) {
	r.seed = (uint64(seed) ^ multiplier) & mask
	r.haveNextNextGaussian = false
}

// Clone returns an independent copy sharing no state with r.
func (r *Random) Clone() *Random {
	c := *r
	return &c
}

func (r *Random) advance() uint64 {
	r.seed = (r.seed*multiplier + addend) & mask
	return r.seed
}

// Bits advances the state and returns its top bits bits, zero extended.
// bits must be within 1..32.
func (r *Random) Bits(bits int) uint32 {
	return uint32(r.advance() >> (48 - bits))
}

// Next is the signed form of Bits: the top 32 bits of the state are taken
// as an int32 and shifted arithmetically, so Next(32) may be negative.
func (r *Random) Next(bits int) int32 {
	return int32(uint32(r.advance()>>16)) >> (32 - bits)
}
