package javarandom

import "math/rand"

var _ rand.Source64 = (*Random)(nil)

// Seed is SetSeed under the math/rand.Source name.
func (r *Random) Seed(seed int64) {
	r.SetSeed(seed)
}

func (r *Random) Uint64() uint64 {
	return uint64(r.NextLong())
}

func (r *Random) Int63() int64 {
	return int64(r.Uint64() >> 1)
}
