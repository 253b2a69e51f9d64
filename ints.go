package javarandom

import (
	"math"

	"golang.org/x/xerrors"
)

func (r *Random) NextInt() int32 {
	return r.Next(32)
}

// NextIntn returns a value in [0, bound). bound must be within
// 1..math.MaxInt32.
func (r *Random) NextIntn(bound int) (int32, error) {
	if bound <= 0 || bound > math.MaxInt32 {
		return 0, xerrors.Errorf("bound %d out of range (1..%d): %w", bound, math.MaxInt32, ErrInvalidArgument)
	}
	n := int32(bound)

	if n&-n == n {
		return int32((int64(n) * int64(r.Bits(31))) >> 31), nil
	}

	for {
		bits := int32(r.Bits(31))
		val := bits % n
		// overflow here means bits sits in the final partial block of size n
		if bits-val+(n-1) >= 0 {
			return val, nil
		}
	}
}

// NextLong combines two signed 32-bit draws, high half first.
func (r *Random) NextLong() int64 {
	msb := int64(r.Next(32))
	lsb := int64(r.Next(32))
	return msb<<32 + lsb
}

func (r *Random) NextBoolean() bool {
	return r.Bits(1) != 0
}

// NextBytes fills p with random bytes, four per NextInt draw, low byte
// first. A trailing draw is discarded after the bytes it supplies.
func (r *Random) NextBytes(p []byte) {
	for i := 0; i < len(p); {
		rnd := r.NextInt()
		for n := min(len(p)-i, 4); n > 0; n-- {
			p[i] = byte(rnd)
			rnd >>= 8
			i++
		}
	}
}
