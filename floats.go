package javarandom

import "math"

const (
	floatUnit  = 1 << 24
	doubleUnit = 1 << 53
)

// NextFloat returns a value in [0, 1) with 24 bits of precision.
func (r *Random) NextFloat() float32 {
	return float32(r.Bits(24)) / floatUnit
}

// NextDouble returns a value in [0, 1) built from a 26-bit and a 27-bit
// draw, in that order.
func (r *Random) NextDouble() float64 {
	hi := uint64(r.Bits(26))
	lo := uint64(r.Bits(27))
	return float64(hi<<27+lo) / doubleUnit
}

// NextGaussian returns a normally distributed value with mean 0 and
// standard deviation 1. Values are produced in pairs by the polar method;
// the second of each pair is held until the next call.
func (r *Random) NextGaussian() float64 {
	if r.haveNextNextGaussian {
		r.haveNextNextGaussian = false
		return r.nextNextGaussian
	}

	var v1, v2, s float64
	for {
		v1 = 2*r.NextDouble() - 1
		v2 = 2*r.NextDouble() - 1
		// conversions force rounding of each product, forbidding FMA
		s = float64(v1*v1) + float64(v2*v2)
		if s < 1 && s != 0 {
			break
		}
	}
	m := math.Sqrt(-2 * math.Log(s) / s)
	r.nextNextGaussian = v2 * m
	r.haveNextNextGaussian = true
	return v1 * m
}
