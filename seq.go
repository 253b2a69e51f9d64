package javarandom

import (
	"iter"
	"math"

	"golang.org/x/xerrors"
)

// Ints returns an unbounded sequence of NextInt values. Each value is
// drawn when the consumer asks for it, so ranging over the sequence
// advances r exactly as the equivalent NextInt calls would.
func (r *Random) Ints() iter.Seq[int32] {
	return forever(r.NextInt)
}

// IntsN is Ints limited to count values. The count is shared by every
// range over the returned sequence; once spent, the sequence is empty.
func (r *Random) IntsN(count int64) (iter.Seq[int32], error) {
	return limited(count, r.NextInt)
}

func (r *Random) Longs() iter.Seq[int64] {
	return forever(r.NextLong)
}

func (r *Random) LongsN(count int64) (iter.Seq[int64], error) {
	return limited(count, r.NextLong)
}

func (r *Random) Doubles() iter.Seq[float64] {
	return forever(r.NextDouble)
}

func (r *Random) DoublesN(count int64) (iter.Seq[float64], error) {
	return limited(count, r.NextDouble)
}

func forever[T any](next func() T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(next()) {
		}
	}
}

func limited[T any](count int64, next func() T) (iter.Seq[T], error) {
	if count < 0 {
		return nil, xerrors.Errorf("stream size %d out of range (0..%d): %w", count, int64(math.MaxInt64), ErrInvalidArgument)
	}
	remaining := count
	return func(yield func(T) bool) {
		for remaining > 0 {
			remaining--
			if !yield(next()) {
				return
			}
		}
	}, nil
}
