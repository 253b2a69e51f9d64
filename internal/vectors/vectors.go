// Package vectors writes the output sequences of a seeded generator as
// text, one value per line, so they can be diffed against the output of
// java.util.Random or another port of it.
package vectors

import (
	"bufio"
	"encoding/hex"
	"io"
	"strconv"

	"github.com/gobwas/glob"
	"github.com/zeebo/blake3"
	"golang.org/x/xerrors"

	"github.com/Nebu1eto/javarandom"
)

// Kind names one generator method.
type Kind string

const (
	Int      Kind = "int"
	Intn     Kind = "intn"
	Long     Kind = "long"
	Boolean  Kind = "boolean"
	Float    Kind = "float"
	Double   Kind = "double"
	Gaussian Kind = "gaussian"
	Bytes    Kind = "bytes"
)

// Kinds lists every kind in output order.
var Kinds = []Kind{Int, Intn, Long, Boolean, Float, Double, Gaussian, Bytes}

// Select returns the kinds whose name matches pattern.
func Select(pattern string) ([]Kind, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, xerrors.Errorf("err: invalid kinds pattern %q: %w", pattern, err)
	}
	var kinds []Kind
	for _, k := range Kinds {
		if g.Match(string(k)) {
			kinds = append(kinds, k)
		}
	}
	if len(kinds) == 0 {
		return nil, xerrors.Errorf("err: no kind matches %q", pattern)
	}
	return kinds, nil
}

type Options struct {
	Seed  int64
	Count int
	Bound int // for Intn
	Kinds []Kind
}

// Summary describes what Write produced. Digest is the BLAKE3 hash of
// the uncompressed text.
type Summary struct {
	Lines  int
	Digest string
}

// Write emits opts.Count values of each kind as "kind\tindex\tvalue"
// lines. The generator is reseeded with opts.Seed before each kind.
func Write(w io.Writer, opts Options) (Summary, error) {
	if opts.Count < 0 {
		return Summary{}, xerrors.Errorf("err: count must not be negative (%d): %w", opts.Count, javarandom.ErrInvalidArgument)
	}

	h := blake3.New()
	bw := bufio.NewWriter(io.MultiWriter(w, h))
	r := javarandom.NewSeed(opts.Seed)

	var sum Summary
	var line []byte
	emit := func(k Kind, i int, value []byte) {
		line = append(line[:0], string(k)...)
		line = append(line, '\t')
		line = strconv.AppendInt(line, int64(i), 10)
		line = append(line, '\t')
		line = append(line, value...)
		line = append(line, '\n')
		bw.Write(line)
		sum.Lines++
	}

	var buf []byte
	for _, k := range opts.Kinds {
		r.SetSeed(opts.Seed)
		if k == Bytes {
			p := make([]byte, opts.Count)
			r.NextBytes(p)
			for i, b := range p {
				emit(k, i, strconv.AppendUint(buf[:0], uint64(b), 10))
			}
			continue
		}
		for i := 0; i < opts.Count; i++ {
			v, err := next(r, k, opts.Bound, buf[:0])
			if err != nil {
				return sum, err
			}
			buf = v
			emit(k, i, v)
		}
	}

	if err := bw.Flush(); err != nil {
		return sum, xerrors.Errorf("err: failure to write vectors: %w", err)
	}
	sum.Digest = hex.EncodeToString(h.Sum(nil))
	return sum, nil
}

func next(r *javarandom.Random, k Kind, bound int, dst []byte) ([]byte, error) {
	switch k {
	case Int:
		return strconv.AppendInt(dst, int64(r.NextInt()), 10), nil
	case Intn:
		v, err := r.NextIntn(bound)
		if err != nil {
			return nil, err
		}
		return strconv.AppendInt(dst, int64(v), 10), nil
	case Long:
		return strconv.AppendInt(dst, r.NextLong(), 10), nil
	case Boolean:
		return strconv.AppendBool(dst, r.NextBoolean()), nil
	case Float:
		return strconv.AppendFloat(dst, float64(r.NextFloat()), 'g', -1, 32), nil
	case Double:
		return strconv.AppendFloat(dst, r.NextDouble(), 'g', -1, 64), nil
	case Gaussian:
		return strconv.AppendFloat(dst, r.NextGaussian(), 'g', -1, 64), nil
	}
	return nil, xerrors.Errorf("err: unknown kind %q", k)
}
