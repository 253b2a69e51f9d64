package vectors

import (
	"io"
	"os"

	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"
	"golang.org/x/xerrors"
)

type output struct {
	io.Writer
	closers []io.Closer
}

func (o *output) Close() error {
	var first error
	for _, c := range o.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Wrap applies compression ("none", "lz4" or "snappy") to w. Closing the
// result flushes the compressor but leaves w open.
func Wrap(w io.Writer, compression string) (io.WriteCloser, error) {
	switch compression {
	case "", "none":
		return &output{Writer: w}, nil
	case "lz4":
		zw := lz4.NewWriter(w)
		return &output{Writer: zw, closers: []io.Closer{zw}}, nil
	case "snappy":
		zw := snappy.NewBufferedWriter(w)
		return &output{Writer: zw, closers: []io.Closer{zw}}, nil
	}
	return nil, xerrors.Errorf("err: unknown compression %q", compression)
}

// Open creates path ("-" for stdout) and wraps it with compression.
// Closing the result also closes the file.
func Open(path, compression string) (io.WriteCloser, error) {
	if path == "-" || path == "" {
		return Wrap(os.Stdout, compression)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, xerrors.Errorf("err: failure to create output (%s): %w", path, err)
	}
	out, err := Wrap(f, compression)
	if err != nil {
		f.Close()
		return nil, err
	}
	o := out.(*output)
	o.closers = append(o.closers, f)
	return o, nil
}
