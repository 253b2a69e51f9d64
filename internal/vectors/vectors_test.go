package vectors

import (
	"bytes"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"
	"github.com/zeebo/blake3"

	"github.com/Nebu1eto/javarandom"
)

func TestSelect(t *testing.T) {
	for pattern, want := range map[string][]Kind{
		"*":              Kinds,
		"int*":           {Int, Intn},
		"{double,float}": {Float, Double},
		"gaussian":       {Gaussian},
		"[bl]*":          {Long, Boolean, Bytes},
	} {
		got, err := Select(pattern)
		if err != nil {
			t.Fatalf("Select(%q): %v", pattern, err)
		}
		if !slices.Equal(got, want) {
			t.Errorf("Select(%q) = %v, want %v", pattern, got, want)
		}
	}
	if _, err := Select("short"); err == nil {
		t.Error("expected error when nothing matches")
	}
}

func TestWriteInts(t *testing.T) {
	var buf bytes.Buffer
	sum, err := Write(&buf, Options{Seed: 1, Count: 3, Kinds: []Kind{Int}})
	if err != nil {
		t.Fatal(err)
	}
	want := "int\t0\t-1155869325\nint\t1\t431529176\nint\t2\t1761283695\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
	if sum.Lines != 3 {
		t.Fatalf("lines = %d", sum.Lines)
	}
	digest := blake3.Sum256([]byte(want))
	if sum.Digest != hex.EncodeToString(digest[:]) {
		t.Fatalf("digest = %s", sum.Digest)
	}
}

func TestWriteReseedsPerKind(t *testing.T) {
	var buf bytes.Buffer
	_, err := Write(&buf, Options{Seed: 500, Count: 2, Bound: 20000, Kinds: []Kind{Intn, Double, Intn}})
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0] != "intn\t0\t13695" || lines[1] != "intn\t1\t11394" {
		t.Fatalf("intn lines = %q", lines[:2])
	}
	if lines[4] != lines[0] || lines[5] != lines[1] {
		t.Fatal("second intn run was not reseeded")
	}
}

func TestWriteFormats(t *testing.T) {
	var buf bytes.Buffer
	_, err := Write(&buf, Options{Seed: 50, Count: 1, Kinds: []Kind{Double, Boolean, Bytes}})
	if err != nil {
		t.Fatal(err)
	}
	want := "double\t0\t0.7297136425657874\n"
	if !strings.HasPrefix(buf.String(), want) {
		t.Fatalf("output = %q", buf.String())
	}

	r := javarandom.NewSeed(42)
	p := make([]byte, 1)
	r.NextBytes(p)
	buf.Reset()
	if _, err := Write(&buf, Options{Seed: 42, Count: 1, Kinds: []Kind{Bytes}}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "bytes\t0\t53\n" || p[0] != 53 {
		t.Fatalf("bytes output = %q", buf.String())
	}
}

func TestWriteInvalid(t *testing.T) {
	if _, err := Write(io.Discard, Options{Count: -1, Kinds: Kinds}); !errors.Is(err, javarandom.ErrInvalidArgument) {
		t.Errorf("negative count error = %v", err)
	}
	if _, err := Write(io.Discard, Options{Count: 1, Bound: 0, Kinds: []Kind{Intn}}); !errors.Is(err, javarandom.ErrInvalidArgument) {
		t.Errorf("zero bound error = %v", err)
	}
}

func compressed(t *testing.T, compression string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := Wrap(&buf, compression)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Write(w, Options{Seed: 1, Count: 100, Bound: 7, Kinds: Kinds}); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestCompression(t *testing.T) {
	plain := compressed(t, "none")

	got, err := io.ReadAll(lz4.NewReader(bytes.NewReader(compressed(t, "lz4"))))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, plain) {
		t.Fatal("lz4 output does not decompress to the plain output")
	}

	got, err = io.ReadAll(snappy.NewReader(bytes.NewReader(compressed(t, "snappy"))))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, plain) {
		t.Fatal("snappy output does not decompress to the plain output")
	}

	if _, err := Wrap(io.Discard, "zip"); err == nil {
		t.Fatal("expected error for unknown compression")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.txt.lz4")
	w, err := Open(path, "lz4")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Write(w, Options{Seed: 1, Count: 1, Kinds: []Kind{Int}}); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := io.ReadAll(lz4.NewReader(f))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "int\t0\t-1155869325\n" {
		t.Fatalf("file holds %q", got)
	}
}
