package main

import (
	"flag"

	"golang.org/x/xerrors"

	"github.com/Nebu1eto/javarandom/internal/config"
	"github.com/Nebu1eto/javarandom/internal/vectors"
)

func runVectors(args []string) error {
	fs := flag.NewFlagSet("vectors", flag.ExitOnError)
	var c common
	c.register(fs)
	seed := fs.Int64("seed", 0, "generator seed (default 1)")
	count := fs.Int("n", 0, "values per kind (default 10)")
	bound := fs.Int("bound", 0, "bound for the intn kind (default 20000)")
	kinds := fs.String("kinds", "", "glob over kind names: int,intn,long,boolean,float,double,gaussian,bytes")
	output := fs.String("o", "", `output path, "-" for stdout`)
	compression := fs.String("compress", "", "none, lz4 or snappy")
	fs.Parse(args)

	conf, log, err := c.load(fs, func(conf *config.Config, set map[string]bool) {
		v := &conf.Vectors
		if set["seed"] {
			v.Seed = *seed
		}
		if set["n"] {
			v.Count = *count
		}
		if set["bound"] {
			v.Bound = *bound
		}
		if set["kinds"] {
			v.Kinds = *kinds
		}
		if set["o"] {
			v.Output = *output
		}
		if set["compress"] {
			v.Compression = *compression
		}
	})
	if err != nil {
		return err
	}
	v := conf.Vectors

	selected, err := vectors.Select(v.Kinds)
	if err != nil {
		return err
	}

	w, err := vectors.Open(v.Output, v.Compression)
	if err != nil {
		return err
	}
	sum, err := vectors.Write(w, vectors.Options{
		Seed:  v.Seed,
		Count: v.Count,
		Bound: v.Bound,
		Kinds: selected,
	})
	if cerr := w.Close(); err == nil && cerr != nil {
		err = xerrors.Errorf("err: failure to close output (%s): %w", v.Output, cerr)
	}
	if err != nil {
		return err
	}

	log.Info().
		Int64("seed", v.Seed).
		Int("lines", sum.Lines).
		Str("blake3", sum.Digest).
		Str("output", v.Output).
		Msg("vectors written")
	return nil
}
