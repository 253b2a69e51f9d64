// Package config holds the jrand command configuration. Values come from
// Default, are overlaid by an optional TOML file, then by command flags.
package config

import (
	"github.com/BurntSushi/toml"
	"golang.org/x/xerrors"
)

// Config is the configuration for the jrand command.
type Config struct {
	// LogLevel is one of debug, info, warn, error, silent. Default "info"
	LogLevel string `toml:"log_level"`

	Vectors    Vectors    `toml:"vectors"`
	Descramble Descramble `toml:"descramble"`
}

// Vectors controls reference-vector output.
type Vectors struct {
	Seed        int64  `toml:"seed"`        // default 1
	Count       int    `toml:"count"`       // default 10
	Bound       int    `toml:"bound"`       // bound for the intn kind, default 20000
	Kinds       string `toml:"kinds"`       // glob over kind names, default "*"
	Output      string `toml:"output"`      // default "-" (stdout)
	Compression string `toml:"compression"` // none, lz4 or snappy. Default "none"
}

// Descramble controls page download and tile reassembly.
type Descramble struct {
	Parallelism int    `toml:"parallelism"` // default 4
	OutputDir   string `toml:"output_dir"`  // default "."
	Quality     int    `toml:"quality"`     // JPEG quality, default 95
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Vectors: Vectors{
			Seed:        1,
			Count:       10,
			Bound:       20000,
			Kinds:       "*",
			Output:      "-",
			Compression: "none",
		},
		Descramble: Descramble{
			Parallelism: 4,
			OutputDir:   ".",
			Quality:     95,
		},
	}
}

// Load returns Default overlaid with the TOML file at path. Keys absent
// from the file keep their defaults.
func Load(path string) (Config, error) {
	conf := Default()
	md, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return Config{}, xerrors.Errorf("err: failure to read config (%s): %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, xerrors.Errorf("err: unknown config key %q in %s", undecoded[0].String(), path)
	}
	return conf, conf.Validate()
}

func (conf Config) Validate() error {
	switch conf.LogLevel {
	case "debug", "info", "warn", "error", "silent":
	default:
		return xerrors.Errorf("err: invalid log level %q", conf.LogLevel)
	}
	switch conf.Vectors.Compression {
	case "none", "lz4", "snappy":
	default:
		return xerrors.Errorf("err: invalid compression %q", conf.Vectors.Compression)
	}
	if conf.Vectors.Count < 0 {
		return xerrors.Errorf("err: count must not be negative (%d)", conf.Vectors.Count)
	}
	if conf.Descramble.Parallelism < 1 {
		return xerrors.Errorf("err: parallelism must be positive (%d)", conf.Descramble.Parallelism)
	}
	if conf.Descramble.Quality < 1 || conf.Descramble.Quality > 100 {
		return xerrors.Errorf("err: quality must be within 1..100 (%d)", conf.Descramble.Quality)
	}
	return nil
}
