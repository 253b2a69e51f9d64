package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jrand.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"

[vectors]
seed = 500
kinds = "int*"
compression = "lz4"

[descramble]
parallelism = 8
`)
	conf, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if conf.LogLevel != "debug" || conf.Vectors.Seed != 500 || conf.Vectors.Kinds != "int*" {
		t.Fatalf("unexpected config: %+v", conf)
	}
	if conf.Vectors.Compression != "lz4" || conf.Descramble.Parallelism != 8 {
		t.Fatalf("unexpected config: %+v", conf)
	}
	// untouched keys keep defaults
	if conf.Vectors.Count != 10 || conf.Vectors.Bound != 20000 || conf.Descramble.Quality != 95 {
		t.Fatalf("defaults lost: %+v", conf)
	}
}

func TestLoadRejects(t *testing.T) {
	for name, body := range map[string]string{
		"unknown key": "verbose = true\n",
		"bad level":   "log_level = \"loud\"\n",
		"bad codec":   "[vectors]\ncompression = \"zip\"\n",
		"bad quality": "[descramble]\nquality = 0\n",
		"syntax":      "log_level = \n",
	} {
		if _, err := Load(writeConfig(t, body)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file: expected error")
	}
}
