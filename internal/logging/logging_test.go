package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]zerolog.Level{
		"debug":  zerolog.DebugLevel,
		"info":   zerolog.InfoLevel,
		"warn":   zerolog.WarnLevel,
		"error":  zerolog.ErrorLevel,
		"silent": zerolog.Disabled,
	} {
		got, err := ParseLevel(name)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNewFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("warn", &buf)
	if err != nil {
		t.Fatal(err)
	}
	log.Info().Msg("hidden")
	log.Warn().Int64("seed", 500).Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "seed=500") {
		t.Fatalf("missing warn line: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("colour codes written to a non-terminal: %q", out)
	}
}
