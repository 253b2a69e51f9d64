// Package logging builds the console logger used by the jrand command.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"
)

// ParseLevel maps a configured level name to a zerolog level.
func ParseLevel(name string) (zerolog.Level, error) {
	switch name {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info", "notice":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "silent", "quiet":
		return zerolog.Disabled, nil
	}
	return zerolog.NoLevel, xerrors.Errorf("err: invalid log level %q", name)
}

// New returns a console logger writing to w. Colour is used only when w
// is a terminal.
func New(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	noColor := true
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		noColor = false
		w = colorable.NewColorable(f)
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
