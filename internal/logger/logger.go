// Package logger wraps zerolog with the console setup used by the converter.
package logger

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

type Logger struct {
	zerolog.Logger
}

// New returns a human-readable logger writing to w at the given level
// (debug, info, warn, error). An empty level means warn.
func New(w io.Writer, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}
	l := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return &Logger{l}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return zerolog.WarnLevel, nil
	}
	return zerolog.ParseLevel(level)
}
