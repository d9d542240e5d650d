package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds the service logger. Development gets a human-readable console
// writer; every other environment logs JSON lines.
func New(level, environment string, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}
	if environment == "development" {
		out = zerolog.ConsoleWriter{Out: out}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "lingo-backend").
		Logger()
}
