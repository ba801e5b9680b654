// Package logging configures the zerolog logger shared by the CLI commands.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds a console-friendly zerolog.Logger writing to w, at the given
// level (e.g. zerolog.InfoLevel, zerolog.DebugLevel).
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Default returns the standard CLI logger, writing to stderr at info level.
func Default() zerolog.Logger {
	return New(os.Stderr, zerolog.InfoLevel)
}
