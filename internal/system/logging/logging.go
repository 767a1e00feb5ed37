// Released under an MIT license. See LICENSE.

// Package logging configures the structured logger used for diagnostics.
// Values and the banner are written to stdout directly, not logged.
package logging

import (
	"io"
	"log/slog"
)

// New creates a text logger writing to w. Debug messages are only
// written when debug is true.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelError
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}
