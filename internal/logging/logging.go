package logging

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger returns the structured logger used for operational events.
// The user-facing report goes to stdout separately; the logger writes
// JSON to stderr. verbose == true lowers the level to Debug.
func NewLogger(verbose bool) *slog.Logger {
	return New(os.Stderr, verbose)
}

// New builds a logger on an explicit writer, for tests.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := new(slog.LevelVar)
	if verbose {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}
