// Package log configures structured logging for oa using log/slog.
package log

import (
	"io"
	"log/slog"
)

// Setup installs the default slog logger, writing text records to w.
// Quiet keeps only warnings and errors, verbose enables debug records.
func Setup(w io.Writer, verbose, quiet bool) {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelWarn
	case verbose:
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
