// Package log provides logger construction helpers built on the standard
// slog package, giving the application consistent log levels and
// formatting in one place.
//
// Log output always goes to a separate stream from the report itself so
// that piping the report to a file or another tool never mixes in
// diagnostics.
package log

import (
	"io"
	"log/slog"
)

// NewLogger creates a new slog.Logger with text output.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
//
// Returns a *slog.Logger that can be used with slog.SetDefault() or
// passed to components that accept *slog.Logger.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, handlerOptions(verbose)))
}

// NewJSONLogger creates a new slog.Logger that outputs JSON format.
// Useful for structured log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, handlerOptions(verbose)))
}

// handlerOptions returns the slog handler options for the given verbosity.
func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return &slog.HandlerOptions{
		Level: level,
	}
}
