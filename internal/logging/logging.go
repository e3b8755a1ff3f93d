// Package logging builds the structured logger used by the optics CLI.
package logging

import (
	"io"
	"log/slog"

	"github.com/authcorp/optics/internal/config"
)

// New creates a structured logger based on configuration. Output goes to w,
// which is stderr for the CLI so that documents on stdout stay clean.
func New(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}

	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel converts a configured level name to slog.Level.
// Unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
