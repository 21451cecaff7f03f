// Package logger builds the application logger. Standard output
// belongs to the interactive protocol and the bill, so logs go to a
// separate writer (stderr in production).
package logger

import (
	"io"
	"log/slog"
	"strings"
)

// New returns a leveled slog.Logger writing text records to w.
func New(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level

	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
	}))
}
