package logger

import (
	"io"
	"log/slog"
	"os"

	"menagerie/internal/platform/config"
)

// New returns a structured logger on stderr. Stdout is reserved for command
// output.
func New(cfg config.Config) *slog.Logger {
	return NewWithWriter(os.Stderr, cfg.LogLevel, cfg.LogFormat)
}

// NewWithWriter builds a logger on w. Unknown levels fall back to info and
// unknown formats to text.
func NewWithWriter(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
