// Package log builds the structured logger used by the command line runner.
// Solvers never log; only the process boundary does.
package log

import (
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/aoc2018/internal/config"
)

// New returns a logger writing to w in the given format ("text" or "json")
// at the given level name (DEBUG, INFO, WARN, ERROR; anything else is INFO).
func New(w io.Writer, format, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	switch format {
	case config.LogFormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// FromConfig is New with the format and level taken from cfg.
func FromConfig(w io.Writer, cfg config.Config) *slog.Logger {
	return New(w, cfg.LogFormat, cfg.LogLevel)
}

// ParseLevel maps a case-insensitive level name onto slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
