// Package logging builds the structured logger used by the CLI.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrInvalidLevel is returned for level names ParseLevel does not know.
var ErrInvalidLevel = errors.New("invalid log level")

// Levels lists the accepted level names.
var Levels = []string{"debug", "info", "warn", "error"}

// ParseLevel maps a level name to a slog.Level. Empty means info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: %q (want one of %s)", ErrInvalidLevel, level, strings.Join(Levels, ", "))
}

// BuildLogger creates a text logger writing to w at the given level.
// Unknown levels fall back to info.
func BuildLogger(level string, w io.Writer) *slog.Logger {
	l, _ := ParseLevel(level)
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})
	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
