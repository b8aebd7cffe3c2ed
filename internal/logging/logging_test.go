package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr error
	}{
		{"", slog.LevelInfo, nil},
		{"debug", slog.LevelDebug, nil},
		{"INFO", slog.LevelInfo, nil},
		{" warn ", slog.LevelWarn, nil},
		{"warning", slog.LevelWarn, nil},
		{"error", slog.LevelError, nil},
		{"verbose", slog.LevelInfo, ErrInvalidLevel},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("ParseLevel(%q) error = %v, want %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBuildLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := BuildLogger("warn", &buf)

	logger.Info("hidden")
	logger.Warn("shown", "path", "out/index.toc.html")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "path=out/index.toc.html") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	// Must not panic and must report every level disabled.
	logger := Discard()
	logger.Error("dropped")
	if logger.Enabled(t.Context(), slog.LevelError) {
		t.Error("Discard() logger reports error level enabled")
	}
}
