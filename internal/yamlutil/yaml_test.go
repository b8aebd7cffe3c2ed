package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-bqpost/internal/yamlutil"
)

type sample struct {
	Mode  string            `yaml:"mode"`
	Dirs  []string          `yaml:"dirs"`
	Attrs map[string]string `yaml:"attrs"`
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dst     any
		wantErr error
	}{
		{"empty input", nil, &sample{}, yamlutil.ErrEmptyInput},
		{"nil destination", []byte("mode: dom"), nil, yamlutil.ErrNilDestination},
		{"unknown keys tolerated", []byte("mode: dom\nother: 1"), &sample{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Decode(tt.data, tt.dst)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecode_Values(t *testing.T) {
	t.Parallel()

	var s sample
	data := []byte("mode: marker\ndirs: [a, b]\nattrs:\n  bq-header: front-matter\n")
	if err := yamlutil.Decode(data, &s); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if s.Mode != "marker" {
		t.Errorf("Mode = %q, want %q", s.Mode, "marker")
	}
	if len(s.Dirs) != 2 || s.Dirs[1] != "b" {
		t.Errorf("Dirs = %v, want [a b]", s.Dirs)
	}
	if s.Attrs["bq-header"] != "front-matter" {
		t.Errorf("Attrs[bq-header] = %q, want %q", s.Attrs["bq-header"], "front-matter")
	}
}

func TestDecodeStrict(t *testing.T) {
	t.Parallel()

	t.Run("rejects unknown key", func(t *testing.T) {
		t.Parallel()

		err := yamlutil.DecodeStrict([]byte("mode: dom\nmdoe: marker"), &sample{})
		if err == nil {
			t.Fatal("DecodeStrict() expected error for unknown key")
		}
		if !strings.HasPrefix(err.Error(), "yamlutil:") {
			t.Errorf("error = %q, want yamlutil prefix", err)
		}
	})

	t.Run("rejects oversized input", func(t *testing.T) {
		t.Parallel()

		data := []byte("mode: " + strings.Repeat("x", yamlutil.MaxInputSize))
		err := yamlutil.DecodeStrict(data, &sample{})
		if !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("DecodeStrict() error = %v, want ErrInputTooLarge", err)
		}
	})
}

func TestEncode(t *testing.T) {
	t.Parallel()

	out, err := yamlutil.Encode(sample{Mode: "dom", Dirs: []string{"assets"}})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var back sample
	if err := yamlutil.DecodeStrict(out, &back); err != nil {
		t.Fatalf("DecodeStrict(Encode()) error = %v", err)
	}
	if back.Mode != "dom" || len(back.Dirs) != 1 {
		t.Errorf("round trip = %+v", back)
	}
}
