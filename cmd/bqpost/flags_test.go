package main

// Notes:
// - parseFlags: we test repeatable flags, help and unknown flags. pflag
//   itself is not re-tested.
// - mergeFlags: we test that set flags win over config values and that
//   unset flags leave them alone.

import (
	"bytes"
	"errors"
	"testing"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-bqpost/internal/config"
)

// ---------------------------------------------------------------------------
// TestParseFlags
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	f, args, err := parseFlags([]string{
		"-a", "bq-header=front-matter",
		"--attr", "bq-footer=_footer.html",
		"--asset-dir", "one", "--asset-dir", "two",
		"-o", "site", "-w", "4", "--toc-mode", "marker",
		"docs/index.html",
	}, &stderr)
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if len(f.attrs) != 2 || f.attrs[1] != "bq-footer=_footer.html" {
		t.Errorf("attrs = %v", f.attrs)
	}
	if len(f.assetDirs) != 2 || f.assetDirs[0] != "one" {
		t.Errorf("assetDirs = %v", f.assetDirs)
	}
	if f.output != "site" || f.workers != 4 || f.tocMode != "marker" {
		t.Errorf("flags = %+v", f)
	}
	if len(args) != 1 || args[0] != "docs/index.html" {
		t.Errorf("args = %v", args)
	}
}

func TestParseFlags_AttrWithComma(t *testing.T) {
	t.Parallel()

	f, _, err := parseFlags([]string{"-a", "title=Install, Configure"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if len(f.attrs) != 1 || f.attrs[0] != "title=Install, Configure" {
		t.Errorf("attrs = %q, want the value kept whole", f.attrs)
	}
}

func TestParseFlags_Help(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	_, _, err := parseFlags([]string{"--help"}, &stderr)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("parseFlags(--help) error = %v, want ErrHelp", err)
	}
	if !bytes.Contains(stderr.Bytes(), []byte("Usage: bqpost")) {
		t.Errorf("usage not printed, got %q", stderr.String())
	}
}

func TestParseFlags_Unknown(t *testing.T) {
	t.Parallel()

	if _, _, err := parseFlags([]string{"--nope"}, &bytes.Buffer{}); err == nil {
		t.Error("parseFlags(--nope) error = nil")
	}
}

// ---------------------------------------------------------------------------
// TestMergeFlags
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	base := func() *config.Config {
		cfg := config.DefaultConfig()
		cfg.Output.DestinationDir = "from-config"
		cfg.Assets.Dirs = []string{"config-assets"}
		cfg.Attributes["bq-footer"] = "_config_footer.html"
		cfg.Attributes["drop-me"] = "x"
		return cfg
	}

	t.Run("unset flags keep config", func(t *testing.T) {
		t.Parallel()

		cfg := base()
		if err := mergeFlags(&cliFlags{}, cfg); err != nil {
			t.Fatalf("mergeFlags() error = %v", err)
		}
		if cfg.Output.DestinationDir != "from-config" || cfg.TOC.Mode != "dom" || cfg.Log.Level != "info" {
			t.Errorf("config changed: %+v", cfg)
		}
	})

	t.Run("set flags win", func(t *testing.T) {
		t.Parallel()

		cfg := base()
		f := &cliFlags{
			output:    "from-flag",
			assetDirs: []string{"flag-assets"},
			tocMode:   "marker",
			logLevel:  "warn",
			attrs:     []string{"bq-footer=_flag_footer.html", "bq-header=front-matter", "drop-me!"},
		}
		if err := mergeFlags(f, cfg); err != nil {
			t.Fatalf("mergeFlags() error = %v", err)
		}

		if cfg.Output.DestinationDir != "from-flag" {
			t.Errorf("DestinationDir = %q", cfg.Output.DestinationDir)
		}
		if len(cfg.Assets.Dirs) != 2 || cfg.Assets.Dirs[0] != "flag-assets" || cfg.Assets.Dirs[1] != "config-assets" {
			t.Errorf("Assets.Dirs = %v, want flag dirs first", cfg.Assets.Dirs)
		}
		if cfg.TOC.Mode != "marker" || cfg.Log.Level != "warn" {
			t.Errorf("TOC.Mode = %q, Log.Level = %q", cfg.TOC.Mode, cfg.Log.Level)
		}
		if cfg.Attributes["bq-footer"] != "_flag_footer.html" || cfg.Attributes["bq-header"] != "front-matter" {
			t.Errorf("Attributes = %v", cfg.Attributes)
		}
		if _, ok := cfg.Attributes["drop-me"]; ok {
			t.Error("drop-me! did not unset the attribute")
		}
	})

	t.Run("verbose and quiet pick a level", func(t *testing.T) {
		t.Parallel()

		cfg := base()
		_ = mergeFlags(&cliFlags{verbose: true}, cfg)
		if cfg.Log.Level != "debug" {
			t.Errorf("verbose Log.Level = %q, want debug", cfg.Log.Level)
		}

		cfg = base()
		_ = mergeFlags(&cliFlags{quiet: true}, cfg)
		if cfg.Log.Level != "error" {
			t.Errorf("quiet Log.Level = %q, want error", cfg.Log.Level)
		}

		cfg = base()
		_ = mergeFlags(&cliFlags{verbose: true, logLevel: "warn"}, cfg)
		if cfg.Log.Level != "warn" {
			t.Errorf("explicit Log.Level = %q, want warn", cfg.Log.Level)
		}
	})
}

func TestApplyAttribute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		wantKey string
		wantVal string
		wantSet bool
		wantErr bool
	}{
		{"bq-header=front-matter", "bq-header", "front-matter", true, false},
		{"bq-footer=a=b.html", "bq-footer", "a=b.html", true, false},
		{"flag", "flag", "", true, false},
		{" spaced =value", "spaced", "value", true, false},
		{"existing!", "existing", "", false, false},
		{"=value", "", "", false, true},
		{"bad name=x", "", "", false, true},
		{"!", "", "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			attrs := map[string]string{"existing": "1"}
			err := applyAttribute(attrs, tt.raw)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAttribute) {
					t.Errorf("applyAttribute(%q) error = %v, want ErrInvalidAttribute", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("applyAttribute(%q) error = %v", tt.raw, err)
			}

			got, ok := attrs[tt.wantKey]
			if ok != tt.wantSet || got != tt.wantVal {
				t.Errorf("attrs[%q] = %q, %v; want %q, %v", tt.wantKey, got, ok, tt.wantVal, tt.wantSet)
			}
		})
	}
}
