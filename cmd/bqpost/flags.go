package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-bqpost/internal/config"
)

// ErrInvalidAttribute is returned for --attr values that are not KEY=VALUE or KEY!.
var ErrInvalidAttribute = errors.New("invalid attribute")

// cliFlags holds all command-line flags.
type cliFlags struct {
	config      string
	output      string
	attrs       []string
	assetDirs   []string
	tocMode     string
	workers     int
	logLevel    string
	quiet       bool
	verbose     bool
	printConfig bool
	diff        bool
	version     bool
}

// newFlagSet builds the flag set bound to f.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("bqpost", flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "destination directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	// Document flags
	fs.StringArrayVarP(&f.attrs, "attr", "a", nil, "document attribute KEY=VALUE, or KEY! to unset (repeatable)")
	fs.StringArrayVar(&f.assetDirs, "asset-dir", nil, "asset search directory (repeatable)")
	fs.StringVar(&f.tocMode, "toc-mode", "", "table of contents mode: dom, marker")

	// Output control
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing and debug logs")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective configuration and exit")
	fs.BoolVar(&f.diff, "diff", false, "print a unified diff instead of writing files")
	fs.BoolVar(&f.version, "version", false, "show version information")

	return fs
}

// parseFlags parses args and returns the flags and positional arguments.
// Usage and parse errors go to stderr. Returns flag.ErrHelp for -h/--help.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := newFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// mergeFlags applies explicitly set flags on top of cfg (CLI wins).
// Flag asset dirs are searched before configured ones.
func mergeFlags(f *cliFlags, cfg *config.Config) error {
	if f.output != "" {
		cfg.Output.DestinationDir = f.output
	}
	if len(f.assetDirs) > 0 {
		cfg.Assets.Dirs = append(append([]string{}, f.assetDirs...), cfg.Assets.Dirs...)
	}
	if f.tocMode != "" {
		cfg.TOC.Mode = f.tocMode
	}

	switch {
	case f.logLevel != "":
		cfg.Log.Level = f.logLevel
	case f.verbose:
		cfg.Log.Level = "debug"
	case f.quiet:
		cfg.Log.Level = "error"
	}

	if cfg.Attributes == nil {
		cfg.Attributes = map[string]string{}
	}
	for _, raw := range f.attrs {
		if err := applyAttribute(cfg.Attributes, raw); err != nil {
			return err
		}
	}
	return nil
}

// applyAttribute applies one --attr value: "name=value" sets, "name" sets
// to empty, "name!" unsets.
func applyAttribute(attrs map[string]string, raw string) error {
	name, value, hasValue := strings.Cut(raw, "=")
	name = strings.TrimSpace(name)

	if !hasValue && strings.HasSuffix(name, "!") {
		name = strings.TrimSuffix(name, "!")
		if err := config.ValidateAttributeName(name); err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidAttribute, raw, err)
		}
		delete(attrs, name)
		return nil
	}

	if err := config.ValidateAttributeName(name); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidAttribute, raw, err)
	}
	attrs[name] = value
	return nil
}
