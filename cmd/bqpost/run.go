package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-bqpost"
	"github.com/alnah/go-bqpost/internal/config"
	"github.com/alnah/go-bqpost/internal/fileutil"
	"github.com/alnah/go-bqpost/internal/logging"
)

// runMain parses args, runs the batch and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "bqpost %s\n", Version)
		return ExitSuccess
	}

	if env.SetMaxProcs != nil {
		env.SetMaxProcs(flags.verbose, env.Stderr)
	}

	if err := run(ctx, positional, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, flags.config))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run resolves configuration, discovers files and processes them.
func run(ctx context.Context, positional []string, flags *cliFlags, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	warnUnknownEnvVars(env.Stderr, env.Environ())
	envCfg := loadEnvConfig(env.Getenv)

	// Load configuration: --config beats BQPOST_CONFIG
	configName := flags.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	cfg := config.DefaultConfig()
	if configName != "" {
		var err error
		cfg, err = config.LoadConfig(configName)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Overlay env, then flags (CLI wins)
	applyEnvConfig(envCfg, cfg)
	if err := mergeFlags(flags, cfg); err != nil {
		return err
	}

	tocMode, err := bqpost.ParseTOCMode(cfg.TOC.Mode)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if flags.printConfig {
		out, err := cfg.Dump()
		if err != nil {
			return fmt.Errorf("printing config: %w", err)
		}
		fmt.Fprint(env.Stdout, out)
		return nil
	}

	logger := logging.BuildLogger(cfg.Log.Level, env.Stderr)

	for _, dir := range cfg.Assets.Dirs {
		if !fileutil.DirExists(dir) {
			return fmt.Errorf("%w: %s is not a directory", bqpost.ErrInvalidAssetPath, dir)
		}
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath, cfg.Output.DestinationDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoHTMLFiles, inputPath)
	}

	// An explicit docname only makes sense for a single file
	if name := cfg.Attributes[bqpost.DocnameAttribute]; name != "" {
		if fileutil.DirExists(inputPath) {
			logger.Warn("ignoring docname attribute for directory input", "docname", name)
		} else {
			files[0].Docname = name
		}
	}

	workers := resolveWorkers(flags.workers, envCfg.Workers)
	logger.Debug("processing",
		slog.Int("files", len(files)),
		slog.Int("workers", workers),
		slog.String("toc_mode", string(tocMode)))

	opts := []bqpost.Option{
		bqpost.WithLogger(logger),
		bqpost.WithTOCMode(tocMode),
	}
	if flags.diff {
		opts = append(opts, bqpost.WithSidecarWriter(func(path, _ string) error {
			logger.Debug("dry run: skipping table of contents", slog.String("path", path))
			return nil
		}))
	}
	proc := bqpost.NewProcessor(opts...)

	results := processBatch(ctx, proc, files, workers, &batchParams{
		attributes: cfg.Attributes,
		assetDirs:  cfg.Assets.Dirs,
		dryRun:     flags.diff,
		now:        env.Now,
	})

	if failed := printResults(results, flags.quiet, flags.verbose, flags.diff, env); failed > 0 {
		return fmt.Errorf("%w: %d of %d files: %w", ErrBatchFailed, failed, len(results), firstError(results))
	}
	return nil
}
