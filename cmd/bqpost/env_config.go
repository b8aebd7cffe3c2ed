package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alnah/go-bqpost/internal/config"
)

const envPrefix = "BQPOST_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string   // BQPOST_CONFIG: config file name or path
	OutputDir  string   // BQPOST_OUTPUT_DIR: destination directory
	AssetDirs  []string // BQPOST_ASSET_DIR: asset directories, list-separator joined
	TOCMode    string   // BQPOST_TOC_MODE: dom or marker
	LogLevel   string   // BQPOST_LOG_LEVEL: debug, info, warn, error
	Workers    int      // BQPOST_WORKERS: parallel workers
}

// knownEnvVars lists valid BQPOST_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"BQPOST_CONFIG":     true,
	"BQPOST_OUTPUT_DIR": true,
	"BQPOST_ASSET_DIR":  true,
	"BQPOST_TOC_MODE":   true,
	"BQPOST_LOG_LEVEL":  true,
	"BQPOST_WORKERS":    true,
}

// loadEnvConfig reads the recognized BQPOST_* variables through getenv.
// An unparsable or non-positive BQPOST_WORKERS is ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("BQPOST_CONFIG"),
		OutputDir:  getenv("BQPOST_OUTPUT_DIR"),
		TOCMode:    getenv("BQPOST_TOC_MODE"),
		LogLevel:   getenv("BQPOST_LOG_LEVEL"),
	}

	for _, dir := range filepath.SplitList(getenv("BQPOST_ASSET_DIR")) {
		if dir != "" {
			cfg.AssetDirs = append(cfg.AssetDirs, dir)
		}
	}

	if workers := getenv("BQPOST_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for each unrecognized BQPOST_* variable.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overlays set environment values on cfg.
// Env asset dirs are searched before config file dirs.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" {
		cfg.Output.DestinationDir = env.OutputDir
	}
	if len(env.AssetDirs) > 0 {
		cfg.Assets.Dirs = append(append([]string{}, env.AssetDirs...), cfg.Assets.Dirs...)
	}
	if env.TOCMode != "" {
		cfg.TOC.Mode = env.TOCMode
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
}
