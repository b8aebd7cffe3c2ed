package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/alnah/go-bqpost"
	"github.com/alnah/go-bqpost/internal/config"
	"github.com/alnah/go-bqpost/internal/fileutil"
)

// MaxWorkers caps the number of concurrent workers.
const MaxWorkers = 32

// Sentinel errors for input resolution and file discovery.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrTooManyInputs      = errors.New("only one input file or directory is accepted")
	ErrNoHTMLFiles        = errors.New("no HTML files found")
	ErrInvalidExtension   = errors.New("file must have .html or .htm extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// FileToProcess represents a single rendered document to post-process.
type FileToProcess struct {
	InputPath string
	OutputDir string // receives <Docname>.html and <Docname>.toc.html
	Docname   string
}

// OutputPath returns where the processed HTML is written.
func (f FileToProcess) OutputPath() string {
	return filepath.Join(f.OutputDir, f.Docname+".html")
}

// SidecarPath returns where the table of contents is written.
func (f FileToProcess) SidecarPath() string {
	return bqpost.SidecarPath(f.OutputDir, f.Docname)
}

// resolveInputPath picks the positional argument, falling back to the
// configured default directory.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("%w: got %d", ErrTooManyInputs, len(args))
	}
	if len(args) == 1 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// discoverFiles finds the HTML files to process under inputPath.
// Generated *.toc.html sidecars are skipped, and so is outputDir when it
// lies inside inputPath. Relative directories are kept under outputDir.
func discoverFiles(inputPath, outputDir string) ([]FileToProcess, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateHTMLExtension(inputPath); err != nil {
			return nil, err
		}
		return []FileToProcess{newFileToProcess(inputPath, outputDir, "")}, nil
	}

	skipDir := ""
	if outputDir != "" {
		if abs, err := filepath.Abs(outputDir); err == nil {
			skipDir = abs
		}
	}

	var files []FileToProcess
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != inputPath && skipDir != "" {
				if abs, err := filepath.Abs(path); err == nil && abs == skipDir {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if !isHTMLFile(path) || isSidecar(path) {
			return nil
		}
		files = append(files, newFileToProcess(path, outputDir, inputPath))
		return nil
	})

	return files, err
}

// newFileToProcess derives the docname and destination directory for a file.
func newFileToProcess(inputPath, outputDir, baseInputDir string) FileToProcess {
	f := FileToProcess{
		InputPath: inputPath,
		OutputDir: filepath.Dir(inputPath),
		Docname:   fileutil.BaseName(inputPath),
	}

	if outputDir == "" {
		return f
	}

	f.OutputDir = outputDir
	if baseInputDir != "" {
		if rel, err := filepath.Rel(baseInputDir, filepath.Dir(inputPath)); err == nil && rel != "." {
			f.OutputDir = filepath.Join(outputDir, rel)
		}
	}
	return f
}

func isHTMLFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

func isSidecar(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), bqpost.TOCFileSuffix)
}

// validateHTMLExtension checks that the file has an .html or .htm extension.
func validateHTMLExtension(path string) error {
	if !isHTMLFile(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}

// resolveWorkers determines the worker count.
// Priority: explicit flag > BQPOST_WORKERS > GOMAXPROCS.
func resolveWorkers(flagWorkers, envWorkers int) int {
	n := runtime.GOMAXPROCS(0)
	switch {
	case flagWorkers > 0:
		n = flagWorkers
	case envWorkers > 0:
		n = envWorkers
	}

	if n < 1 {
		return 1
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
