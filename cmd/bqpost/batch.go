package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/alnah/go-bqpost"
	"github.com/alnah/go-bqpost/internal/fileutil"
)

// dirPermissions is used for created destination directories.
const dirPermissions = 0o750

// Sentinel errors for batch operations.
var (
	ErrReadHTML    = errors.New("failed to read HTML file")
	ErrWriteHTML   = errors.New("failed to write HTML file")
	ErrCreateDir   = errors.New("failed to create destination directory")
	ErrBatchFailed = errors.New("post-processing failed")
)

// ProcessResult holds the outcome of a single file.
type ProcessResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
	Diff       string // set in dry-run mode only
}

// batchParams groups settings shared by every file of a batch.
type batchParams struct {
	attributes map[string]string
	assetDirs  []string // searched after the file's own directory
	dryRun     bool     // diff instead of writing
	now        func() time.Time
}

// clock returns the batch time source, time.Now when unset.
func (p *batchParams) clock() func() time.Time {
	if p.now != nil {
		return p.now
	}
	return time.Now
}

// processBatch processes files concurrently with at most workers goroutines.
// Results are returned in input order.
func processBatch(ctx context.Context, proc bqpost.Postprocessor, files []FileToProcess, workers int, params *batchParams) []ProcessResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(files))

	results := make([]ProcessResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ProcessResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = processFile(ctx, proc, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// processFile post-processes one file and writes the result.
func processFile(ctx context.Context, proc bqpost.Postprocessor, f FileToProcess, params *batchParams) ProcessResult {
	now := params.clock()
	start := now()
	result := ProcessResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath(),
	}
	fail := func(err error) ProcessResult {
		result.Err = err
		result.Duration = now().Sub(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrReadHTML, err))
	}

	if !params.dryRun {
		if err := os.MkdirAll(f.OutputDir, dirPermissions); err != nil {
			return fail(fmt.Errorf("%w: %w", ErrCreateDir, err))
		}
	}

	doc, err := bqpost.NewFileDocument(bqpost.DocumentConfig{
		DestinationDir: f.OutputDir,
		Name:           f.Docname,
		Attributes:     params.attributes,
		AssetDirs:      append([]string{filepath.Dir(f.InputPath)}, params.assetDirs...),
	})
	if err != nil {
		return fail(err)
	}

	out, err := proc.Process(ctx, doc, string(content))
	if err != nil {
		return fail(err)
	}

	if params.dryRun {
		result.Diff, err = unifiedDiff(f.InputPath, result.OutputPath, string(content), out)
		if err != nil {
			return fail(err)
		}
		result.Duration = now().Sub(start)
		return result
	}

	if err := fileutil.WriteFile(result.OutputPath, out); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrWriteHTML, err))
	}

	result.Duration = now().Sub(start)
	return result
}

// ResultSummary holds the count of succeeded and failed files.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed files.
func countResults(results []ProcessResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// firstError returns the first failure in input order, or nil.
func firstError(results []ProcessResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// printResults outputs per-file results and a summary for batches.
// In dry-run mode the diffs are printed instead. Returns the number of failures.
func printResults(results []ProcessResult, quiet, verbose, dryRun bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if dryRun {
			fmt.Fprint(env.Stdout, r.Diff)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && !dryRun && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
