package main

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// diffContextLines is the number of unchanged lines around each hunk.
const diffContextLines = 3

// unifiedDiff renders the change from before to after as a unified diff.
// Returns "" when the contents are equal.
func unifiedDiff(fromName, toName, before, after string) (string, error) {
	if before == after {
		return "", nil
	}
	out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: fromName,
		ToFile:   toName,
		Context:  diffContextLines,
	})
	if err != nil {
		return "", fmt.Errorf("rendering diff: %w", err)
	}
	return out, nil
}
