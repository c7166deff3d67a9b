package adapter

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

const diffContextLines = 3

// DiffAdapter renders the difference between two versions of a file.
type DiffAdapter interface {
	// Unified returns a unified diff from before to after, or "" when equal.
	Unified(fromFile, toFile, before, after string) (string, error)
}

// LocalDiffAdapter renders diffs with go-difflib.
type LocalDiffAdapter struct {
	context int
}

// NewLocalDiffAdapter constructs a LocalDiffAdapter with three context lines.
func NewLocalDiffAdapter() *LocalDiffAdapter {
	return &LocalDiffAdapter{context: diffContextLines}
}

// Unified implements DiffAdapter.
func (a *LocalDiffAdapter) Unified(fromFile, toFile, before, after string) (string, error) {
	if before == after {
		return "", nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: fromFile,
		ToFile:   toFile,
		Context:  a.context,
	})
	if err != nil {
		return "", fmt.Errorf("render diff: %w", err)
	}

	return diff, nil
}
