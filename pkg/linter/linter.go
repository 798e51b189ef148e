// Package linter defines the adapter interface for external lint tools and
// the registry that maps language identifiers to adapters.
package linter

import (
	"context"

	"github.com/fencelint/fencelint/pkg/config"
)

// Diagnostic is a single issue reported by an external linter against one
// code block's content. Line numbers are 1-based and local to the block;
// the aggregator remaps them into file coordinates.
type Diagnostic struct {
	Line     int
	Column   int
	Message  string
	Severity config.Severity
}

// Linter adapts one external lint tool to a common contract.
//
// Lint materializes the block content as an isolated temporary file, runs
// the tool against it, and parses the output. It never fails: tool-level
// problems (missing binary, crash, timeout, unparsable output) surface as
// synthetic error-severity diagnostics so a broken tool fails the block,
// not the run. Implementations must honor ctx cancellation and deadlines
// and clean up temporary files on every exit path.
type Linter interface {
	// Language is the canonical language identifier this adapter serves.
	Language() string

	// Tool is the name of the external binary invoked.
	Tool() string

	// Lint checks one block's content against the tool, using the given
	// tool configuration file. An empty configPath means tool defaults.
	Lint(ctx context.Context, lines []string, configPath string) []Diagnostic
}
