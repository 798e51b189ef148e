// Package report collects diagnostics across files, remaps them into
// Markdown file coordinates, and produces the final sorted run result.
package report

import (
	"sort"

	"github.com/fencelint/fencelint/pkg/config"
	"github.com/fencelint/fencelint/pkg/extract"
	"github.com/fencelint/fencelint/pkg/linter"
)

// Entry is one diagnostic remapped to absolute file coordinates.
type Entry struct {
	File     string
	Line     int
	Severity config.Severity
	Message  string
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesScanned int
	BlocksFound  int
	BlocksLinted int
	BySeverity   map[config.Severity]int
}

// RunResult is the finalized outcome of one run.
type RunResult struct {
	Entries   []Entry
	Stats     Stats
	HadErrors bool
}

// Aggregator accumulates entries during a run. It is append-only; sorting
// is deferred to Finalize so the report is stable regardless of the order
// diagnostics arrive in.
type Aggregator struct {
	entries   []Entry
	stats     Stats
	finalized *RunResult
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		stats: Stats{BySeverity: make(map[config.Severity]int)},
	}
}

// FileScanned counts one scanned Markdown file.
func (a *Aggregator) FileScanned() {
	a.stats.FilesScanned++
}

// BlockFound counts one extracted block matching the requested language.
func (a *Aggregator) BlockFound() {
	a.stats.BlocksFound++
}

// Record remaps each block-local diagnostic into file coordinates and
// appends it: absolute = block.StartLine + local - 1.
func (a *Aggregator) Record(file string, block *extract.Block, diags []linter.Diagnostic) {
	a.stats.BlocksLinted++

	for _, d := range diags {
		local := d.Line
		if local < 1 {
			local = 1
		}
		a.append(Entry{
			File:     file,
			Line:     block.StartLine + local - 1,
			Severity: d.Severity,
			Message:  d.Message,
		})
	}
}

// RecordFileDiagnostic appends an entry that is not tied to a lint tool,
// such as an unterminated fence warning or a file read failure.
func (a *Aggregator) RecordFileDiagnostic(file string, line int, severity config.Severity, message string) {
	a.append(Entry{File: file, Line: line, Severity: severity, Message: message})
}

func (a *Aggregator) append(e Entry) {
	a.entries = append(a.entries, e)
	a.stats.BySeverity[e.Severity]++
}

// Finalize sorts the collected entries by file, line, then message and
// returns the run result. It is idempotent: repeated calls return the same
// result, and recording after Finalize has no effect on it.
func (a *Aggregator) Finalize() *RunResult {
	if a.finalized != nil {
		return a.finalized
	}

	entries := make([]Entry, len(a.entries))
	copy(entries, a.entries)

	stats := a.stats
	stats.BySeverity = make(map[config.Severity]int, len(a.stats.BySeverity))
	for severity, count := range a.stats.BySeverity {
		stats.BySeverity[severity] = count
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].File != entries[j].File {
			return entries[i].File < entries[j].File
		}
		if entries[i].Line != entries[j].Line {
			return entries[i].Line < entries[j].Line
		}
		return entries[i].Message < entries[j].Message
	})

	a.finalized = &RunResult{
		Entries:   entries,
		Stats:     stats,
		HadErrors: stats.BySeverity[config.SeverityError] > 0,
	}

	return a.finalized
}
