package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fencelint/fencelint/pkg/config"
	"github.com/fencelint/fencelint/pkg/extract"
	"github.com/fencelint/fencelint/pkg/linter"
	"github.com/fencelint/fencelint/pkg/report"
)

func TestAggregator_Remap(t *testing.T) {
	t.Parallel()

	agg := report.NewAggregator()
	block := &extract.Block{StartLine: 10, Lines: []string{"a", "b", "c"}}

	agg.Record("doc.md", block, []linter.Diagnostic{
		{Line: 1, Message: "first", Severity: config.SeverityError},
		{Line: 3, Message: "third", Severity: config.SeverityWarning},
	})

	result := agg.Finalize()
	require.Len(t, result.Entries, 2)

	assert.Equal(t, 10, result.Entries[0].Line)
	assert.Equal(t, 12, result.Entries[1].Line)
	assert.True(t, result.HadErrors)
}

func TestAggregator_ClampsLocalLine(t *testing.T) {
	t.Parallel()

	agg := report.NewAggregator()
	block := &extract.Block{StartLine: 5}

	agg.Record("doc.md", block, []linter.Diagnostic{
		{Line: 0, Message: "anchored", Severity: config.SeverityWarning},
	})

	result := agg.Finalize()
	require.Len(t, result.Entries, 1)
	assert.Equal(t, 5, result.Entries[0].Line)
}

func TestAggregator_SortIndependentOfArrival(t *testing.T) {
	t.Parallel()

	build := func(reversed bool) *report.RunResult {
		agg := report.NewAggregator()
		records := []struct {
			file string
			line int
		}{
			{"a.md", 3},
			{"a.md", 12},
			{"b.md", 1},
		}
		if reversed {
			for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
				records[i], records[j] = records[j], records[i]
			}
		}
		for _, rec := range records {
			agg.RecordFileDiagnostic(rec.file, rec.line, config.SeverityWarning, "w")
		}
		return agg.Finalize()
	}

	assert.Equal(t, build(false).Entries, build(true).Entries)
}

func TestAggregator_FinalizeIdempotent(t *testing.T) {
	t.Parallel()

	agg := report.NewAggregator()
	agg.RecordFileDiagnostic("a.md", 1, config.SeverityError, "boom")

	first := agg.Finalize()
	agg.RecordFileDiagnostic("z.md", 9, config.SeverityError, "late")
	second := agg.Finalize()

	assert.Same(t, first, second)
	assert.Len(t, second.Entries, 1)
}

func TestAggregator_NoErrors(t *testing.T) {
	t.Parallel()

	agg := report.NewAggregator()
	agg.RecordFileDiagnostic("a.md", 1, config.SeverityWarning, "only a warning")

	assert.False(t, agg.Finalize().HadErrors)
}

func TestRenderer_Format(t *testing.T) {
	t.Parallel()

	agg := report.NewAggregator()
	agg.FileScanned()
	block := &extract.Block{StartLine: 4}
	agg.BlockFound()
	agg.Record("docs/a.md", block, []linter.Diagnostic{
		{Line: 1, Message: "F401 'os' imported but unused", Severity: config.SeverityError},
	})
	agg.RecordFileDiagnostic("docs/b.md", 7, config.SeverityWarning, "unterminated code fence")

	var buf bytes.Buffer
	renderer := report.NewRenderer(&buf, "never")
	require.NoError(t, renderer.Render(agg.Finalize()))

	out := buf.String()
	assert.Contains(t, out, "docs/a.md:4: [error] F401 'os' imported but unused\n")
	assert.Contains(t, out, "docs/b.md:7: [warning] unterminated code fence\n")
	assert.Contains(t, out, "1 file(s) scanned, 1 block(s) linted, 1 error(s), 1 warning(s)")

	// Entries for different files are separated by a blank line.
	assert.True(t, strings.Index(out, "docs/a.md") < strings.Index(out, "docs/b.md"))
}

func TestRenderer_EmptyReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderer := report.NewRenderer(&buf, "never")
	require.NoError(t, renderer.Render(report.NewAggregator().Finalize()))

	assert.Equal(t, "0 file(s) scanned, 0 block(s) linted, 0 error(s), 0 warning(s)\n", buf.String())
}

func TestRenderer_Deterministic(t *testing.T) {
	t.Parallel()

	render := func() string {
		agg := report.NewAggregator()
		agg.RecordFileDiagnostic("b.md", 2, config.SeverityError, "x")
		agg.RecordFileDiagnostic("a.md", 9, config.SeverityWarning, "y")

		var buf bytes.Buffer
		if err := report.NewRenderer(&buf, "never").Render(agg.Finalize()); err != nil {
			t.Fatalf("render: %v", err)
		}
		return buf.String()
	}

	assert.Equal(t, render(), render())
}
