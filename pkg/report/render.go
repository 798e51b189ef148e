package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fencelint/fencelint/internal/ui/pretty"
	"github.com/fencelint/fencelint/pkg/config"
)

const bufWriterSize = 32 * 1024

// Renderer writes a RunResult as line-oriented text, one entry per line in
// the form "<file>:<line>: [<severity>] <message>", grouped by file, with a
// one-line summary at the end. Output over unchanged input is
// byte-identical across runs.
type Renderer struct {
	styles *pretty.Styles
	width  int
	bw     *bufio.Writer
}

// NewRenderer creates a renderer for w. colorMode is "auto", "always" or
// "never"; in auto mode color is used only when w is a terminal.
func NewRenderer(w io.Writer, colorMode string) *Renderer {
	return &Renderer{
		styles: pretty.NewStyles(pretty.IsColorEnabled(colorMode, w)),
		width:  pretty.TerminalWidth(w),
		bw:     bufio.NewWriterSize(w, bufWriterSize),
	}
}

// Render writes the report.
func (r *Renderer) Render(result *RunResult) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	var lastFile string
	for _, entry := range result.Entries {
		if lastFile != "" && entry.File != lastFile {
			fmt.Fprintln(r.bw)
		}
		lastFile = entry.File

		fmt.Fprintln(r.bw, r.styles.FormatEntry(entry.File, entry.Line, string(entry.Severity), entry.Message, r.width))
	}

	if len(result.Entries) > 0 {
		fmt.Fprintln(r.bw)
	}
	fmt.Fprintln(r.bw, r.summary(result))

	return nil
}

func (r *Renderer) summary(result *RunResult) string {
	stats := result.Stats
	line := fmt.Sprintf("%d file(s) scanned, %d block(s) linted, %d error(s), %d warning(s)",
		stats.FilesScanned,
		stats.BlocksLinted,
		stats.BySeverity[config.SeverityError],
		stats.BySeverity[config.SeverityWarning],
	)

	if result.HadErrors {
		return r.styles.Failure.Render(line)
	}
	return r.styles.Success.Render(line)
}
