package linters

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/fencelint/fencelint/pkg/config"
	"github.com/fencelint/fencelint/pkg/linter"
)

func init() {
	linter.DefaultRegistry.Register(&Flake8{})
}

// Flake8 lints Python blocks with the flake8 binary.
type Flake8 struct{}

// Language implements linter.Linter.
func (*Flake8) Language() string { return "python" }

// Tool implements linter.Linter.
func (*Flake8) Tool() string { return "flake8" }

// Lint implements linter.Linter.
func (f *Flake8) Lint(ctx context.Context, lines []string, configPath string) []linter.Diagnostic {
	return withTempFile("fencelint-*.py", lines, func(path string) []linter.Diagnostic {
		args := []string{}
		if configPath != "" {
			args = append(args, "--config", configPath)
		}
		args = append(args, path)

		stdout, stderr, exitCode, err := runTool(ctx, f.Tool(), args...)
		if err != nil {
			return []linter.Diagnostic{infraFailure("%v", err)}
		}

		diags, raw := parseFlake8Output(stdout)

		// flake8 exits 1 when it reports violations; anything else
		// without parseable findings is a tool failure, not content.
		if len(diags) == 0 && exitCode != 0 {
			detail := strings.TrimSpace(stderr)
			if detail == "" {
				detail = strings.TrimSpace(stdout)
			}
			return []linter.Diagnostic{
				infraFailure("flake8 exited with status %d: %s", exitCode, detail),
			}
		}

		if len(raw) > 0 {
			diags = append(diags, unparsable(f.Tool(), raw))
		}

		return diags
	})
}

// flake8 emits "<path>:<line>:<col>: <code> <message>".
var reFlake8 = regexp.MustCompile(`^(.*):(\d+):(\d+):\s+(([EWFC])\S*\s.*)$`)

// parseFlake8Output parses flake8 stdout into diagnostics plus any lines
// that matched no known grammar.
func parseFlake8Output(stdout string) ([]linter.Diagnostic, []string) {
	var (
		diags []linter.Diagnostic
		raw   []string
	)

	for _, line := range nonBlankLines(stdout) {
		m := reFlake8.FindStringSubmatch(line)
		if m == nil {
			raw = append(raw, line)
			continue
		}

		lineNum, _ := strconv.Atoi(m[2])
		col, _ := strconv.Atoi(m[3])

		diags = append(diags, linter.Diagnostic{
			Line:     lineNum,
			Column:   col,
			Message:  m[4],
			Severity: flake8Severity(m[5]),
		})
	}

	return diags, raw
}

// flake8Severity classifies by code letter: pycodestyle warnings (W) and
// complexity checks (C) are warnings, pyflakes (F) and errors (E) are errors.
func flake8Severity(codeLetter string) config.Severity {
	switch codeLetter {
	case "W", "C":
		return config.SeverityWarning
	default:
		return config.SeverityError
	}
}
