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
	linter.DefaultRegistry.Register(&Cppcheck{}, "cpp", "c")
}

// Cppcheck lints C-family blocks with the cppcheck binary at its default
// strictness. One adapter serves both the "cpp" and "c" tags; cppcheck
// infers the dialect from the temporary file's extension.
type Cppcheck struct{}

// Language implements linter.Linter.
func (*Cppcheck) Language() string { return "cpp" }

// Tool implements linter.Linter.
func (*Cppcheck) Tool() string { return "cppcheck" }

// cppcheckTemplate pins the output grammar so parsing does not depend on
// the cppcheck version's default format.
const cppcheckTemplate = "{line}:{column}:{severity}:{message}"

// Lint implements linter.Linter. configPath is accepted but not required;
// cppcheck carries its rule set internally.
func (c *Cppcheck) Lint(ctx context.Context, lines []string, _ string) []linter.Diagnostic {
	return withTempFile("fencelint-*.cpp", lines, func(path string) []linter.Diagnostic {
		_, stderr, exitCode, err := runTool(ctx, c.Tool(),
			"--quiet", "--template="+cppcheckTemplate, path)
		if err != nil {
			return []linter.Diagnostic{infraFailure("%v", err)}
		}

		// Diagnostics go to stderr with --quiet.
		diags, raw := parseCppcheckOutput(stderr)

		if len(diags) == 0 && exitCode != 0 {
			return []linter.Diagnostic{
				infraFailure("cppcheck exited with status %d: %s", exitCode, strings.TrimSpace(stderr)),
			}
		}

		if len(raw) > 0 {
			diags = append(diags, unparsable(c.Tool(), raw))
		}

		return diags
	})
}

// With the pinned template, cppcheck emits "<line>:<col>:<severity>:<message>".
var reCppcheck = regexp.MustCompile(`^(\d+):(\d+):(\w+):(.*)$`)

func parseCppcheckOutput(stderr string) ([]linter.Diagnostic, []string) {
	var (
		diags []linter.Diagnostic
		raw   []string
	)

	for _, line := range nonBlankLines(stderr) {
		m := reCppcheck.FindStringSubmatch(line)
		if m == nil {
			raw = append(raw, line)
			continue
		}

		lineNum, _ := strconv.Atoi(m[1])
		col, _ := strconv.Atoi(m[2])
		if lineNum == 0 {
			// File-scope findings (e.g. missingIncludeSystem) carry
			// line 0; anchor them to the first line of the block.
			lineNum = 1
		}

		diags = append(diags, linter.Diagnostic{
			Line:     lineNum,
			Column:   col,
			Message:  strings.TrimSpace(m[4]),
			Severity: cppcheckSeverity(m[3]),
		})
	}

	return diags, raw
}

// cppcheckSeverity maps cppcheck's own classification onto ours: "error" is
// an error, everything else (warning, style, performance, portability,
// information) is a warning.
func cppcheckSeverity(severity string) config.Severity {
	if strings.EqualFold(severity, "error") {
		return config.SeverityError
	}
	return config.SeverityWarning
}
