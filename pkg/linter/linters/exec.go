// Package linters contains the built-in adapters backed by external lint
// tools. Importing this package registers them with linter.DefaultRegistry.
package linters

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/fencelint/fencelint/pkg/config"
	"github.com/fencelint/fencelint/pkg/linter"
)

// withTempFile writes the block content to a fresh temporary file, invokes
// fn with its path, and removes the file on every exit path. The file is
// never reused across blocks, so one tool invocation cannot observe another
// block's state.
func withTempFile(pattern string, lines []string, fn func(path string) []linter.Diagnostic) []linter.Diagnostic {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return []linter.Diagnostic{infraFailure("create temporary file: %v", err)}
	}
	path := f.Name()
	defer os.Remove(path)

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	_, err = f.Write(buf.Bytes())
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return []linter.Diagnostic{infraFailure("write temporary file: %v", err)}
	}

	return fn(path)
}

// runTool executes the external tool and returns its combined diagnostic
// output. A non-nil error means the tool could not run at all (missing
// binary, killed by timeout); a non-zero exit with output is normal for
// linters and is reported through exitCode.
func runTool(ctx context.Context, name string, args ...string) (stdout, stderr string, exitCode int, err error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	runErr := cmd.Run()

	stdout = outBuf.String()
	stderr = errBuf.String()

	if runErr == nil {
		return stdout, stderr, 0, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return stdout, stderr, -1, fmt.Errorf("%s timed out: %w", name, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return stdout, stderr, exitErr.ExitCode(), nil
	}

	return stdout, stderr, -1, fmt.Errorf("run %s: %w", name, runErr)
}

// infraFailure builds the synthetic error-severity diagnostic used when a
// tool fails for infrastructural reasons rather than a content defect.
func infraFailure(format string, args ...any) linter.Diagnostic {
	return linter.Diagnostic{
		Line:     1,
		Message:  fmt.Sprintf(format, args...),
		Severity: config.SeverityError,
	}
}

// unparsable folds raw tool lines that matched no known output grammar into
// a single warning diagnostic at line 1, so nothing is dropped silently.
func unparsable(tool string, raw []string) linter.Diagnostic {
	return linter.Diagnostic{
		Line:     1,
		Message:  fmt.Sprintf("unrecognized %s output: %s", tool, strings.Join(raw, " | ")),
		Severity: config.SeverityWarning,
	}
}

// nonBlankLines splits tool output into trimmed, non-empty lines.
func nonBlankLines(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
