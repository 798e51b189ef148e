package cli

import (
	"errors"

	"github.com/fencelint/fencelint/pkg/linter"
	"github.com/fencelint/fencelint/pkg/mdscan"
)

// Exit codes for fencelint.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitLintErrors indicates the check completed but found errors.
	ExitLintErrors = 1

	// ExitLintWarnings indicates only warnings were found in strict mode.
	ExitLintWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates a configuration error: a missing scan
	// directory, an unsupported language, or a broken config file.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70
)

// ExitCode maps an error returned by command execution to a process exit
// code. A nil error is success.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrIssuesFound) {
		return ExitLintErrors
	}
	if errors.Is(err, ErrWarningsFound) {
		return ExitLintWarnings
	}

	var unsupported *linter.UnsupportedLanguageError
	var notFound *mdscan.NotFoundError
	if errors.As(err, &unsupported) || errors.As(err, &notFound) || errors.Is(err, errConfigLoad) {
		return ExitConfigError
	}

	return ExitInternalError
}

// IsSilent reports whether err is a signal for the exit code only and
// should not be logged.
func IsSilent(err error) bool {
	return errors.Is(err, ErrIssuesFound) || errors.Is(err, ErrWarningsFound)
}
