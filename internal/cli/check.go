package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fencelint/fencelint/internal/logging"
	"github.com/fencelint/fencelint/pkg/config"
	"github.com/fencelint/fencelint/pkg/report"
	"github.com/fencelint/fencelint/pkg/runner"

	// Register built-in linter adapters.
	_ "github.com/fencelint/fencelint/pkg/linter/linters"
)

// ErrIssuesFound is returned when error-severity findings were reported.
var ErrIssuesFound = errors.New("lint issues found")

// ErrWarningsFound is returned in strict mode when only warnings were found.
var ErrWarningsFound = errors.New("lint warnings found")

// errConfigLoad wraps configuration file failures for exit-code mapping.
var errConfigLoad = errors.New("failed to load configuration")

type checkFlags struct {
	exclude []string
	timeout time.Duration
	strict  bool
	infer   bool
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check <directory> <lint-config> <language>",
		Short: "Lint code blocks of one language under a directory",
		Long:  checkLongDescription,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil,
		"glob patterns for paths to skip (e.g. 'slides/**')")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 0,
		"per-invocation linter timeout (default 2m)")
	cmd.Flags().BoolVar(&flags.strict, "strict", false,
		"treat warnings as failures")
	cmd.Flags().BoolVar(&flags.infer, "infer", false,
		"classify untagged blocks and lint those matching the language")

	return cmd
}

const checkLongDescription = `Scan a directory tree for Markdown files, extract every fenced code block
tagged with the given language, and run the language's external linter
against each block. Linter findings are reported at the line they occupy
in the Markdown file.

The lint-config argument is handed through to the external tool (for
python, a flake8 configuration file). Pass "" for tool defaults.

Examples:
  fencelint check docs .flake8 python      # flake8 over ` + "```" + `python blocks
  fencelint check . "" cpp                 # cppcheck over ` + "```" + `cpp blocks
  fencelint check docs .flake8 python --exclude 'slides/**'
  fencelint check docs .flake8 python --strict`

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	logger := logging.Default()

	directory, lintConfig, language := args[0], args[1], args[2]

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	cfg, err := config.Discover(directory, configPath)
	if err != nil {
		return errors.Join(errConfigLoad, err)
	}

	// CLI flags override config file values.
	exclude := append(append([]string{}, cfg.Exclude...), flags.exclude...)
	timeout := cfg.Timeout()
	if cmd.Flags().Changed("timeout") {
		timeout = flags.timeout
	}
	strict := cfg.Strict
	if cmd.Flags().Changed("strict") {
		strict = flags.strict
	}
	infer := cfg.Infer
	if cmd.Flags().Changed("infer") {
		infer = flags.infer
	}

	logger.Debug("starting check",
		logging.FieldPath, directory,
		logging.FieldLanguage, language,
		logging.FieldConfig, lintConfig,
		logging.FieldTimeout, timeout,
	)

	result, err := runner.Run(ctx, runner.Options{
		Directory:  directory,
		ConfigPath: lintConfig,
		Language:   language,
		Extensions: cfg.EffectiveExtensions(),
		Exclude:    exclude,
		Timeout:    timeout,
		Infer:      infer,
	})
	if err != nil {
		return err
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	renderer := report.NewRenderer(cmd.OutOrStdout(), colorMode)
	if err := renderer.Render(result); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if result.HadErrors {
		return ErrIssuesFound
	}
	if strict && result.Stats.BySeverity[config.SeverityWarning] > 0 {
		return ErrWarningsFound
	}

	return nil
}
