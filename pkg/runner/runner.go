package runner

import (
	"context"
	"fmt"
	"os"

	"github.com/fencelint/fencelint/internal/logging"
	"github.com/fencelint/fencelint/pkg/config"
	"github.com/fencelint/fencelint/pkg/extract"
	"github.com/fencelint/fencelint/pkg/langtag"
	"github.com/fencelint/fencelint/pkg/linter"
	"github.com/fencelint/fencelint/pkg/mdscan"
	"github.com/fencelint/fencelint/pkg/report"
)

// Run executes one full lint run and returns the finalized result.
//
// The adapter lookup happens before any scanning so an unsupported language
// fails fast, and a missing directory aborts with mdscan.NotFoundError.
// Everything past that point is recorded, not raised: unreadable files and
// failing tools become report entries and the run continues. Files are
// processed one at a time, blocks one at a time, one tool subprocess at a
// time.
func Run(ctx context.Context, opts Options) (*report.RunResult, error) {
	logger := logging.FromContext(ctx)

	adapter, err := opts.registry().Lookup(opts.Language)
	if err != nil {
		return nil, err
	}

	files, err := mdscan.Discover(ctx, opts.Directory, mdscan.Options{
		Extensions: opts.Extensions,
		Exclude:    opts.Exclude,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("scan complete",
		logging.FieldPath, opts.Directory,
		logging.FieldFiles, len(files),
		logging.FieldLanguage, adapter.Language(),
		logging.FieldTool, adapter.Tool(),
	)

	agg := report.NewAggregator()

	for _, file := range files {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("run cancelled: %w", ctxErr)
		}
		lintFile(ctx, file, adapter, opts, agg)
	}

	result := agg.Finalize()

	logger.Debug("run complete",
		logging.FieldFiles, result.Stats.FilesScanned,
		logging.FieldBlocks, result.Stats.BlocksLinted,
		logging.FieldDiagnostics, len(result.Entries),
	)

	return result, nil
}

// lintFile processes one Markdown file. Read and extraction problems
// degrade to report entries; they never abort the run.
func lintFile(ctx context.Context, file string, adapter linter.Linter, opts Options, agg *report.Aggregator) {
	logger := logging.FromContext(ctx)

	source, err := os.ReadFile(file)
	if err != nil {
		agg.RecordFileDiagnostic(file, 1, config.SeverityError, fmt.Sprintf("read file: %v", err))
		return
	}

	agg.FileScanned()

	for _, block := range extract.Parse(source) {
		if block.Unterminated {
			fenceLine := block.StartLine - 1
			if fenceLine < 1 {
				fenceLine = 1
			}
			agg.RecordFileDiagnostic(file, fenceLine, config.SeverityWarning,
				"unterminated code fence, treated as closed at end of file")
		}

		if !blockMatches(&block, opts) {
			continue
		}

		agg.BlockFound()

		logger.Debug("linting block",
			logging.FieldPath, file,
			logging.FieldLine, block.StartLine,
			logging.FieldLanguage, block.Lang,
		)

		lintCtx, cancel := context.WithTimeout(ctx, opts.timeout())
		diags := adapter.Lint(lintCtx, block.Lines, opts.ConfigPath)
		cancel()

		agg.Record(file, &block, diags)
	}
}

// blockMatches decides whether a block is linted in this run. Untagged
// blocks are skipped unless inference is enabled and the content classifies
// as the requested language.
func blockMatches(block *extract.Block, opts Options) bool {
	if block.Lang != "" {
		return langtag.Match(opts.Language, block.Lang)
	}

	if !opts.Infer || len(block.Lines) == 0 {
		return false
	}

	detected := langtag.Detect([]byte(block.Text()))
	return detected != "" && langtag.Match(opts.Language, detected)
}
