// Package runner orchestrates a full lint run: discover Markdown files,
// extract fenced code blocks, dispatch them to the language's adapter, and
// aggregate the remapped diagnostics.
package runner

import (
	"time"

	"github.com/fencelint/fencelint/pkg/config"
	"github.com/fencelint/fencelint/pkg/linter"
)

// Options controls a single run.
type Options struct {
	// Directory is the root to scan for Markdown files. Required.
	Directory string

	// ConfigPath is the lint tool configuration file handed to the
	// adapter (e.g. a .flake8 file). Adapters that carry their own rule
	// set accept but ignore it.
	ConfigPath string

	// Language selects the adapter; blocks tagged with any alias of it
	// are linted, everything else is ignored. Required.
	Language string

	// Extensions overrides the Markdown file extensions to scan.
	Extensions []string

	// Exclude lists glob patterns for paths to skip, relative to Directory.
	Exclude []string

	// Timeout bounds each external tool invocation. 0 means the default.
	Timeout time.Duration

	// Infer classifies untagged blocks by content and lints those that
	// classify as the requested language.
	Infer bool

	// Registry resolves language adapters. Nil means the default
	// registry with the built-in adapters.
	Registry *linter.Registry
}

func (o Options) registry() *linter.Registry {
	if o.Registry != nil {
		return o.Registry
	}
	return linter.DefaultRegistry
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return config.DefaultTimeout
	}
	return o.Timeout
}
