// Package config defines core configuration types for fencelint.
// These types are pure data structures; file discovery and loading live in
// yaml.go so the rest of the tree can depend on config without pulling in I/O.
package config

import "time"

// Severity represents the severity level of a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// DefaultTimeout bounds a single external linter invocation. Linters are
// expected to finish in seconds; the generous ceiling only guards against a
// wedged tool hanging a CI run.
const DefaultTimeout = 2 * time.Minute

// Config holds the user-tunable settings for a run.
//
// All fields are optional; zero values fall back to the defaults below.
type Config struct {
	// Extensions is the set of file extensions (lowercase, with leading dot)
	// considered Markdown. Defaults to [".md", ".markdown"].
	Extensions []string `yaml:"extensions"`

	// Exclude lists glob patterns for files or directories to skip,
	// relative to the scan root (e.g. "slides/**", "vendor/**").
	Exclude []string `yaml:"exclude"`

	// TimeoutSeconds bounds each external linter invocation.
	// 0 means DefaultTimeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// Strict treats warning-severity findings as run failures.
	Strict bool `yaml:"strict"`

	// Infer classifies untagged code blocks instead of skipping them.
	Infer bool `yaml:"infer"`
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

// Default returns a Config populated with defaults.
func Default() *Config {
	return &Config{
		Extensions: DefaultExtensions(),
	}
}

// Timeout returns the per-invocation timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c == nil || c.TimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// EffectiveExtensions returns the configured extensions, defaulting if empty.
func (c *Config) EffectiveExtensions() []string {
	if c == nil || len(c.Extensions) == 0 {
		return DefaultExtensions()
	}
	return c.Extensions
}
