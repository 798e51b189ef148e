// Package mdscan discovers Markdown files under a directory tree.
package mdscan

import (
	"fmt"

	"github.com/gobwas/glob"
)

// NotFoundError indicates the scan root does not exist or is not a directory.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("directory not found: %s", e.Path)
}

// Options controls file discovery.
type Options struct {
	// Extensions is the set of file extensions (lowercase, with leading dot)
	// considered Markdown. Defaults to [".md", ".markdown"].
	Extensions []string

	// Exclude lists glob patterns matched against slash-normalized paths
	// relative to the scan root. A matching directory is pruned entirely.
	Exclude []string
}

// compileExcludes compiles the exclude patterns, treating '/' as a
// separator so "*" does not cross directory boundaries but "**" does.
func compileExcludes(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("compile exclude pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}
