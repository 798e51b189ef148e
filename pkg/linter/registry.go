package linter

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/fencelint/fencelint/pkg/langtag"
)

// UnsupportedLanguageError indicates no adapter is registered for the
// requested language. It is a configuration error and aborts the run
// before any scanning.
type UnsupportedLanguageError struct {
	Language  string
	Supported []string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language %q (supported: %s)",
		e.Language, strings.Join(e.Supported, ", "))
}

// Registry maps canonical language identifiers to adapters.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]Linter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Linter)}
}

// DefaultRegistry is the process-wide registry. Built-in adapters register
// themselves here via init() in pkg/linter/linters.
var DefaultRegistry = NewRegistry()

// Register binds an adapter to one or more language identifiers. When no
// languages are given, the adapter's own Language() is used. Identifiers
// are canonicalized, so registering "cpp" also serves "c++" fence tags.
func (r *Registry) Register(l Linter, languages ...string) {
	if len(languages) == 0 {
		languages = []string{l.Language()}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, lang := range languages {
		r.adapters[langtag.Normalize(lang)] = l
	}
}

// Lookup resolves the adapter for a language, or fails with
// UnsupportedLanguageError.
func (r *Registry) Lookup(language string) (Linter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if l, ok := r.adapters[langtag.Normalize(language)]; ok {
		return l, nil
	}

	return nil, &UnsupportedLanguageError{
		Language:  language,
		Supported: r.languagesLocked(),
	}
}

// Languages returns the sorted registered language identifiers.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.languagesLocked()
}

func (r *Registry) languagesLocked() []string {
	langs := make([]string, 0, len(r.adapters))
	for lang := range r.adapters {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
