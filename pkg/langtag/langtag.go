// Package langtag canonicalizes fence info-string language tags and
// classifies untagged code content. It uses go-enry so aliases like "py"
// or "c++" resolve to the same identifier as their canonical spelling.
package langtag

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Normalize returns the canonical lowercase identifier for a language tag
// (e.g. "py" -> "python", "C++" -> "c++" -> "cpp"). Tags unknown to enry
// are lowercased as-is so exotic fence tags still compare consistently.
func Normalize(tag string) string {
	tag = strings.TrimSpace(strings.ToLower(tag))
	if tag == "" {
		return ""
	}

	if lang, ok := enry.GetLanguageByAlias(tag); ok {
		return canonical(lang)
	}

	return tag
}

// Match reports whether a block's language tag selects the requested
// language, comparing canonical forms.
func Match(requested, tag string) bool {
	if tag == "" {
		return false
	}
	return Normalize(requested) == Normalize(tag)
}

// Detect classifies untagged block content, returning a canonical lowercase
// identifier or "" when no confident classification exists.
func Detect(content []byte) string {
	if len(content) == 0 {
		return ""
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return canonical(lang)
	}

	candidates := []string{
		"Python", "C", "C++", "Go", "Shell", "JavaScript",
		"Ruby", "Rust", "Java", "SQL", "JSON", "YAML",
	}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return canonical(lang)
	}

	return ""
}

// canonical maps enry's display names to the lowercase identifiers used in
// fence tags. enry says "C++", fence tags say "cpp".
func canonical(lang string) string {
	switch lang {
	case "C++":
		return "cpp"
	case "C#":
		return "csharp"
	case "F#":
		return "fsharp"
	case "Objective-C":
		return "objc"
	default:
		return strings.ToLower(lang)
	}
}
