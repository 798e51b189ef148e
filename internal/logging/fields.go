package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	FieldError = "error"
	FieldPath  = "path"
	FieldFiles = "files"
	FieldLine  = "line"

	// Run fields.
	FieldLanguage    = "language"
	FieldTool        = "tool"
	FieldBlocks      = "blocks"
	FieldDiagnostics = "diagnostics"
	FieldConfig      = "config"
	FieldTimeout     = "timeout"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
