package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldConfig     = "config"
	FieldDelimiters = "delimiters"
	FieldCatalog    = "catalog"
	FieldItems      = "items"
	FieldMatch      = "match"
	FieldFlavor     = "flavor"

	// Editing fields.
	FieldCaret        = "caret"
	FieldQuery        = "query"
	FieldState        = "state"
	FieldValue        = "value"
	FieldPlaceholders = "placeholders"
	FieldBytes        = "bytes"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
