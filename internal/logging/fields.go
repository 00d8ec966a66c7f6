// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldContextSize = "context_size"
	FieldCensus      = "census_whitespace"
	FieldSuppress    = "suppress_file"
	FieldInclude     = "include_file"

	// Statistics fields.
	FieldFilesDiscovered  = "files_discovered"
	FieldFilesProcessed   = "files_processed"
	FieldFilesWithIssues  = "files_with_issues"
	FieldMistakesTotal    = "mistakes_total"
	FieldSuppressedTotal  = "suppressed_total"
	FieldUnusedSuppressed = "unused_suppressions"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Mistake fields.
	FieldKind        = "kind"
	FieldHoonName    = "hoon_name"
	FieldLine        = "line"
	FieldColumn      = "column"
	FieldDescription = "description"
)
