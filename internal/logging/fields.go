// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldOutput = "output"

	// Decoration fields.
	FieldCursor      = "cursor"
	FieldCursorLine  = "cursor_line"
	FieldLines       = "lines"
	FieldAnnotations = "annotations"
	FieldWidgets     = "widgets"

	// Blog fields.
	FieldBlog      = "blog"
	FieldBlogs     = "blogs"
	FieldBlockLine = "block_line"
	FieldPublished = "published"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
