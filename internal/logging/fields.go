// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldLayer  = "layer"
	FieldMarker = "marker"
	FieldDelay  = "delay"

	// Deck fields.
	FieldSlides = "slides"
	FieldSlide  = "slide"
	FieldCursor = "cursor"
	FieldBytes  = "bytes"
	FieldEvent  = "event"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
