package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdslide/pkg/config"
	"github.com/yaklabco/mdslide/pkg/format"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "watch.delay").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// knownLogLevels lists valid log_level values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownLogLevels = map[string]bool{
	config.LogLevelDebug: true,
	config.LogLevelInfo:  true,
	config.LogLevelWarn:  true,
	"warning":            true,
	config.LogLevelError: true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if name := cfg.Format.DefaultMarker; name != "" {
		if _, err := format.LookupMarker(name); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "format.default_marker",
				Value:   name,
				Message: err.Error(),
			})
		}
	}

	if cfg.Watch.Delay < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "watch.delay",
			Value:   cfg.Watch.Delay,
			Message: "delay must be >= 0",
		})
	}

	if cfg.LogLevel != "" && !knownLogLevels[strings.ToLower(cfg.LogLevel)] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: fmt.Sprintf("invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel),
		})
	}

	if !cfg.Render.SanitizeEnabled() {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "render.sanitize",
			Value:   false,
			Message: "raw HTML is dropped and resolved image paths will not load",
		})
	}

	return result
}
