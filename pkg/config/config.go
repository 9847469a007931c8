// Package config defines the configuration types for mdslide.
// These types are plain data; loading and merging live in internal/configloader.
package config

import "time"

// Log levels accepted by LogLevel.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// DefaultWatchDelay is the quiet period before watch re-renders.
const DefaultWatchDelay = 300 * time.Millisecond

// RenderConfig controls HTML rendering of slides.
// Pointers distinguish "unset" from an explicit false so a higher-precedence
// source can switch a feature off.
type RenderConfig struct {
	// GFM enables GitHub Flavored Markdown extensions.
	GFM *bool `yaml:"gfm,omitempty"`

	// Breaks renders single newlines as line breaks.
	Breaks *bool `yaml:"breaks,omitempty"`

	// Sanitize cleans rendered HTML instead of dropping raw HTML.
	Sanitize *bool `yaml:"sanitize,omitempty"`
}

// GFMEnabled reports the effective GFM setting (default on).
func (r RenderConfig) GFMEnabled() bool { return boolOr(r.GFM, true) }

// BreaksEnabled reports the effective Breaks setting (default on).
func (r RenderConfig) BreaksEnabled() bool { return boolOr(r.Breaks, true) }

// SanitizeEnabled reports the effective Sanitize setting (default on).
func (r RenderConfig) SanitizeEnabled() bool { return boolOr(r.Sanitize, true) }

// FormatConfig controls the format command.
type FormatConfig struct {
	// DefaultMarker names the marker preset used when none is given.
	DefaultMarker string `yaml:"default_marker,omitempty"`
}

// WatchConfig controls the watch command.
type WatchConfig struct {
	// Delay is the quiet period after the last change before re-rendering.
	Delay time.Duration `yaml:"delay,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	Render RenderConfig `yaml:"render"`
	Format FormatConfig `yaml:"format"`
	Watch  WatchConfig  `yaml:"watch"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`
}

// NewConfig returns a Config with defaults filled in.
func NewConfig() *Config {
	return &Config{
		Render: RenderConfig{
			GFM:      Bool(true),
			Breaks:   Bool(true),
			Sanitize: Bool(true),
		},
		Format: FormatConfig{
			DefaultMarker: "bold",
		},
		Watch: WatchConfig{
			Delay: DefaultWatchDelay,
		},
		LogLevel: LogLevelInfo,
	}
}

// Bool returns a pointer to v.
func Bool(v bool) *bool {
	return &v
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
