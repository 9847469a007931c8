package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/yaklabco/mdslide/pkg/config"
)

// envVarPrefix is the prefix for all mdslide environment variables.
const envVarPrefix = "MDSLIDE_"

// envSetter applies one environment value to the configuration.
type envSetter struct {
	description string
	apply       func(cfg *config.Config, value string) error
}

// envMappings maps environment variable names (without prefix) to setters.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envSetter{
	"RENDER_GFM": {
		description: "Enable GitHub Flavored Markdown: true or false",
		apply:       boolSetter(func(c *config.Config, v bool) { c.Render.GFM = config.Bool(v) }),
	},
	"RENDER_BREAKS": {
		description: "Render single newlines as line breaks: true or false",
		apply:       boolSetter(func(c *config.Config, v bool) { c.Render.Breaks = config.Bool(v) }),
	},
	"RENDER_SANITIZE": {
		description: "Sanitize rendered HTML: true or false",
		apply:       boolSetter(func(c *config.Config, v bool) { c.Render.Sanitize = config.Bool(v) }),
	},
	"DEFAULT_MARKER": {
		description: "Marker preset used by format: bold, italic, strikethrough, code, highlight",
		apply: func(c *config.Config, v string) error {
			c.Format.DefaultMarker = v
			return nil
		},
	},
	"WATCH_DELAY": {
		description: "Quiet period before watch re-renders, e.g. 300ms",
		apply: func(c *config.Config, v string) error {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("expected a duration such as 300ms: %w", err)
			}
			c.Watch.Delay = d
			return nil
		},
	},
	"LOG_LEVEL": {
		description: "Log level: debug, info, warn, error",
		apply: func(c *config.Config, v string) error {
			c.LogLevel = v
			return nil
		},
	},
}

func boolSetter(set func(*config.Config, bool)) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("expected true/false/1/0: %w", err)
		}
		set(cfg, b)
		return nil
	}
}

// LoadFromEnv applies MDSLIDE_* environment overrides to cfg.
func LoadFromEnv(cfg *config.Config) error {
	return loadFromLookup(cfg, os.LookupEnv)
}

func loadFromLookup(cfg *config.Config, lookup func(string) (string, bool)) error {
	if cfg == nil {
		return nil
	}

	for _, suffix := range sortedEnvSuffixes() {
		name := envVarPrefix + suffix
		value, ok := lookup(name)
		if !ok || value == "" {
			continue
		}
		if err := envMappings[suffix].apply(cfg, value); err != nil {
			return fmt.Errorf("invalid value for %s: %q: %w", name, value, err)
		}
	}

	return nil
}

// ListEnvVars returns every supported environment variable with its description.
func ListEnvVars() map[string]string {
	out := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		out[envVarPrefix+suffix] = mapping.description
	}
	return out
}

func sortedEnvSuffixes() []string {
	keys := make([]string, 0, len(envMappings))
	for k := range envMappings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
