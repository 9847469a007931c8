package configloader

import "github.com/yaklabco/mdslide/pkg/config"

// merge combines two configurations, with override taking precedence over base.
//   - Pointer booleans: a non-nil override wins, so false can switch a default off
//   - Strings and durations: a non-zero override wins
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Render.GFM != nil {
		result.Render.GFM = config.Bool(*override.Render.GFM)
	}
	if override.Render.Breaks != nil {
		result.Render.Breaks = config.Bool(*override.Render.Breaks)
	}
	if override.Render.Sanitize != nil {
		result.Render.Sanitize = config.Bool(*override.Render.Sanitize)
	}

	if override.Format.DefaultMarker != "" {
		result.Format.DefaultMarker = override.Format.DefaultMarker
	}
	if override.Watch.Delay != 0 {
		result.Watch.Delay = override.Watch.Delay
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}

	return result
}

// MergeAll merges configurations in order, later ones taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for _, cfg := range configs[1:] {
		result = merge(result, cfg)
	}
	return result
}
