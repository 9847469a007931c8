package format

import (
	"fmt"
	"slices"
	"strings"
)

// Marker is the markup placed before and after formatted text.
type Marker struct {
	Prefix string `yaml:"prefix"`
	Suffix string `yaml:"suffix"`
}

// Symmetric returns a marker whose suffix equals its prefix.
func Symmetric(prefix string) Marker {
	return Marker{Prefix: prefix, Suffix: prefix}
}

// Presets for the editor's formatting actions.
//
//nolint:gochecknoglobals // Read-only presets.
var (
	Bold          = Symmetric("**")
	Italic        = Symmetric("*")
	Strikethrough = Symmetric("~~")
	InlineCode    = Symmetric("`")
	Highlight     = Symmetric("==")
)

//nolint:gochecknoglobals // Read-only lookup table.
var markersByName = map[string]Marker{
	"bold":          Bold,
	"italic":        Italic,
	"strikethrough": Strikethrough,
	"strike":        Strikethrough,
	"code":          InlineCode,
	"highlight":     Highlight,
}

// LookupMarker returns the preset registered under name (case-insensitive).
func LookupMarker(name string) (Marker, error) {
	m, ok := markersByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Marker{}, fmt.Errorf("unknown marker %q (known: %s)", name, strings.Join(MarkerNames(), ", "))
	}
	return m, nil
}

// MarkerNames returns the preset names in sorted order.
func MarkerNames() []string {
	names := make([]string, 0, len(markersByName))
	for name := range markersByName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
