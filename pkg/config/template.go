package config

import (
	"fmt"
	"strings"
)

// TemplateHeader starts every generated configuration file.
const TemplateHeader = `# mdslide configuration
# Precedence: defaults < user config < .mdslide.yml < --config < MDSLIDE_* env < flags`

// GenerateTemplate returns a commented configuration file populated with the
// defaults from NewConfig.
func GenerateTemplate() []byte {
	def := NewConfig()

	var b strings.Builder
	b.WriteString(TemplateHeader)
	b.WriteString("\n\n")

	b.WriteString("render:\n")
	writeField(&b, "Enable GitHub Flavored Markdown (tables, strikethrough, task lists).",
		"gfm", def.Render.GFMEnabled())
	writeField(&b, "Render single newlines inside a paragraph as line breaks.",
		"breaks", def.Render.BreaksEnabled())
	writeField(&b, "Keep raw HTML and sanitize the output; when false raw HTML is dropped.",
		"sanitize", def.Render.SanitizeEnabled())

	b.WriteString("\nformat:\n")
	writeField(&b, "Marker used by 'mdslide format' when no --marker or --prefix is given.",
		"default_marker", def.Format.DefaultMarker)

	b.WriteString("\nwatch:\n")
	writeField(&b, "Quiet period after the last change before 'mdslide watch' re-renders.",
		"delay", def.Watch.Delay.String())

	b.WriteString("\n# One of debug, info, warn, error.\n")
	fmt.Fprintf(&b, "log_level: %s\n", def.LogLevel)

	return []byte(b.String())
}

func writeField(b *strings.Builder, comment, key string, value any) {
	fmt.Fprintf(b, "  # %s\n  %s: %v\n", comment, key, value)
}
