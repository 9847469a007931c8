package textedit

import "strings"

// Apply applies a sorted, validated slice of edits to content.
// Edits must be prepared with Prepare before calling.
func Apply(content string, edits []Edit) string {
	if len(edits) == 0 {
		return content
	}

	delta := 0
	for _, e := range edits {
		delta += e.Delta()
	}

	var out strings.Builder
	out.Grow(max(len(content)+delta, 0))

	cursor := 0
	for _, e := range edits {
		out.WriteString(content[cursor:e.Start])
		out.WriteString(e.NewText)
		cursor = e.End
	}
	out.WriteString(content[cursor:])

	return out.String()
}
