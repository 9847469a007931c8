package slides_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdslide/pkg/slides"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{"empty document", "", []string{""}},
		{"no delimiter", "  # Title\n\nbody\n", []string{"# Title\n\nbody"}},
		{"two slides", "A\n---\nB", []string{"A", "B"}},
		{"three slides", "A\n---\nB\n---\nC", []string{"A", "B", "C"}},
		{"leading delimiter", "---\nA", []string{"", "A"}},
		{"trailing delimiter", "A\n---", []string{"A", ""}},
		{"adjacent delimiters", "A\n---\n---\nB", []string{"A", "", "B"}},
		{"crlf line endings", "A\r\n---\r\nB\r\n", []string{"A", "B"}},
		{"byte order mark is trimmed", "\uFEFFA\n---\n\uFEFF B", []string{"A", "B"}},
		{"next line is kept", "\u0085A\n---\nB\u0085", []string{"\u0085A", "B\u0085"}},
		{"no-break space is trimmed", "A\u00a0\n---\nB", []string{"A", "B"}},
		{"four hyphens is not a delimiter", "A\n----\nB", []string{"A\n----\nB"}},
		{"indented hyphens are not a delimiter", "A\n ---\nB", []string{"A\n ---\nB"}},
		{"trailing space is not a delimiter", "A\n--- \nB", []string{"A\n--- \nB"}},
		{"inline hyphens are not a delimiter", "A --- B", []string{"A --- B"}},
		{
			"delimiter inside code fence still splits",
			"```yaml\n---\nkey: v\n```",
			[]string{"```yaml", "key: v\n```"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, slides.Split(tc.doc))
		})
	}
}

func TestSplitCountMatchesDelimiters(t *testing.T) {
	t.Parallel()

	for k := range 6 {
		parts := make([]string, k+1)
		for i := range parts {
			parts[i] = "slide " + strings.Repeat("x", i)
		}
		doc := strings.Join(parts, "\n---\n")

		assert.Len(t, slides.Split(doc), k+1, "delimiters=%d", k)
		assert.Equal(t, k+1, slides.Count(doc))
		assert.Len(t, slides.Delimiters(doc), k)
	}
}

func TestDelimiters(t *testing.T) {
	t.Parallel()

	assert.Empty(t, slides.Delimiters(""))
	assert.Equal(t, []int{0}, slides.Delimiters("---"))
	assert.Equal(t, []int{5}, slides.Delimiters("AAAA\n---\nBBBB"))
	assert.Equal(t, []int{2, 8}, slides.Delimiters("A\n---\nB\n---\nC"))
	assert.Equal(t, []int{3}, slides.Delimiters("A\r\n---\r\nB"))
}

func TestIndexAtCursor(t *testing.T) {
	t.Parallel()

	doc := "AAAA\n---\nBBBB"

	tests := []struct {
		cursor int
		want   int
	}{
		{0, 0},
		{4, 0},
		{5, 0}, // on the delimiter line start
		{6, 1},
		{9, 1},
		{len(doc), 1},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, slides.IndexAtCursor(doc, tc.cursor), "cursor=%d", tc.cursor)
	}
}

func TestIndexAtCursorMonotonic(t *testing.T) {
	t.Parallel()

	doc := "# One\n\ntext\n---\n# Two\n---\n\n---\n# Four\n"

	prev := slides.IndexAtCursor(doc, -1)
	for cursor := 0; cursor <= len(doc)+1; cursor++ {
		got := slides.IndexAtCursor(doc, cursor)
		require.GreaterOrEqual(t, got, prev, "cursor=%d", cursor)
		prev = got
	}
	assert.Equal(t, slides.Count(doc)-1, prev)
}

func TestStartPosition(t *testing.T) {
	t.Parallel()

	doc := "A\n---\n\n  B\n---\nC\n---\n"

	tests := []struct {
		name  string
		index int
		want  int
	}{
		{"first slide", 0, 0},
		{"skips blank lines and indent", 1, 9},
		{"skips newline", 2, 15},
		{"empty last slide ends at document end", 3, len(doc)},
		{"out of range", 4, 0},
		{"negative", -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, slides.StartPosition(doc, tc.index))
		})
	}

	assert.Equal(t, byte('B'), doc[slides.StartPosition(doc, 1)])
	assert.Equal(t, byte('C'), doc[slides.StartPosition(doc, 2)])
}

func TestStartPositionUnicodeSpace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want int
	}{
		{"skips byte order mark", "A\n---\n\uFEFFB", 9},
		{"skips ideographic space", "A\n---\n\u3000B", 9},
		{"stops at next line", "A\n---\n\u0085B", 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, slides.StartPosition(tc.doc, 1))
		})
	}
}

func TestStartPositionZeroForAnyDocument(t *testing.T) {
	t.Parallel()

	for _, doc := range []string{"", "---", "\n\nA", "A\n---\nB"} {
		assert.Equal(t, 0, slides.StartPosition(doc, 0), "doc=%q", doc)
	}
}

func TestStartPositionConsistentWithIndex(t *testing.T) {
	t.Parallel()

	doc := "# Intro\n\nhello\n---\n\n## Second\nbody\n---\n### Third\n"

	for index := range slides.Count(doc) {
		start := slides.StartPosition(doc, index)
		require.Equal(t, index, slides.IndexAtCursor(doc, start), "slide %d", index)

		end := len(doc)
		if delims := slides.Delimiters(doc); index < len(delims) {
			end = delims[index]
		}
		for pos := start; pos <= end; pos++ {
			got := slides.IndexAtCursor(doc, pos)
			require.Equal(t, index, got, "pos=%d", pos)
			assert.LessOrEqual(t, slides.StartPosition(doc, got), pos)
		}
	}
}
