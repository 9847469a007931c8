package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdslide/pkg/format"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		doc    string
		sel    format.Selection
		marker format.Marker
		want   format.Result
	}{
		{
			name:   "wraps selection",
			doc:    "say hello now",
			sel:    format.Selection{Start: 4, End: 9},
			marker: format.Bold,
			want:   format.Result{Document: "say **hello** now", Start: 6, End: 11},
		},
		{
			name:   "unwraps selection",
			doc:    "say **hello** now",
			sel:    format.Selection{Start: 6, End: 11},
			marker: format.Bold,
			want:   format.Result{Document: "say hello now", Start: 4, End: 9},
		},
		{
			name:   "asymmetric marker",
			doc:    "see docs",
			sel:    format.Selection{Start: 4, End: 8},
			marker: format.Marker{Prefix: "[", Suffix: "](url)"},
			want:   format.Result{Document: "see [docs](url)", Start: 5, End: 9},
		},
		{
			name:   "asymmetric marker removed",
			doc:    "see [docs](url)",
			sel:    format.Selection{Start: 5, End: 9},
			marker: format.Marker{Prefix: "[", Suffix: "](url)"},
			want:   format.Result{Document: "see docs", Start: 4, End: 8},
		},
		{
			name:   "caret inserts empty pair",
			doc:    "abcdefgh",
			sel:    format.Selection{Start: 5, End: 5},
			marker: format.Symmetric("_"),
			want:   format.Result{Document: "abcde__fgh", Start: 6, End: 6},
		},
		{
			name:   "caret between markers inserts again",
			doc:    "a****b",
			sel:    format.Selection{Start: 3, End: 3},
			marker: format.Bold,
			want:   format.Result{Document: "a********b", Start: 5, End: 5},
		},
		{
			name:   "selection at document start",
			doc:    "hi there",
			sel:    format.Selection{Start: 0, End: 2},
			marker: format.Bold,
			want:   format.Result{Document: "**hi** there", Start: 2, End: 4},
		},
		{
			name:   "selection at document end",
			doc:    "hi there",
			sel:    format.Selection{Start: 3, End: 8},
			marker: format.Italic,
			want:   format.Result{Document: "hi *there*", Start: 4, End: 9},
		},
		{
			name:   "only prefix present wraps",
			doc:    "**hello world",
			sel:    format.Selection{Start: 2, End: 7},
			marker: format.Bold,
			want:   format.Result{Document: "****hello** world", Start: 4, End: 9},
		},
		{
			name:   "reversed selection is swapped",
			doc:    "say hello",
			sel:    format.Selection{Start: 9, End: 4},
			marker: format.InlineCode,
			want:   format.Result{Document: "say `hello`", Start: 5, End: 10},
		},
		{
			name:   "out of range offsets are clamped",
			doc:    "abc",
			sel:    format.Selection{Start: -4, End: 99},
			marker: format.Strikethrough,
			want:   format.Result{Document: "~~abc~~", Start: 2, End: 5},
		},
		{
			name:   "empty marker is a no-op",
			doc:    "abc",
			sel:    format.Selection{Start: 1, End: 2},
			marker: format.Marker{},
			want:   format.Result{Document: "abc", Start: 1, End: 2},
		},
		{
			name:   "multibyte text keeps byte offsets",
			doc:    "für alle",
			sel:    format.Selection{Start: 0, End: 4},
			marker: format.Bold,
			want:   format.Result{Document: "**für** alle", Start: 2, End: 6},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := format.Apply(tc.doc, tc.sel, tc.marker)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestApplyTextFormatRoundTrip(t *testing.T) {
	t.Parallel()

	doc := "The quick brown fox"
	s, e := 4, 9

	first := format.ApplyTextFormat(doc, s, e, "**")
	require.Equal(t, "The **quick** brown fox", first.Document)
	assert.Contains(t, first.Document, "**quick**")
	assert.Equal(t, "quick", first.Document[first.Start:first.End])

	second := format.ApplyTextFormat(first.Document, s+2, e+2, "**")
	assert.Equal(t, doc, second.Document)
	assert.Equal(t, format.Selection{Start: s, End: e}, second.Selection())
}

func TestApplyRoundTripAllPresets(t *testing.T) {
	t.Parallel()

	doc := "alpha beta gamma"
	sel := format.Selection{Start: 6, End: 10}

	for _, name := range format.MarkerNames() {
		m, err := format.LookupMarker(name)
		require.NoError(t, err)

		wrapped := format.Apply(doc, sel, m)
		unwrapped := format.Apply(wrapped.Document, wrapped.Selection(), m)

		assert.Equal(t, doc, unwrapped.Document, "marker %s", name)
		assert.Equal(t, sel, unwrapped.Selection(), "marker %s", name)
	}
}

func TestApplyTextFormatCaret(t *testing.T) {
	t.Parallel()

	got := format.ApplyTextFormat("0123456789", 5, 5, "_", "_")
	assert.Equal(t, "01234__56789", got.Document)
	assert.Equal(t, 6, got.Start)
	assert.Equal(t, 6, got.End)
}

func TestApplyTextFormatProbeBeforeStart(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		got := format.ApplyTextFormat("ab**", 0, 2, "**")
		assert.Equal(t, "**ab****", got.Document)
		assert.Equal(t, 2, got.Start)
		assert.Equal(t, 4, got.End)
	})
}

func TestLookupMarker(t *testing.T) {
	t.Parallel()

	m, err := format.LookupMarker(" Bold ")
	require.NoError(t, err)
	assert.Equal(t, format.Bold, m)

	_, err = format.LookupMarker("underline")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown marker")
}
