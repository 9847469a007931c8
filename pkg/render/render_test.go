package render_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdslide/pkg/render"
)

func TestRenderBreaks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := "line one\nline two"

	withBreaks, err := render.Render(ctx, src, render.Options{Breaks: true})
	require.NoError(t, err)
	assert.Contains(t, withBreaks, "<br")

	without, err := render.Render(ctx, src, render.Options{})
	require.NoError(t, err)
	assert.NotContains(t, without, "<br")
}

func TestRenderGFM(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := "~~gone~~\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"

	gfm, err := render.Render(ctx, src, render.Options{GFM: true})
	require.NoError(t, err)
	assert.Contains(t, gfm, "<del>gone</del>")
	assert.Contains(t, gfm, "<table>")

	plain, err := render.Render(ctx, src, render.Options{})
	require.NoError(t, err)
	assert.NotContains(t, plain, "<del>")
	assert.NotContains(t, plain, "<table>")
}

func TestRenderSanitize(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := "<script>alert(1)</script>\n\nsome <b>bold</b> text\n"

	clean, err := render.Render(ctx, src, render.DefaultOptions())
	require.NoError(t, err)
	assert.NotContains(t, clean, "<script")
	assert.Contains(t, clean, "<b>bold</b>")

	safe, err := render.Render(ctx, src, render.Options{})
	require.NoError(t, err)
	assert.NotContains(t, safe, "<script")
	assert.Contains(t, safe, "raw HTML omitted")
}

func TestRenderImages(t *testing.T) {
	t.Parallel()

	opts := render.DefaultOptions()
	opts.BaseDir = "/decks/intro"

	out, err := render.Render(context.Background(),
		"![local](intro/abc123.png)\n\n![remote](https://example.com/x.png)\n", opts)
	require.NoError(t, err)
	assert.Contains(t, out, `src="file:///decks/intro/intro/abc123.png"`)
	assert.Contains(t, out, `src="https://example.com/x.png"`)
}

func TestResolveImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseDir string
		dest    string
		want    string
	}{
		{"no base dir", "", "a.png", "a.png"},
		{"relative", "/docs", "img/a.png", "file:///docs/img/a.png"},
		{"dot relative", "/docs", "./a.png", "file:///docs/a.png"},
		{"absolute", "/docs", "/srv/a.png", "file:///srv/a.png"},
		{"http", "/docs", "http://x/a.png", "http://x/a.png"},
		{"data uri", "/docs", "data:image/png;base64,AAAA", "data:image/png;base64,AAAA"},
		{"asset url", "/docs", "asset://localhost/a.png", "asset://localhost/a.png"},
		{"space is escaped", "/docs", "my image.png", "file:///docs/my%20image.png"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, render.ResolveImage(tc.baseDir, tc.dest))
		})
	}
}

func TestDeck(t *testing.T) {
	t.Parallel()

	pages, err := render.Deck(context.Background(), "# One\n---\n# Two\n---\n", render.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, pages, 3)
	assert.Contains(t, pages[0], "<h1>One</h1>")
	assert.Contains(t, pages[1], "<h1>Two</h1>")
	assert.Empty(t, pages[2])
}

func TestRenderCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := render.Render(ctx, "# x", render.DefaultOptions())
	require.ErrorIs(t, err, context.Canceled)

	_, err = render.Deck(ctx, "# x", render.DefaultOptions())
	require.ErrorIs(t, err, context.Canceled)
}
