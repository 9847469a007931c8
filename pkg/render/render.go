// Package render converts slide markdown to HTML.
//
// Every call takes an explicit Options value; there is no package-level
// renderer configuration.
package render

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/yaklabco/mdslide/pkg/slides"
)

// imageRewritePriority runs the image rewriter after goldmark's own transformers.
const imageRewritePriority = 999

// Options controls a single render call.
type Options struct {
	// GFM enables GitHub Flavored Markdown extensions (tables, strikethrough,
	// task lists, autolinks).
	GFM bool

	// Breaks renders single newlines inside paragraphs as <br>.
	Breaks bool

	// Sanitize passes raw HTML through and cleans the output with a UGC
	// policy. When false, goldmark omits raw HTML instead.
	Sanitize bool

	// BaseDir is the directory of the document being rendered. When set,
	// relative image paths are resolved against it. goldmark's safe mode
	// drops file URLs, so resolved images only show with Sanitize.
	BaseDir string
}

// DefaultOptions returns the options the editor preview uses.
func DefaultOptions() Options {
	return Options{
		GFM:      true,
		Breaks:   true,
		Sanitize: true,
	}
}

// sanitizer is safe for concurrent use once built.
//
//nolint:gochecknoglobals // Immutable after construction.
var sanitizer = sync.OnceValue(func() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowDataURIImages()
	policy.AllowURLSchemes("file", "asset")
	return policy
})

// Render converts src to HTML.
func Render(ctx context.Context, src string, opts Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("render cancelled: %w", err)
	}

	out, err := convert(newMarkdown(opts), src, opts.Sanitize)
	if err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return out, nil
}

// Deck splits doc into slides and renders each one.
func Deck(ctx context.Context, doc string, opts Options) ([]string, error) {
	parts := slides.Split(doc)
	md := newMarkdown(opts)

	out := make([]string, 0, len(parts))
	for i, part := range parts {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("render cancelled: %w", err)
		}

		page, err := convert(md, part, opts.Sanitize)
		if err != nil {
			return nil, fmt.Errorf("convert slide %d: %w", i, err)
		}
		out = append(out, page)
	}

	return out, nil
}

func convert(md goldmark.Markdown, src string, sanitize bool) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err //nolint:wrapcheck // Wrapped by callers.
	}
	if !sanitize {
		return buf.String(), nil
	}
	return sanitizer().Sanitize(buf.String()), nil
}

// newMarkdown builds a goldmark instance for opts.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newMarkdown(opts Options) goldmark.Markdown {
	var gmOpts []goldmark.Option

	if opts.GFM {
		gmOpts = append(gmOpts, goldmark.WithExtensions(extension.GFM))
	}

	var rendererOpts []goldmark.Option
	if opts.Breaks {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(html.WithHardWraps()))
	}
	if opts.Sanitize {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(html.WithUnsafe()))
	}
	gmOpts = append(gmOpts, rendererOpts...)

	if opts.BaseDir != "" {
		gmOpts = append(gmOpts, goldmark.WithParserOptions(
			parser.WithASTTransformers(
				util.Prioritized(imageRewriter{baseDir: opts.BaseDir}, imageRewritePriority),
			),
		))
	}

	return goldmark.New(gmOpts...)
}
