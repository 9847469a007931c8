package slides

import (
	"bytes"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/mdslide/pkg/codelang"
)

// maxTitleLen bounds titles taken from plain text lines.
const maxTitleLen = 60

// Summary describes one slide for the slide panel.
type Summary struct {
	// Index is the 0-based slide index.
	Index int `json:"index"`

	// Start is the offset StartPosition reports for this slide.
	Start int `json:"start"`

	// Title is the text of the first heading, or the first non-blank line.
	Title string `json:"title"`

	// Languages lists the fenced code languages in order of appearance.
	Languages []string `json:"languages,omitempty"`
}

// Outline summarizes every slide of doc.
func Outline(doc string) []Summary {
	offsets := Delimiters(doc)
	parts := Split(doc)
	parser := goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser()

	out := make([]Summary, 0, len(parts))
	for i, part := range parts {
		src := []byte(part)
		root := parser.Parse(text.NewReader(src))

		summary := Summary{Index: i, Start: startFrom(doc, offsets, i)}
		_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if !entering {
				return ast.WalkContinue, nil
			}
			switch node := n.(type) {
			case *ast.Heading:
				if summary.Title == "" {
					summary.Title = inlineText(node, src)
				}
				return ast.WalkSkipChildren, nil
			case *ast.FencedCodeBlock:
				if lang := fenceLanguage(node, src); !slices.Contains(summary.Languages, lang) {
					summary.Languages = append(summary.Languages, lang)
				}
				return ast.WalkSkipChildren, nil
			}
			return ast.WalkContinue, nil
		})

		if summary.Title == "" {
			summary.Title = firstLine(part)
		}
		out = append(out, summary)
	}

	return out
}

// inlineText concatenates the text leaves below n.
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := child.(*ast.Text); ok {
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(buf.String())
}

// fenceLanguage returns the info string language, or a detected one.
func fenceLanguage(n *ast.FencedCodeBlock, src []byte) string {
	if lang := n.Language(src); len(lang) > 0 {
		return string(lang)
	}

	var body bytes.Buffer
	lines := n.Lines()
	for i := range lines.Len() {
		seg := lines.At(i)
		body.Write(seg.Value(src))
	}
	return codelang.Detect(body.Bytes())
}

func firstLine(s string) string {
	for line := range strings.Lines(s) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if r := []rune(line); len(r) > maxTitleLen {
			return string(r[:maxTitleLen]) + "…"
		}
		return line
	}
	return ""
}
