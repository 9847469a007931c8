package render

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// passthroughPrefixes mark image destinations that are already URLs.
//
//nolint:gochecknoglobals // Read-only lookup table.
var passthroughPrefixes = []string{"http", "data:", "asset:", "file:"}

// imageRewriter points relative image destinations at files next to the
// document.
type imageRewriter struct {
	baseDir string
}

func (r imageRewriter) Transform(doc *ast.Document, _ text.Reader, _ parser.Context) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if img, ok := n.(*ast.Image); ok && entering {
			img.Destination = []byte(ResolveImage(r.baseDir, string(img.Destination)))
		}
		return ast.WalkContinue, nil
	})
}

// ResolveImage returns the URL an image destination should load from when the
// document lives in baseDir. URLs and an empty baseDir leave dest unchanged;
// paths become file URLs, relative ones joined onto baseDir.
func ResolveImage(baseDir, dest string) string {
	if baseDir == "" || dest == "" {
		return dest
	}
	for _, prefix := range passthroughPrefixes {
		if strings.HasPrefix(dest, prefix) {
			return dest
		}
	}

	path := dest
	if !strings.HasPrefix(dest, "/") {
		path = filepath.Join(baseDir, dest)
	}

	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}
