package render

import (
	"fmt"
	"html/template"
	"io"
)

//nolint:gochecknoglobals // Parsed once, read-only.
var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
section.slide { box-sizing: border-box; min-height: 100vh; padding: 4rem; border-bottom: 1px solid #ddd; }
</style>
</head>
<body>
{{range $i, $s := .Slides}}<section class="slide" id="slide-{{$i}}" data-index="{{$i}}">
{{$s}}</section>
{{end}}</body>
</html>
`))

// WritePage writes a standalone HTML document with one section per rendered
// slide. The slides must come from Render or Deck; they are not escaped again.
func WritePage(w io.Writer, title string, rendered []string) error {
	trusted := make([]template.HTML, len(rendered))
	for i, s := range rendered {
		trusted[i] = template.HTML(s) //nolint:gosec // Produced by Deck.
	}

	err := pageTemplate.Execute(w, struct {
		Title  string
		Slides []template.HTML
	}{title, trusted})
	if err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}
