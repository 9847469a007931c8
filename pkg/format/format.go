// Package format toggles inline markdown markup around a selection.
package format

import (
	"github.com/yaklabco/mdslide/pkg/textedit"
)

// Selection is a byte range in a document. Start == End is a caret.
type Selection struct {
	Start int
	End   int
}

// Empty reports whether the selection is a caret.
func (s Selection) Empty() bool {
	return s.Start == s.End
}

// Result is the outcome of a toggle: the new document and the new selection.
type Result struct {
	Document string `json:"document"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
}

// Selection returns the selection held by r.
func (r Result) Selection() Selection {
	return Selection{Start: r.Start, End: r.End}
}

// Apply toggles m around sel in doc.
//
// A non-empty selection already bracketed by the marker has the marker
// removed; any other non-empty selection gets wrapped. The returned selection
// covers the same text in the new document. A caret gets an empty marker pair
// inserted and stays collapsed between the two halves.
//
// Offsets are clamped into the document and swapped if reversed.
func Apply(doc string, sel Selection, m Marker) Result {
	sel = normalize(sel, len(doc))
	selected := doc[sel.Start:sel.End]

	edits := textedit.NewBuilder()
	var start int

	switch {
	case sel.Empty():
		edits.Insert(sel.Start, m.Prefix+m.Suffix)
		start = sel.Start + len(m.Prefix)
	case surrounded(doc, sel, m):
		edits.Delete(sel.Start-len(m.Prefix), sel.Start)
		edits.Delete(sel.End, sel.End+len(m.Suffix))
		start = sel.Start - len(m.Prefix)
	default:
		edits.Insert(sel.Start, m.Prefix)
		edits.Insert(sel.End, m.Suffix)
		start = sel.Start + len(m.Prefix)
	}

	return applyEdits(doc, sel, edits, start, len(selected))
}

// applyEdits applies b to doc and places a selection of length n at start.
// A rejected edit set leaves doc and sel untouched.
func applyEdits(doc string, sel Selection, b *textedit.Builder, start, n int) Result {
	out, err := b.Apply(doc)
	if err != nil {
		return Result{Document: doc, Start: sel.Start, End: sel.End}
	}
	return Result{Document: out, Start: start, End: start + n}
}

// ApplyTextFormat toggles prefix and suffix around [start, end) in doc.
// The suffix defaults to the prefix.
func ApplyTextFormat(doc string, start, end int, prefix string, suffix ...string) Result {
	m := Symmetric(prefix)
	if len(suffix) > 0 {
		m.Suffix = suffix[0]
	}
	return Apply(doc, Selection{Start: start, End: end}, m)
}

// surrounded reports whether the marker sits right outside sel. Probes that
// would read outside the document never match.
func surrounded(doc string, sel Selection, m Marker) bool {
	before := sel.Start - len(m.Prefix)
	after := sel.End + len(m.Suffix)
	if before < 0 || after > len(doc) {
		return false
	}
	return doc[before:sel.Start] == m.Prefix && doc[sel.End:after] == m.Suffix
}

func normalize(sel Selection, n int) Selection {
	sel.Start = min(max(sel.Start, 0), n)
	sel.End = min(max(sel.End, 0), n)
	if sel.Start > sel.End {
		sel.Start, sel.End = sel.End, sel.Start
	}
	return sel
}
