package slides

import (
	"strings"
	"unicode"
)

// Delimiter is the line content that separates two slides.
const Delimiter = "---"

// Delimiters returns the start offset of every delimiter line in doc, in
// document order. A trailing "\r" belongs to the line terminator, so CRLF
// documents are handled like LF ones.
func Delimiters(doc string) []int {
	var offsets []int

	lineStart := 0
	for lineStart <= len(doc) {
		rest := doc[lineStart:]
		next := len(doc) + 1
		if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
			rest = rest[:idx]
			next = lineStart + idx + 1
		}

		if strings.TrimSuffix(rest, "\r") == Delimiter {
			offsets = append(offsets, lineStart)
		}
		lineStart = next
	}

	return offsets
}

// Count returns the number of slides in doc. It is never less than one.
func Count(doc string) int {
	return len(Delimiters(doc)) + 1
}

// Split cuts doc at every delimiter line and returns the slides with
// surrounding whitespace trimmed. A document without delimiters is a single
// slide; the empty document yields one empty slide.
func Split(doc string) []string {
	offsets := Delimiters(doc)
	out := make([]string, 0, len(offsets)+1)

	prev := 0
	for _, off := range offsets {
		out = append(out, strings.TrimFunc(doc[prev:off], isSpace))
		prev = off + len(Delimiter)
	}
	out = append(out, strings.TrimFunc(doc[prev:], isSpace))

	return out
}

// IndexAtCursor returns the index of the slide containing cursor: the number
// of delimiters that start strictly before it. A cursor placed at the start of
// a delimiter line still belongs to the slide above.
func IndexAtCursor(doc string, cursor int) int {
	index := 0
	for _, off := range Delimiters(doc) {
		if cursor <= off {
			break
		}
		index++
	}
	return index
}

// StartPosition returns the offset of the first non-whitespace byte of the
// slide at index, or the offset right after the skipped whitespace when that
// slide is empty. Index 0 and any index without a matching delimiter map to 0.
func StartPosition(doc string, index int) int {
	if index == 0 {
		return 0
	}
	return startFrom(doc, Delimiters(doc), index)
}

func startFrom(doc string, offsets []int, index int) int {
	if index < 1 || index > len(offsets) {
		return 0
	}

	pos := offsets[index-1] + len(Delimiter)
	rest := doc[pos:]
	return pos + len(rest) - len(strings.TrimLeftFunc(rest, isSpace))
}

// isSpace matches the ECMAScript WhiteSpace and LineTerminator sets, which
// include U+FEFF and exclude U+0085.
func isSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}
