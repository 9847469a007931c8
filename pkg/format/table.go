package format

import (
	"strconv"
	"strings"
)

// Table returns an empty GFM table with a header row and rows-1 body rows,
// framed by a leading newline and a trailing blank line so it can be inserted
// at the caret.
func Table(rows, cols int) string {
	if rows < 1 || cols < 1 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n| ")
	for i := range cols {
		b.WriteString("Header ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(" | ")
	}
	b.WriteString("\n| ")
	for range cols {
		b.WriteString("---------- | ")
	}
	b.WriteString("\n")
	for range rows - 1 {
		b.WriteString("| ")
		for range cols {
			b.WriteString("Cell | ")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	return b.String()
}
