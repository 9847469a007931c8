// Package slides splits a markdown document into slides and maps cursor
// offsets to and from slide indices.
//
// A slide boundary is a line whose content is exactly "---". Boundaries are
// found on the raw document with a line scanner, so a "---" line inside a
// fenced code block also separates slides. All offsets are byte offsets.
package slides
