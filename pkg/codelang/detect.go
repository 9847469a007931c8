// Package codelang guesses the language of a code sample.
// It backs the slide outline, which lists the languages of fenced code
// blocks even when a fence carries no info string.
package codelang

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Text is returned when no language can be determined with confidence.
const Text = "text"

// candidates restricts the classifier to languages commonly shown on slides.
//
//nolint:gochecknoglobals // Read-only lookup table.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Dockerfile",
}

// patterns are checked in order before falling back to the classifier.
//
//nolint:gochecknoglobals // Read-only lookup table.
var patterns = []struct {
	lang  string
	match func(trimmed []byte) bool
}{
	{"go", func(b []byte) bool { return bytes.HasPrefix(b, []byte("package ")) }},
	{"html", func(b []byte) bool {
		lower := bytes.ToLower(b)
		return bytes.HasPrefix(lower, []byte("<!doctype html")) || bytes.HasPrefix(lower, []byte("<html"))
	}},
	{"json", func(b []byte) bool {
		return (bytes.HasPrefix(b, []byte("{")) || bytes.HasPrefix(b, []byte("["))) &&
			bytes.Contains(b, []byte(`"`)) && !bytes.Contains(b, []byte(";"))
	}},
	{"dockerfile", func(b []byte) bool {
		return bytes.HasPrefix(b, []byte("FROM ")) && bytes.Contains(b, []byte("\nRUN "))
	}},
	{"sql", func(b []byte) bool {
		upper := strings.ToUpper(string(b))
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if strings.HasPrefix(upper, kw) {
				return true
			}
		}
		return false
	}},
	{"rust", func(b []byte) bool {
		return bytes.Contains(b, []byte("fn main()")) || bytes.Contains(b, []byte("println!"))
	}},
	{"python", func(b []byte) bool {
		return bytes.Contains(b, []byte("def ")) && bytes.Contains(b, []byte("):"))
	}},
}

// Detect returns a fence tag such as "go" or "bash" for content, or Text.
func Detect(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return Text
	}

	if lang, safe := enry.GetLanguageByShebang(trimmed); safe {
		return normalize(lang)
	}

	for _, p := range patterns {
		if p.match(trimmed) {
			return p.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(trimmed, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return Text
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "C++":
		return "cpp"
	default:
		return strings.ToLower(lang)
	}
}
