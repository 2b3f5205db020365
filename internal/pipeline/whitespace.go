package pipeline

import (
	"regexp"
	"strings"
)

var (
	trailingSpace      = regexp.MustCompile(`(?m)[ \t]+$`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// NormalizeWhitespace strips trailing spaces from every line, limits blank
// line runs to one empty line, and trims the document. It is idempotent.
//
// Trailing spaces go first: a run of space-only lines only becomes a run
// of newlines once they are stripped.
func NormalizeWhitespace(content string) string {
	content = stripTrailingSpace(content)
	content = compressBlankLines(content)
	return strings.TrimSpace(content)
}

// stripTrailingSpace removes spaces and tabs at the end of each line.
func stripTrailingSpace(content string) string {
	return trailingSpace.ReplaceAllLiteralString(content, "")
}

// compressBlankLines collapses three or more consecutive newlines to two.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllLiteralString(content, "\n\n")
}
