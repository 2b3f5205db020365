package pipeline

import (
	"regexp"
	"strings"
)

var (
	// Any line bounded by pipes.
	tableRowPattern = regexp.MustCompile(`(?m)^\|.*\|$`)

	// Header separator: pipe-delimited runs of dashes with optional
	// alignment colons.
	tableSeparatorPattern = regexp.MustCompile(`^\|(?:[ \t]*:?-+:?[ \t]*\|)+$`)

	multipleSpaces = regexp.MustCompile(` {2,}`)
)

// Tables blanks out separator rows and re-spaces the pipes of every other
// pipe-bounded row. Column widths and cell counts are not checked.
func Tables(content string) string {
	return tableRowPattern.ReplaceAllStringFunc(content, reflowTableRow)
}

// reflowTableRow rewrites a single pipe-bounded line.
func reflowTableRow(row string) string {
	if tableSeparatorPattern.MatchString(row) {
		return ""
	}
	row = strings.ReplaceAll(row, "|", " | ")
	row = multipleSpaces.ReplaceAllString(row, " ")
	return strings.TrimSpace(row)
}
