package pipeline

import "regexp"

// From "<" to the nearest ">", with no notion of nesting or quoting.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// StripHTML deletes every angle-bracket tag.
func StripHTML(content string) string {
	return htmlTagPattern.ReplaceAllLiteralString(content, "")
}
