package pipeline

import "regexp"

var footnoteDefinitionPattern = regexp.MustCompile(`(?m)^\[\^([^\]]+)\]:[ \t]*`)

// Footnotes drops the colon from footnote definitions ("[^1]: text" becomes
// "[^1] text"). Inline references such as "[^1]" are left as they are.
func Footnotes(content string) string {
	return footnoteDefinitionPattern.ReplaceAllString(content, "[^$1] ")
}
