package pipeline

import "regexp"

// Line-level block patterns. Leading indentation is captured so nested
// items keep their depth.
var (
	blockquotePattern    = regexp.MustCompile(`(?m)^> ?(.*)$`)
	checkedItemPattern   = regexp.MustCompile(`(?m)^([ \t]*)- \[x\] (.*)$`)
	uncheckedItemPattern = regexp.MustCompile(`(?m)^([ \t]*)- \[ \] (.*)$`)
	orderedItemPattern   = regexp.MustCompile(`(?m)^([ \t]*)(\d+\.)[ \t]+(.*)$`)
	unorderedItemPattern = regexp.MustCompile(`(?m)^([ \t]*)[-*+][ \t]+(.*)$`)
)

// Blockquotes normalizes quote prefixes to "> ". The marker is kept.
func Blockquotes(content string) string {
	return blockquotePattern.ReplaceAllString(content, "> $1")
}

// Checklists converts task-list items to check-box glyphs. It must run
// before UnorderedLists, which would otherwise claim the leading "- ".
// Only a lowercase x marks an item as done.
func Checklists(content string) string {
	content = checkedItemPattern.ReplaceAllString(content, "${1}☑ $2")
	content = uncheckedItemPattern.ReplaceAllString(content, "${1}☐ $2")
	return content
}

// OrderedLists collapses the gap after "N." to a single space.
// Numbers are kept as written, never renumbered.
func OrderedLists(content string) string {
	return orderedItemPattern.ReplaceAllString(content, "$1$2 $3")
}

// UnorderedLists replaces "-", "*" and "+" bullets with "・".
func UnorderedLists(content string) string {
	return unorderedItemPattern.ReplaceAllString(content, "${1}・$2")
}
