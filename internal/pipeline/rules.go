package pipeline

import "regexp"

var horizontalRulePattern = regexp.MustCompile(`(?m)^(?:-{3,}|\*{3,})$`)

// Rules replaces horizontal-rule lines with a fixed-width divider.
func Rules(content string) string {
	return horizontalRulePattern.ReplaceAllLiteralString(content, divider)
}
