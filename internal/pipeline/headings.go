package pipeline

import (
	"regexp"
	"strings"
)

// headingRuleWidth is the width of the dividers around a level 1 heading.
const headingRuleWidth = 14

var headingRule = strings.Repeat("─", headingRuleWidth)

// headingRewrite pairs a line pattern with its replacement template.
type headingRewrite struct {
	pattern     *regexp.Regexp
	replacement string
}

// headingRewrites run from level 6 down to level 1. Each pattern needs the
// exact hash count followed by a space, so at most one matches a line.
var headingRewrites = []headingRewrite{
	{regexp.MustCompile(`(?m)^#{6} (.*)$`), "└ ○ $1"},
	{regexp.MustCompile(`(?m)^#{5} (.*)$`), "├ ● $1"},
	{regexp.MustCompile(`(?m)^#{4} (.*)$`), "│ ◇ $1"},
	{regexp.MustCompile(`(?m)^#{3} (.*)$`), "┃ ◆ $1"},
	{regexp.MustCompile(`(?m)^#{2} (.*)$`), "■ $1"},
	{regexp.MustCompile(`(?m)^# (.*)$`), headingRule + "\n ■ $1\n" + headingRule},
}

// Headings converts ATX headings into visual markers. Level 1 headings are
// framed between two dividers.
func Headings(content string) string {
	for _, h := range headingRewrites {
		content = h.pattern.ReplaceAllString(content, h.replacement)
	}
	return content
}
