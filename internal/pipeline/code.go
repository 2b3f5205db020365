package pipeline

import (
	"regexp"
	"strings"
)

// Code block markers.
const (
	codeHeaderLabel = "Code"
	dividerWidth    = 20
)

// divider is the fixed-width line used for code block footers and rules.
var divider = strings.Repeat("─", dividerWidth)

var (
	// Opening fence with an optional language word, then the body up to
	// the nearest closing fence.
	fencedCodePattern = regexp.MustCompile("(?s)```(\\w*)\\n(.*?)```")

	// Backtick-delimited span with no backtick inside.
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
)

// FencedCode converts fenced code blocks into bordered plain-text blocks.
// The body is trimmed but otherwise passed through verbatim, so later
// stages may still rewrite it.
func FencedCode(content string) string {
	return replaceSubmatchFunc(fencedCodePattern, content, func(groups []string) string {
		return codeHeader(groups[1]) + "\n" + strings.TrimSpace(groups[2]) + "\n" + divider
	})
}

// codeHeader builds the block header line, annotated with lang if present.
func codeHeader(lang string) string {
	if lang == "" {
		return "【" + codeHeaderLabel + "】"
	}
	return "【" + codeHeaderLabel + " (" + lang + ")】"
}

// InlineCode wraps code span content in one leading and two trailing
// backticks. Applying it twice yields a longer result each time.
func InlineCode(content string) string {
	return inlineCodePattern.ReplaceAllString(content, "`$1``")
}
