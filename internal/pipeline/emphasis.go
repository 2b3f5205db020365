package pipeline

import "regexp"

var (
	boldPattern          = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern        = regexp.MustCompile(`\*([^*\n]+?)\*`)
	strikethroughPattern = regexp.MustCompile(`~~(.+?)~~`)
)

// Emphasis converts bold, then italic, then strikethrough spans.
// Bold must go first: otherwise each of its asterisk pairs would be read
// as a separate italic delimiter.
func Emphasis(content string) string {
	content = boldPattern.ReplaceAllString(content, "【$1】")
	content = italicPattern.ReplaceAllString(content, "[$1]")
	content = strikethroughPattern.ReplaceAllString(content, "~$1~")
	return content
}
