package md2txt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-md2txt/internal/yamlutil"
)

// frontMatterPattern matches a YAML block delimited by "---" lines at the
// very start of the document. The body group is absent for an empty block.
var frontMatterPattern = regexp.MustCompile(`\A---[ \t]*\n(?:((?s:.*?))\n)??---[ \t]*(?:\n|\z)`)

// splitFrontMatter removes a leading front-matter block from content.
// It returns the parsed block (nil when there is none), the remaining body,
// and the number of source lines that were removed. A block whose first line
// does not look like metadata is a thematic break and stays in the body.
func splitFrontMatter(content string) (map[string]any, string, int, error) {
	loc := frontMatterPattern.FindStringSubmatchIndex(content)
	if loc == nil {
		return nil, content, 0, nil
	}

	block := content[:loc[1]]
	body := content[loc[1]:]
	removed := strings.Count(block, "\n")
	if !strings.HasSuffix(block, "\n") {
		removed++
	}

	if loc[2] < 0 || strings.TrimSpace(content[loc[2]:loc[3]]) == "" {
		return map[string]any{}, body, removed, nil
	}

	firstLine, _, _ := strings.Cut(content[loc[2]:loc[3]], "\n")
	if !metadataLikely(firstLine) {
		return nil, content, 0, nil
	}

	meta, err := yamlutil.DecodeMap([]byte(content[loc[2]:loc[3]]))
	if err != nil {
		return nil, content, 0, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	return meta, body, removed, nil
}

// metadataLikely reports whether line can open a YAML front-matter block:
// a flow collection, or a key separated by ':' or '='.
func metadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.ContainsAny(trimmed, ":=")
}

// normalizeLineEndings converts CRLF and lone CR to LF.
func normalizeLineEndings(content string) string {
	if !strings.ContainsRune(content, '\r') {
		return content
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\r", "\n")
}
