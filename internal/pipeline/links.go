package pipeline

import "regexp"

var (
	// ![alt](url "title"); the title is optional.
	imagePattern = regexp.MustCompile(`!\[[^\]]*\]\(([^)\s]+)(?:\s+"([^"]*)")?\)`)

	// [text](url)
	linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// LinksAndImages rewrites images, then links, as "URL (label)".
// Images go first so the link rule never sees their bracket structure.
// Image alt text is dropped; the title, when present, is the label.
func LinksAndImages(content string) string {
	content = replaceSubmatchFunc(imagePattern, content, func(groups []string) string {
		if groups[2] == "" {
			return groups[1]
		}
		return groups[1] + " (" + groups[2] + ")"
	})
	return linkPattern.ReplaceAllString(content, "$2 ($1)")
}
