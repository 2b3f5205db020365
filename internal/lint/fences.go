package lint

import (
	"regexp"
	"strings"
)

// Backtick fence line, optionally indented up to three spaces.
var fenceLinePattern = regexp.MustCompile("^ {0,3}```")

// fence is an opening backtick fence found by scanFences.
type fence struct {
	line   int
	closed bool
}

// scanFences pairs backtick fence lines in order, the way a reader would:
// each fence line either opens a block or closes the open one.
func scanFences(content string) []fence {
	var fences []fence
	open := -1

	for i, line := range strings.Split(content, "\n") {
		if !fenceLinePattern.MatchString(line) {
			continue
		}
		if open < 0 {
			fences = append(fences, fence{line: i + 1})
			open = len(fences) - 1
			continue
		}
		fences[open].closed = true
		open = -1
	}

	return fences
}
