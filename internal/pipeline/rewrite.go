package pipeline

import (
	"regexp"
	"strings"
)

// replaceSubmatchFunc replaces every match of re in s with the result of
// repl, which receives the full match followed by each capture group.
// Groups that did not participate in the match are passed as "".
func replaceSubmatchFunc(re *regexp.Regexp, s string, repl func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	last := 0
	groups := make([]string, re.NumSubexp()+1)
	for _, m := range matches {
		for i := range groups {
			start, end := m[2*i], m[2*i+1]
			if start < 0 {
				groups[i] = ""
				continue
			}
			groups[i] = s[start:end]
		}
		b.WriteString(s[last:m[0]])
		b.WriteString(repl(groups))
		last = m[1]
	}
	b.WriteString(s[last:])

	return b.String()
}
