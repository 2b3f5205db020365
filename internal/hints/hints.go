// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"path/filepath"
	"strings"
)

// configDirName is the per-user config directory searched by name lookups.
const configDirName = "go-md2txt"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config dir.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/"+configDirName+"/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForNoMarkdownFiles returns hints when a directory holds nothing to convert.
func ForNoMarkdownFiles() string {
	return format("only .md and .markdown files are converted")
}

// ForInvalidExtension returns hints for rejected output extensions.
func ForInvalidExtension() string {
	return format(`use a non-markdown extension with a leading dot, such as ".txt"`)
}

// ForInputTooLarge returns hints for documents above the size limit.
func ForInputTooLarge(limit int) string {
	return format(fmt.Sprintf("limit is %d bytes; raise convert.maxInputSize in the config", limit))
}

// ForLintFindings returns hints when findings fail the run.
func ForLintFindings() string {
	return formatHints([]string{
		"each finding above names the line to rewrite",
		"set lint.failOnFindings: false to report without failing",
	})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
