package md2txt

import (
	"fmt"

	"github.com/alnah/go-md2txt/internal/lint"
)

// Input contains the data for a single conversion.
type Input struct {
	Markdown string // Required unless AllowEmpty is set

	// Name identifies the document in logs (usually its path). Optional.
	Name string

	// AllowEmpty accepts empty Markdown and yields an empty Result.Text.
	AllowEmpty bool
}

// Result holds the output of a conversion.
type Result struct {
	Text string // Plain-text rendition

	// FrontMatter holds the parsed YAML block when front-matter stripping
	// is enabled and the document starts with one. Nil otherwise.
	FrontMatter map[string]any

	// Findings lists lint diagnostics when linting is enabled.
	Findings []Finding
}

// Finding is a lint diagnostic anchored to a 1-based source line.
type Finding struct {
	Kind    string // code-rewritten, unknown-language, unterminated-fence, image-alt-dropped
	Line    int
	Message string
}

// String formats the finding as "line N: kind: message".
func (f Finding) String() string {
	return fmt.Sprintf("line %d: %s: %s", f.Line, f.Kind, f.Message)
}

// toFindings converts internal lint findings to the public type.
// Line numbers are shifted by offset to account for stripped front matter.
func toFindings(in []lint.Finding, offset int) []Finding {
	if len(in) == 0 {
		return nil
	}
	out := make([]Finding, len(in))
	for i, f := range in {
		out[i] = Finding{
			Kind:    string(f.Kind),
			Line:    f.Line + offset,
			Message: f.Message,
		}
	}
	return out
}
