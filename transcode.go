package md2txt

import "github.com/alnah/go-md2txt/internal/pipeline"

// Transcode rewrites Markdown into plain text.
// It is total and pure: the same input always yields the same output.
func Transcode(markdown string) string {
	return pipeline.Transcode(markdown)
}

// Stages returns the pipeline stage names in application order.
func Stages() []string {
	stages := pipeline.Default().Stages()
	names := make([]string, len(stages))
	for i, s := range stages {
		names[i] = s.Name
	}
	return names
}
