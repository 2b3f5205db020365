package md2txt

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrInputTooLarge = errors.New("markdown content exceeds size limit")
	ErrFrontMatter   = errors.New("invalid front matter")
	ErrLint          = errors.New("lint failed")
)
