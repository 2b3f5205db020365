package main

import (
	"errors"
	"os"

	flag "github.com/spf13/pflag"

	md2txt "github.com/alnah/go-md2txt"
	"github.com/alnah/go-md2txt/internal/config"
	"github.com/alnah/go-md2txt/internal/fileutil"
	"github.com/alnah/go-md2txt/internal/logging"
)

// Exit codes for md2txt CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error, failed files, lint findings
	ExitUsage   = 2 // Invalid flags, config, or input
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage errors first: config not found also wraps os.ErrNotExist paths.
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrInvalidExtension) ||
		errors.Is(err, fileutil.ErrExtensionEmpty) ||
		errors.Is(err, fileutil.ErrExtensionPathTraversal) ||
		errors.Is(err, md2txt.ErrEmptyMarkdown) ||
		errors.Is(err, md2txt.ErrInputTooLarge) ||
		errors.Is(err, md2txt.ErrFrontMatter) ||
		errors.Is(err, logging.ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrOutputIsInput) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, flag.ErrHelp) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteText) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrCreateOutputDir) ||
		errors.Is(err, ErrNoMarkdownFiles) {
		return ExitIO
	}

	return ExitGeneral
}
