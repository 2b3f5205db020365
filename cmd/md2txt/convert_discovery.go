package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	md2txt "github.com/alnah/go-md2txt"
	"github.com/alnah/go-md2txt/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrOutputIsInput      = errors.New("output path is the input file")
)

// FileToConvert represents a single file to process.
// An empty OutputPath sends the text to stdout.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all markdown files to convert.
// Directories are walked recursively in lexical order.
func discoverFiles(inputPath, outputDir, ext string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir, "", ext)
		if err := checkOutputPath(inputPath, outPath); err != nil {
			return nil, err
		}
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdownFile(path) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath, ext)
		if err := checkOutputPath(path, outPath); err != nil {
			return err
		}
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the text output path for a markdown file.
// An outputDir ending in ext names a single output file; otherwise the
// directory structure below baseInputDir is mirrored under outputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir, ext string) string {
	name := fileutil.ReplaceExt(filepath.Base(inputPath), ext)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), name)
	}

	if ext != "" && strings.HasSuffix(outputDir, ext) && baseInputDir == "" {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), name)
		}
	}

	return filepath.Join(outputDir, name)
}

// checkOutputPath refuses an output that would replace its own source.
func checkOutputPath(inputPath, outputPath string) error {
	if filepath.Clean(inputPath) == filepath.Clean(outputPath) {
		return fmt.Errorf("%w: %s", ErrOutputIsInput, inputPath)
	}
	return nil
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !fileutil.IsMarkdownFile(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > md2txt.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, md2txt.MaxWorkers)
	}
	return nil
}
