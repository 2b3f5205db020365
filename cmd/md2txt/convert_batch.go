package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	md2txt "github.com/alnah/go-md2txt"
	"github.com/alnah/go-md2txt/internal/config"
	"github.com/alnah/go-md2txt/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input md2txt.Input) (*md2txt.Result, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*md2txt.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string // Empty when Text goes to stdout
	Text       string
	Findings   []md2txt.Finding
	Err        error
	Duration   time.Duration
}

// batchOptions configures a batch run.
type batchOptions struct {
	workers  int
	toStdout bool      // Keep text in results instead of writing files
	stdin    io.Reader // Source for the "-" input
}

// convertBatch processes files concurrently with a fixed set of workers.
// Results are returned in the order of files.
func convertBatch(ctx context.Context, conv CLIConverter, files []FileToConvert, opts batchOptions) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := max(opts.workers, 1)
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], opts)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, opts batchOptions) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	if opts.toStdout {
		result.OutputPath = ""
	}

	fromStdin := f.InputPath == stdinArg
	content, err := readInput(f.InputPath, opts.stdin)
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	// Empty files convert to empty text; empty stdin is almost always a mistake.
	convResult, err := conv.Convert(ctx, md2txt.Input{
		Markdown:   string(content),
		Name:       f.InputPath,
		AllowEmpty: !fromStdin,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	result.Text = convResult.Text
	result.Findings = convResult.Findings

	if result.OutputPath != "" {
		if err := writeText(result.OutputPath, convResult.Text); err != nil {
			result.Err = err
		}
	}

	result.Duration = time.Since(start)
	return result
}

// readInput reads a markdown file, or stdin for "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path != stdinArg {
		return os.ReadFile(path) // #nosec G304 -- discovered path
	}
	if stdin == nil {
		return nil, fmt.Errorf("%w: stdin unavailable", ErrNoInput)
	}
	return io.ReadAll(io.LimitReader(stdin, config.MaxInputSizeLimit+1))
}

// writeText writes text, newline-terminated, creating parent directories.
func writeText(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrCreateOutputDir, err)
	}

	data := []byte(text)
	if text != "" {
		data = append(data, '\n')
	}
	if err := fileutil.WriteFileAtomic(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteText, err)
	}
	return nil
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResultsWithWriter outputs conversion results using the provided writers.
// Status lines go to stderr when the text itself is printed to stdout.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	status := env.Stdout
	for _, r := range results {
		if r.Err == nil && r.OutputPath == "" {
			status = env.Stderr
			break
		}
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet || r.OutputPath == "" {
			continue
		}

		if verbose {
			fmt.Fprintf(status, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(status, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(status, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
