package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"
	"go.uber.org/automaxprocs/maxprocs"

	md2txt "github.com/alnah/go-md2txt"
	"github.com/alnah/go-md2txt/internal/config"
	"github.com/alnah/go-md2txt/internal/fileutil"
	"github.com/alnah/go-md2txt/internal/logging"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrReadMarkdown     = errors.New("failed to read markdown")
	ErrWriteText        = errors.New("failed to write text file")
	ErrCreateOutputDir  = errors.New("failed to create output directory")
	ErrNoMarkdownFiles  = errors.New("no markdown files found")
	ErrConversionFailed = errors.New("conversion failed")
	ErrLintFindings     = errors.New("lint findings reported")
)

const (
	stdinArg         = "-" // input argument that selects standard input
	defaultExtension = ".txt"
)

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	if !flags.common.quiet && env.Environ != nil {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}
	envCfg := loadEnvConfig(env.getenv)

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}

	// Priority: CLI flags > config file > env vars > defaults
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	env.Config = cfg

	logger, err := logging.New(env.Stderr, logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		NoColor: cfg.Log.NoColor,
	})
	if err != nil {
		return err
	}
	if env.AdjustMaxProcs {
		setMaxProcs(logger)
	}

	conv := md2txt.New(buildOptions(cfg, logger)...)

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output.path, cfg)
	ext := outputExtension(cfg)

	var files []FileToConvert
	if inputPath == stdinArg {
		files = []FileToConvert{{InputPath: stdinArg, OutputPath: stdinOutputPath(flags.output.path, ext)}}
	} else {
		files, err = discoverFiles(inputPath, outputDir, ext)
		if err != nil {
			return fmt.Errorf("discovering files: %w", err)
		}
		if len(files) == 0 {
			return fmt.Errorf("%w in %s", ErrNoMarkdownFiles, inputPath)
		}
	}

	workers := md2txt.ResolveWorkers(cfg.Workers)
	logger.Debug().Int("files", len(files)).Int("workers", workers).Msg("starting conversion")

	results := convertBatch(ctx, conv, files, batchOptions{
		workers:  workers,
		toStdout: flags.output.stdout,
		stdin:    env.Stdin,
	})

	writeTexts(env.Stdout, results)
	findings := printFindings(env.Stderr, results)
	failed := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)

	if err := ctx.Err(); err != nil {
		return err
	}
	if failed > 0 {
		// A lone failure keeps its cause so the exit code stays specific.
		if len(results) == 1 {
			return fmt.Errorf("%w: %w", ErrConversionFailed, results[0].Err)
		}
		return fmt.Errorf("%w: %d of %d file(s)", ErrConversionFailed, failed, len(results))
	}
	if cfg.Lint.FailOnFindings && findings > 0 {
		return fmt.Errorf("%w: %d finding(s)", ErrLintFindings, findings)
	}
	return nil
}

// loadConfig loads the config named by flag or MD2TXT_CONFIG, or the defaults.
func loadConfig(flagConfig string, env *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = env.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.transcode.frontMatter {
		cfg.Convert.FrontMatter = true
	}
	if flags.transcode.lint {
		cfg.Lint.Enabled = true
	}
	if flags.common.logFormat != "" {
		cfg.Log.Format = flags.common.logFormat
	}

	// Verbose wins over quiet
	switch {
	case flags.common.verbose:
		cfg.Log.Level = "debug"
	case flags.common.quiet:
		cfg.Log.Level = "error"
	}
}

// buildOptions translates config into converter options.
func buildOptions(cfg *config.Config, logger zerolog.Logger) []md2txt.Option {
	opts := []md2txt.Option{
		md2txt.WithLineEndings(cfg.Convert.LineEndings),
		md2txt.WithFrontMatter(cfg.Convert.FrontMatter),
		md2txt.WithLint(cfg.Lint.Enabled),
		md2txt.WithLogger(logger),
	}
	if cfg.Convert.MaxInputSize > 0 {
		opts = append(opts, md2txt.WithMaxInputSize(cfg.Convert.MaxInputSize))
	}
	return opts
}

// setMaxProcs matches GOMAXPROCS to the container CPU quota.
func setMaxProcs(logger zerolog.Logger) {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug().Msgf(format, args...)
	}))
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// outputExtension returns the configured extension, defaulting to ".txt".
func outputExtension(cfg *config.Config) string {
	if cfg.Output.Extension == "" {
		return defaultExtension
	}
	return cfg.Output.Extension
}

// stdinOutputPath resolves where text read from stdin goes. Only the -o flag
// counts; an empty result means stdout.
func stdinOutputPath(flagOutput, ext string) string {
	if flagOutput != "" && fileutil.DirExists(flagOutput) {
		return filepath.Join(flagOutput, "stdin"+ext)
	}
	return flagOutput
}

// writeTexts prints the text of results that were not written to files.
// A header separates documents when there is more than one.
func writeTexts(w io.Writer, results []ConversionResult) {
	var printed []ConversionResult
	for _, r := range results {
		if r.Err == nil && r.OutputPath == "" {
			printed = append(printed, r)
		}
	}

	for i, r := range printed {
		if len(printed) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "==> %s <==\n", r.InputPath)
		}
		fmt.Fprintln(w, r.Text)
	}
}

// printFindings writes lint findings as "path:line: kind: message" and
// returns how many were printed.
func printFindings(w io.Writer, results []ConversionResult) int {
	count := 0
	for _, r := range results {
		for _, f := range r.Findings {
			fmt.Fprintf(w, "%s:%d: %s: %s\n", r.InputPath, f.Line, f.Kind, f.Message)
			count++
		}
	}
	return count
}
