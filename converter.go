package md2txt

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-md2txt/internal/lint"
	"github.com/alnah/go-md2txt/internal/pipeline"
)

// Converter orchestrates Markdown-to-text conversion.
// Create with New, then call Convert as often as needed from any goroutine.
type Converter struct {
	cfg      converterConfig
	pipeline pipeline.Pipeline
	linter   lint.Linter
	logger   zerolog.Logger
}

// New creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithFrontMatter, WithLint).
func New(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{
			lineEndings:  true,
			maxInputSize: DefaultMaxInputSize,
		},
		pipeline: pipeline.Default(),
		logger:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Create linter if enabled and not injected (e.g., by tests)
	if c.cfg.lint && c.linter == nil {
		c.linter = lint.New()
	}

	return c
}

// Convert transcodes input.Markdown and returns the plain text.
// The context is checked before each pipeline stage.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	start := time.Now()
	content := input.Markdown
	if c.cfg.lineEndings {
		content = normalizeLineEndings(content)
	}

	result = &Result{}
	lineOffset := 0
	if c.cfg.frontMatter {
		meta, body, removed, err := splitFrontMatter(content)
		if err != nil {
			return nil, err
		}
		result.FrontMatter = meta
		content = body
		lineOffset = removed
	}

	if c.linter != nil {
		findings, err := c.linter.Lint(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLint, err)
		}
		result.Findings = toFindings(findings, lineOffset)
	}

	text, err := c.pipeline.RunContext(ctx, content)
	if err != nil {
		return nil, err
	}
	result.Text = text

	c.logger.Debug().
		Str("document", input.Name).
		Int("in_bytes", len(input.Markdown)).
		Int("out_bytes", len(text)).
		Int("findings", len(result.Findings)).
		Bool("front_matter", result.FrontMatter != nil).
		Dur("elapsed", time.Since(start)).
		Msg("converted")

	return result, nil
}

// validateInput checks size and emptiness constraints.
func (c *Converter) validateInput(input Input) error {
	if input.Markdown == "" && !input.AllowEmpty {
		return ErrEmptyMarkdown
	}
	if len(input.Markdown) > c.cfg.maxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(input.Markdown), c.cfg.maxInputSize)
	}
	return nil
}
