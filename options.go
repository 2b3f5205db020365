package md2txt

import "github.com/rs/zerolog"

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	lineEndings  bool
	frontMatter  bool
	lint         bool
	maxInputSize int
}

// DefaultMaxInputSize is the input limit used when WithMaxInputSize is not set.
const DefaultMaxInputSize = 10 << 20

// WithLineEndings toggles conversion of CRLF and lone CR to LF before
// transcoding. Enabled by default.
func WithLineEndings(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.lineEndings = enabled
	}
}

// WithFrontMatter toggles removal of a leading "---" delimited YAML block.
// The parsed block is returned in Result.FrontMatter.
func WithFrontMatter(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.frontMatter = enabled
	}
}

// WithLint toggles diagnostics in Result.Findings.
func WithLint(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.lint = enabled
	}
}

// WithMaxInputSize sets the largest accepted Markdown input, in bytes.
// Panics if n <= 0 (programmer error, similar to time.NewTicker).
func WithMaxInputSize(n int) Option {
	if n <= 0 {
		panic("md2txt: WithMaxInputSize limit must be positive")
	}
	return func(c *Converter) {
		c.cfg.maxInputSize = n
	}
}

// WithLogger sets the logger for debug output. Defaults to a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}
