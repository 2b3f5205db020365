// Package logging builds the zerolog logger used by the CLI.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrInvalidFormat is returned for formats other than console and json.
var ErrInvalidFormat = errors.New("invalid log format")

// Config holds logger settings.
type Config struct {
	Level   string // trace, debug, info, warn, error (default info)
	Format  string // console or json (default console)
	NoColor bool
}

// New returns a logger writing to w. Unknown levels are an error; an empty
// level means info and an empty format means console.
func New(w io.Writer, cfg Config) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("parsing log level: %w", err)
		}
		level = parsed
	}

	var zl zerolog.Logger
	switch strings.ToLower(cfg.Format) {
	case "", FormatConsole:
		zl = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05",
			NoColor:    cfg.NoColor,
		})
	case FormatJSON:
		zl = zerolog.New(w)
	default:
		return zerolog.Nop(), fmt.Errorf("%w: %q", ErrInvalidFormat, cfg.Format)
	}

	return zl.Level(level).With().Timestamp().Logger(), nil
}
