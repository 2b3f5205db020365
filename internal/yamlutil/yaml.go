// Package yamlutil isolates the YAML dependency behind a small decoding API
// shared by config loading and front-matter parsing.
package yamlutil

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
	ErrNotMapping     = errors.New("yamlutil: document is not a mapping")
)

// Mode selects how unknown fields are handled.
type Mode int

const (
	// Lenient ignores fields the destination does not declare.
	Lenient Mode = iota
	// Strict rejects fields the destination does not declare.
	Strict
)

func (m Mode) options() []yaml.DecodeOption {
	if m == Strict {
		return []yaml.DecodeOption{yaml.Strict()}
	}
	return nil
}

// Decode parses data into v.
func Decode(data []byte, v any, mode Mode) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, mode.options()...); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// DecodeMap parses a YAML mapping into a generic map.
// A document holding only comments or "null" yields an empty map.
func DecodeMap(data []byte) (map[string]any, error) {
	var raw any
	if err := Decode(data, &raw, Lenient); err != nil {
		return nil, err
	}
	switch m := raw.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return m, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, raw)
	}
}

// ReadFile reads at most MaxInputSize bytes from path and decodes them into v.
func ReadFile(path string, v any, mode Mode) error {
	f, err := os.Open(path) // #nosec G304 -- path is user-provided config
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, int64(MaxInputSize)+1))
	if err != nil {
		return fmt.Errorf("yamlutil: reading %s: %w", path, err)
	}
	return Decode(data, v, mode)
}
