package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-md2txt/internal/fileutil"
	"github.com/alnah/go-md2txt/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrEmptyConfigName  = errors.New("config name cannot be empty")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrFieldTooLong     = errors.New("field exceeds maximum length")
	ErrInvalidValue     = errors.New("invalid config value")
	ErrInvalidExtension = errors.New("invalid output extension")
)

// Field limits.
const (
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxExtensionLength = 16   // ".txt", ".text"
	MaxWorkers         = 32
	MaxInputSizeLimit  = 100 << 20
)

// DirName is the directory searched under the user config dir.
const DirName = "go-md2txt"

// Accepted enum values. Empty strings mean "use the default".
var (
	LogLevels  = []string{"trace", "debug", "info", "warn", "error"}
	LogFormats = []string{"console", "json"}
)

// Config holds all configuration for text generation.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Convert ConvertConfig `yaml:"convert"`
	Lint    LintConfig    `yaml:"lint"`
	Log     LogConfig     `yaml:"log"`
	Workers int           `yaml:"workers"` // 0 = auto
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	Extension  string `yaml:"extension"`  // Output file extension, with leading dot
}

// ConvertConfig defines transcoding options.
type ConvertConfig struct {
	FrontMatter  bool `yaml:"frontMatter"`  // Strip leading YAML front matter
	LineEndings  bool `yaml:"lineEndings"`  // Normalize CRLF to LF first
	MaxInputSize int  `yaml:"maxInputSize"` // Bytes; 0 = library default
}

// LintConfig defines diagnostics options.
type LintConfig struct {
	Enabled        bool `yaml:"enabled"`
	FailOnFindings bool `yaml:"failOnFindings"` // Exit non-zero when findings exist
}

// LogConfig defines logging options.
type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	NoColor bool   `yaml:"noColor"`
}

// Validate checks field lengths, enum values and numeric bounds.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.extension", c.Output.Extension, MaxExtensionLength); err != nil {
		return err
	}
	if c.Output.Extension != "" {
		if !strings.HasPrefix(c.Output.Extension, ".") {
			return fmt.Errorf("%w: %q must start with a dot", ErrInvalidExtension, c.Output.Extension)
		}
		if err := fileutil.ValidateExtension(c.Output.Extension); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidExtension, err)
		}
		if fileutil.IsMarkdownFile("x" + c.Output.Extension) {
			return fmt.Errorf("%w: %q would overwrite the markdown sources", ErrInvalidExtension, c.Output.Extension)
		}
	}

	if c.Convert.MaxInputSize < 0 || c.Convert.MaxInputSize > MaxInputSizeLimit {
		return fmt.Errorf("%w: convert.maxInputSize %d (must be 0-%d)", ErrInvalidValue, c.Convert.MaxInputSize, MaxInputSizeLimit)
	}
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers %d (must be 0-%d)", ErrInvalidValue, c.Workers, MaxWorkers)
	}

	if err := validateEnum("log.level", c.Log.Level, LogLevels); err != nil {
		return err
	}
	return validateEnum("log.format", c.Log.Format, LogFormats)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateEnum accepts empty values and members of allowed.
func validateEnum(fieldName, value string, allowed []string) error {
	if value == "" || slices.Contains(allowed, strings.ToLower(value)) {
		return nil
	}
	return fmt.Errorf("%w: %s %q (must be one of: %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, ", "))
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Output:  OutputConfig{Extension: ".txt"},
		Convert: ConvertConfig{LineEndings: true},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.ReadFile(configPath, cfg, yamlutil.Strict); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the files tried, in order, when loading a config by name:
// name.yaml and name.yml in the current directory, then in
// <user config dir>/go-md2txt/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, DirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
