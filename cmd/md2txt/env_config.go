package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-md2txt/internal/config"
)

// envPrefix marks environment variables read by md2txt.
const envPrefix = "MD2TXT_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath  string // MD2TXT_CONFIG: config file name or path
	InputDir    string // MD2TXT_INPUT_DIR: default input directory
	OutputDir   string // MD2TXT_OUTPUT_DIR: default output directory
	Workers     int    // MD2TXT_WORKERS: parallel workers
	LogLevel    string // MD2TXT_LOG_LEVEL: trace, debug, info, warn, error
	LogFormat   string // MD2TXT_LOG_FORMAT: console, json
	FrontMatter bool   // MD2TXT_FRONT_MATTER: strip front matter
}

// knownEnvVars lists valid MD2TXT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2TXT_CONFIG":       true,
	"MD2TXT_INPUT_DIR":    true,
	"MD2TXT_OUTPUT_DIR":   true,
	"MD2TXT_WORKERS":      true,
	"MD2TXT_LOG_LEVEL":    true,
	"MD2TXT_LOG_FORMAT":   true,
	"MD2TXT_FRONT_MATTER": true,
}

// loadEnvConfig reads configuration through getenv.
// Malformed numeric and boolean values are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MD2TXT_CONFIG"),
		InputDir:   getenv("MD2TXT_INPUT_DIR"),
		OutputDir:  getenv("MD2TXT_OUTPUT_DIR"),
		LogLevel:   getenv("MD2TXT_LOG_LEVEL"),
		LogFormat:  getenv("MD2TXT_LOG_FORMAT"),
	}

	if workers := getenv("MD2TXT_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	if fm := getenv("MD2TXT_FRONT_MATTER"); fm != "" {
		if b, err := strconv.ParseBool(fm); err == nil {
			cfg.FrontMatter = b
		}
	}

	return cfg
}

// warnUnknownEnvVars prints warnings for unrecognized MD2TXT_* variables.
// Helps catch typos like MD2TXT_WORKER instead of MD2TXT_WORKERS.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > config file > env vars > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Workers > 0 && cfg.Workers == 0 {
		cfg.Workers = env.Workers
	}
	if env.LogLevel != "" && cfg.Log.Level == "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogFormat != "" && cfg.Log.Format == "" {
		cfg.Log.Format = env.LogFormat
	}
	if env.FrontMatter && !cfg.Convert.FrontMatter {
		cfg.Convert.FrontMatter = true
	}
}
