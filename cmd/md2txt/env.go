package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-md2txt/internal/config"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, process environment, and configuration.
type Environment struct {
	Now     func() time.Time
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string
	Config  *config.Config // Loaded once, shared across the batch

	// AdjustMaxProcs sets GOMAXPROCS from the container CPU quota.
	AdjustMaxProcs bool
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
		Config:  config.DefaultConfig(),

		AdjustMaxProcs: true,
	}
}

// getenv is Getenv, or an empty lookup when none is injected.
func (e *Environment) getenv(key string) string {
	if e.Getenv == nil {
		return ""
	}
	return e.Getenv(key)
}
