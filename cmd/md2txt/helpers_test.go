package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	md2txt "github.com/alnah/go-md2txt"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment and mock converter
// ---------------------------------------------------------------------------

// newTestEnv returns an Environment backed by buffers and the given vars.
func newTestEnv(stdin string, vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    time.Now,
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(key string) string { return vars[key] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			return out
		},
	}
	return env, &stdout, &stderr
}

// mockConverter upper-cases input and records every call.
type mockConverter struct {
	mu       sync.Mutex
	inputs   []md2txt.Input
	failOn   map[string]error
	findings []md2txt.Finding
}

func (m *mockConverter) Convert(_ context.Context, in md2txt.Input) (*md2txt.Result, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, in)
	m.mu.Unlock()

	if err, ok := m.failOn[in.Name]; ok {
		return nil, err
	}
	return &md2txt.Result{Text: strings.ToUpper(in.Markdown), Findings: m.findings}, nil
}

func (m *mockConverter) calls() []md2txt.Input {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]md2txt.Input(nil), m.inputs...)
}

// writeFile creates path (and parents) under t.TempDir-style roots.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
