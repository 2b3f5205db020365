package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)

	for _, s := range []string{"Usage: md2txt", "Commands:", "convert", "stages", "version", "help", "completion"} {
		if !strings.Contains(buf.String(), s) {
			t.Errorf("printUsage output should contain %q", s)
		}
	}
}

func TestPrintConvertUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printConvertUsage(&buf)

	// Every registered flag is documented.
	fs := newConvertFlagSet(&convertFlags{})
	for _, f := range extractFlagsFromFlagSet(fs) {
		if !strings.Contains(buf.String(), "--"+f.Long) {
			t.Errorf("convert usage should document --%s", f.Long)
		}
	}
}

func TestRunStages(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	runStages(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 14 {
		t.Fatalf("got %d stage lines, want 14", len(lines))
	}
	if lines[0] != " 1. fenced-code" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[13] != "14. whitespace" {
		t.Errorf("last line = %q", lines[13])
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{"no topic", nil, "Commands:", nil},
		{"convert", []string{"convert"}, "Usage: md2txt convert", nil},
		{"stages", []string{"stages"}, "Usage: md2txt stages", nil},
		{"version", []string{"version"}, "Usage: md2txt version", nil},
		{"help", []string{"help"}, "Usage: md2txt help", nil},
		{"completion", []string{"completion"}, "Usage: md2txt completion", nil},
		{"unknown", []string{"bogus"}, "", ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv("", nil)
			err := runHelp(tt.args, env)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				if !strings.Contains(stderr.String(), "Usage: md2txt") {
					t.Error("unknown topic should print usage to stderr")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("stdout should contain %q, got %q", tt.want, stdout.String())
			}
		})
	}
}
