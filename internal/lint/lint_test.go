package lint

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func kinds(findings []Finding) []Kind {
	out := make([]Kind, len(findings))
	for i, f := range findings {
		out[i] = f.Kind
	}
	return out
}

func hasFinding(findings []Finding, kind Kind, line int) bool {
	for _, f := range findings {
		if f.Kind == kind && f.Line == line {
			return true
		}
	}
	return false
}

func TestGoldmarkLinter_Lint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		kind  Kind
		line  int
	}{
		{
			name:  "heading inside code block",
			input: "intro\n\n```\n# not a heading\n```\n",
			kind:  KindCodeRewritten,
			line:  3,
		},
		{
			name:  "bold inside code span",
			input: "text `**x**` more\n",
			kind:  KindCodeRewritten,
			line:  1,
		},
		{
			name:  "html inside code span",
			input: "a\n\nuse `<br>` here\n",
			kind:  KindCodeRewritten,
			line:  3,
		},
		{
			name:  "unknown fence language",
			input: "```notalanguage\nx\n```\n",
			kind:  KindUnknownLanguage,
			line:  1,
		},
		{
			name:  "unterminated fence",
			input: "ok\n\n```go\nfunc main() {}\n",
			kind:  KindUnterminatedFence,
			line:  3,
		},
		{
			name:  "image alt dropped",
			input: "para\n\n![a diagram](arch.png)\n",
			kind:  KindImageAltDropped,
			line:  3,
		},
	}

	linter := New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			findings, err := linter.Lint(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !hasFinding(findings, tt.kind, tt.line) {
				t.Errorf("Lint() = %v, want a %s finding on line %d", findings, tt.kind, tt.line)
			}
		})
	}
}

func TestGoldmarkLinter_Lint_Clean(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"# Title\n\nPlain paragraph.\n",
		"```go\nx := 1\n```\n",
		"run `make build` now\n",
		"![](logo.png)\n",
		"- [x] done\n- [ ] todo\n",
	}

	linter := New()
	for _, in := range inputs {
		findings, err := linter.Lint(context.Background(), in)
		if err != nil {
			t.Fatalf("Lint(%q) error: %v", in, err)
		}
		if len(findings) != 0 {
			t.Errorf("Lint(%q) = %v, want no findings", in, findings)
		}
	}
}

func TestGoldmarkLinter_Lint_SortedByLine(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"![alt one](a.png)",
		"",
		"```nosuchlang",
		"- bullet in code",
		"```",
		"",
		"`*i*`",
	}, "\n")

	findings, err := New().Lint(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 1; i < len(findings); i++ {
		if findings[i].Line < findings[i-1].Line {
			t.Fatalf("findings not sorted by line: %v", findings)
		}
	}

	want := []Kind{KindImageAltDropped, KindCodeRewritten, KindUnknownLanguage, KindCodeRewritten}
	got := kinds(findings)
	if len(got) != len(want) {
		t.Fatalf("Lint() kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("finding %d kind = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestGoldmarkLinter_Lint_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Lint(ctx, "# x")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestFinding_String(t *testing.T) {
	t.Parallel()

	f := Finding{Kind: KindUnterminatedFence, Line: 4, Message: "never closed"}
	want := "line 4: unterminated-fence: never closed"
	if got := f.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScanFences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []fence
	}{
		{"no fences", "text", nil},
		{"closed fence", "```\nx\n```", []fence{{line: 1, closed: true}}},
		{"open fence", "a\n```go\nx", []fence{{line: 2}}},
		{
			name:     "second fence left open",
			input:    "```\na\n```\n\n```\nb",
			expected: []fence{{line: 1, closed: true}, {line: 5}},
		},
		{"indented fence counts", "   ```\nx\n   ```", []fence{{line: 1, closed: true}}},
		{"deeply indented fence ignored", "    ```\nx", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := scanFences(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("scanFences() = %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("fence %d = %+v, want %+v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}
