package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		searched []string
		want     string
	}{
		{
			name:     "suggests user config path",
			searched: []string{"team.yaml", "team.yml", "/home/u/.config/go-md2txt/team.yaml"},
			want:     "\n  hint: use --config /path/to/file.yaml or create /home/u/.config/go-md2txt/team.yaml",
		},
		{
			name:     "no user path searched",
			searched: []string{"team.yaml"},
			want:     "\n  hint: use --config /path/to/file.yaml",
		},
		{
			name:     "nil paths",
			searched: nil,
			want:     "\n  hint: use --config /path/to/file.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ForConfigNotFound(tt.searched); got != tt.want {
				t.Errorf("ForConfigNotFound() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestForInputTooLarge(t *testing.T) {
	t.Parallel()

	got := ForInputTooLarge(1024)
	if !strings.Contains(got, "1024 bytes") {
		t.Errorf("ForInputTooLarge() = %q, want limit mentioned", got)
	}
}

func TestForLintFindings(t *testing.T) {
	t.Parallel()

	got := ForLintFindings()
	if strings.Count(got, "hint:") != 1 {
		t.Errorf("ForLintFindings() = %q, want a single hint line", got)
	}
	if !strings.Contains(got, "; ") {
		t.Errorf("ForLintFindings() = %q, want joined hints", got)
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	for name, h := range map[string]string{
		"ForOutputDirectory":  ForOutputDirectory(),
		"ForNoMarkdownFiles":  ForNoMarkdownFiles(),
		"ForInvalidExtension": ForInvalidExtension(),
		"ForLintFindings":     ForLintFindings(),
	} {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("%s() = %q, want hint prefix", name, h)
		}
	}

	if format("") != "" {
		t.Error(`format("") should be empty`)
	}
	if formatHints(nil) != "" {
		t.Error("formatHints(nil) should be empty")
	}
}
