package pipeline

import (
	"regexp"
	"strings"
	"testing"
)

func TestReplaceSubmatchFunc(t *testing.T) {
	t.Parallel()

	re := regexp.MustCompile(`(\w+)=(\d+)?`)
	upper := func(groups []string) string {
		return strings.ToUpper(groups[1]) + ":" + groups[2]
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no match returns input", "nothing here", "nothing here"},
		{"single match", "a=1", "A:1"},
		{"several matches keep surrounding text", "x a=1, b=2 y", "x A:1, B:2 y"},
		{"optional group missing", "k=", "K:"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := replaceSubmatchFunc(re, tt.input, upper)
			if got != tt.expected {
				t.Errorf("replaceSubmatchFunc() = %q, want %q", got, tt.expected)
			}
		})
	}
}
