package pipeline

import "testing"

func TestEmphasis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bold",
			input:    "**bold**",
			expected: "【bold】",
		},
		{
			name:     "italic",
			input:    "*italic*",
			expected: "[italic]",
		},
		{
			name:     "strikethrough",
			input:    "~~gone~~",
			expected: "~gone~",
		},
		{
			name:     "bold and italic on one line",
			input:    "**b** and *i*",
			expected: "【b】 and [i]",
		},
		{
			name:     "adjacent bold spans do not bleed",
			input:    "**a** **b**",
			expected: "【a】 【b】",
		},
		{
			name:     "adjacent italic spans do not bleed",
			input:    "*a* *b*",
			expected: "[a] [b]",
		},
		{
			name:     "italic inside bold",
			input:    "**very *much* so**",
			expected: "【very [much] so】",
		},
		{
			name:     "unterminated bold unchanged",
			input:    "**open",
			expected: "**open",
		},
		{
			name:     "unterminated italic unchanged",
			input:    "*open",
			expected: "*open",
		},
		{
			name:     "italic does not span lines",
			input:    "*a\nb*",
			expected: "*a\nb*",
		},
		{
			name:     "asterisk rule line untouched",
			input:    "***",
			expected: "***",
		},
		{
			name:     "single tildes untouched",
			input:    "~approx~",
			expected: "~approx~",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Emphasis(tt.input)
			if got != tt.expected {
				t.Errorf("Emphasis() = %q, want %q", got, tt.expected)
			}
		})
	}
}
