package textutil

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "empty string with positive maxLen",
			input:    "",
			maxLen:   10,
			expected: "",
		},
		{
			name:     "empty string with zero maxLen",
			input:    "",
			maxLen:   0,
			expected: "...",
		},
		{
			name:     "string shorter than maxLen",
			input:    "hello",
			maxLen:   10,
			expected: "hello",
		},
		{
			name:     "string equal to maxLen",
			input:    "hello",
			maxLen:   5,
			expected: "hello",
		},
		{
			name:     "string longer than maxLen",
			input:    "Hi {name}, salary {salary_amount} due on {due_date}",
			maxLen:   10,
			expected: "Hi {name},...",
		},
		{
			name:     "negative maxLen",
			input:    "hello",
			maxLen:   -1,
			expected: "...",
		},
		{
			name:     "devanagari text cut on rune boundary",
			input:    "नमस्ते, आपका वेतन जमा हो गया है",
			maxLen:   10,
			expected: "नमस्ते, आप...",
		},
		{
			name:     "devanagari text shorter than maxLen",
			input:    "धन्यवाद",
			maxLen:   10,
			expected: "धन्यवाद",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxLen)
			if got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
			}
			if !utf8.ValidString(got) {
				t.Errorf("Truncate(%q, %d) = %q is not valid UTF-8", tt.input, tt.maxLen, got)
			}
		})
	}
}
