package main

import (
	"strings"
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
		{name: "ShortStringUnchanged", input: "short title", maxLen: 50, expected: "short title"},
		{name: "ExactLengthUnchanged", input: "12345", maxLen: 5, expected: "12345"},
		{name: "LongStringEllipsized", input: "abcdefghij", maxLen: 8, expected: "abcde..."},
		{
			name:     "MultiByteCutOnCharacterBoundary",
			input:    strings.Repeat("週", 10),
			maxLen:   8,
			expected: strings.Repeat("週", 5) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.maxLen)
			if got != tt.expected {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8", tt.input, tt.maxLen)
			}
		})
	}
}
