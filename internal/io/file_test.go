package ioutils

import (
	"strings"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-file", "normal-file"},
		{"file:with:colons", "file_with_colons"},
		{"file<with>brackets", "file_with_brackets"},
		{"file/with\\slashes", "file_with_slashes"},
		{"file|with|pipes", "file_with_pipes"},
		{"file?with*wildcards", "file_with_wildcards"},
		{`file"with"quotes`, "file_with_quotes"},
		{"user@host", "user_host"},
		{"100% pure", "100_ pure"},
		{"loud!", "loud_"},
		{"one+one", "one_one"},
		{"multiple   spaces", "multiple spaces"},
		{"  leading and trailing  ", "leading and trailing"},
		{"tabs\tand\nnewlines", "tabs and newlines"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeFileName_NoReservedCharsRemain(t *testing.T) {
	const reserved = `<>@%!+:"/\|?*`

	inputs := []string{
		`a<b>c@d%e!f+g:h"i/j\k|l?m*n`,
		"Song: Part 1/2 (feat. Someone!)",
		strings.Repeat(`*?|`, 50),
	}

	for _, input := range inputs {
		got := SanitizeFileName(input)
		if strings.ContainsAny(got, reserved) {
			t.Errorf("SanitizeFileName(%q) = %q, still contains reserved characters", input, got)
		}
	}
}

func TestSanitizeFileName_Idempotent(t *testing.T) {
	inputs := []string{
		"plain name",
		"Song: Part 1/2",
		"  padded\twith\nwhitespace  ",
		`every<>@%!+:"/\|?*char`,
		"",
	}

	for _, input := range inputs {
		once := SanitizeFileName(input)
		twice := SanitizeFileName(once)
		if once != twice {
			t.Errorf("SanitizeFileName not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestSanitizeFileName_NormalizesUnicode(t *testing.T) {
	// e + combining acute accent composes to a single rune.
	decomposed := "Café"
	composed := "Café"

	if got := SanitizeFileName(decomposed); got != composed {
		t.Errorf("SanitizeFileName(%q) = %q, want %q", decomposed, got, composed)
	}
}
