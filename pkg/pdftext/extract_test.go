package pdftext

import (
	"bytes"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"windows_line_endings", "Sec. 1. Title.\r\nbody\r\n", "Sec. 1. Title.\nbody"},
		{"legacy_mac_line_endings", "line one\rline two", "line one\nline two"},
		{"mixed_endings", "a\r\nb\rc\nd", "a\nb\nc\nd"},
		{"surrounding_whitespace", "  \n text \n  ", "text"},
		{"empty", "", ""},
		{"already_normalized", "a\nb", "a\nb"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Normalize(tc.input)
			if result != tc.expected {
				t.Errorf("Normalize(%q): got %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestExtractRejectsNonPDF(t *testing.T) {
	payload := []byte("this is not a pdf")
	if _, err := Extract(bytes.NewReader(payload), int64(len(payload))); err == nil {
		t.Error("expected error for non-PDF input")
	}
}

func TestExtractFileMissing(t *testing.T) {
	_, err := ExtractFile("testdata/does-not-exist.pdf")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "does-not-exist.pdf") {
		t.Errorf("error should name the file: %v", err)
	}
}
