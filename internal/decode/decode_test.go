package decode

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBytesEmpty(t *testing.T) {
	text, charset := Bytes(nil)
	if text != "" {
		t.Errorf("expected empty text, got %q", text)
	}
	if charset != "UTF-8" {
		t.Errorf("expected UTF-8 charset, got %q", charset)
	}
}

func TestBytesASCII(t *testing.T) {
	input := "plain ascii body content, long enough for the detector to settle on something sane"
	text, _ := Bytes([]byte(input))
	if text != input {
		t.Errorf("ASCII round trip changed content: %q", text)
	}
}

func TestBytesValidUTF8(t *testing.T) {
	input := `{"greeting": "héllo wörld"}`
	text, _ := Bytes([]byte(input))
	if text != input {
		t.Errorf("UTF-8 round trip changed content: %q", text)
	}
}

func TestBytesInvalidSequencesAreLossy(t *testing.T) {
	// Broken bytes must never surface as an error; they degrade to
	// replacement runes.
	input := []byte{'o', 'k', 0xff, 0xfe, 0xfd, 'e', 'n', 'd'}
	text, _ := Bytes(input)
	if text == "" {
		t.Fatal("expected non-empty text for undecodable input")
	}
	if !utf8.ValidString(text) {
		t.Errorf("decoded text is not valid UTF-8: %q", text)
	}
	if !strings.Contains(text, "ok") || !strings.Contains(text, "end") {
		t.Errorf("decodable portions lost: %q", text)
	}
}

func TestUnescapeUnicode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no escapes",
			input:    "plain text",
			expected: "plain text",
		},
		{
			name:     "cjk escapes",
			input:    `你好`,
			expected: "你好",
		},
		{
			name:     "mixed content",
			input:    `{"msg":"état"}`,
			expected: `{"msg":"état"}`,
		},
		{
			name:     "surrogate pair combines",
			input:    `😀`,
			expected: "😀",
		},
		{
			name:     "surrogate pair with uppercase hex",
			input:    `grin 😁 end`,
			expected: "grin 😁 end",
		},
		{
			name:     "unpaired high surrogate kept verbatim",
			input:    `\ud83d alone`,
			expected: `\ud83d alone`,
		},
		{
			name:     "high surrogate before bmp escape",
			input:    `\ud83dA`,
			expected: `\ud83dA`,
		},
		{
			name:     "malformed hex kept verbatim",
			input:    `\uZZZZ stays`,
			expected: `\uZZZZ stays`,
		},
		{
			name:     "truncated escape kept verbatim",
			input:    `tail \u12`,
			expected: `tail \u12`,
		},
		{
			name:     "backslash without u",
			input:    `a\nb`,
			expected: `a\nb`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnescapeUnicode(tt.input); got != tt.expected {
				t.Errorf("UnescapeUnicode(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
