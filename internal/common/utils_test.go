package common

import (
	"testing"
)

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "clean URL unchanged",
			in:   "https://example.com/page",
			want: "https://example.com/page",
		},
		{
			name: "surrounding whitespace",
			in:   "  https://example.com/page \n",
			want: "https://example.com/page",
		},
		{
			name: "trailing comma",
			in:   "https://example.com/page,",
			want: "https://example.com/page",
		},
		{
			name: "markdown link",
			in:   "[tour page](https://example.com/tours/d742-12345)",
			want: "https://example.com/tours/d742-12345",
		},
		{
			name: "wrapping parens",
			in:   "(https://example.com/page)",
			want: "https://example.com/page",
		},
		{
			name: "angle brackets",
			in:   "<https://example.com/page>",
			want: "https://example.com/page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeURL(tt.in); got != tt.want {
				t.Errorf("SanitizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeAndValidateURLs(t *testing.T) {
	input := []string{
		"https://example.com/good",
		" https://example.com/trimmed, ",
		"ftp://example.com/wrong-scheme",
		"not a url",
		"",
		"https://example.com/has space",
	}

	sanitized, invalid := SanitizeAndValidateURLs(input)

	if len(sanitized) != 2 {
		t.Fatalf("sanitized count = %d, want 2 (%v)", len(sanitized), sanitized)
	}
	if sanitized[0] != "https://example.com/good" {
		t.Errorf("sanitized[0] = %q", sanitized[0])
	}
	if sanitized[1] != "https://example.com/trimmed" {
		t.Errorf("sanitized[1] = %q", sanitized[1])
	}
	if len(invalid) != 4 {
		t.Errorf("invalid count = %d, want 4 (%v)", len(invalid), invalid)
	}
}
