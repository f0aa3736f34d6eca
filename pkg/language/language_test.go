package language

import (
	"testing"
)

func TestDetector_Detect(t *testing.T) {
	detector := NewDetector()

	tests := []struct {
		name string
		text string
		want Tag
	}{
		{
			name: "english page text",
			text: "Full day guided tour of the Arenal volcano with lunch and hotel pickup included.",
			want: English,
		},
		{
			name: "spanish page text",
			text: "Casa de tres habitaciones en venta cerca de la playa con piscina y jardín amplio.",
			want: Spanish,
		},
		{
			name: "empty text",
			text: "",
			want: Unknown,
		},
		{
			name: "whitespace only",
			text: "   \n\t  ",
			want: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detector.Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetector_LongInputBounded(t *testing.T) {
	detector := NewDetector()

	long := make([]byte, 0, 100_000)
	for len(long) < 100_000 {
		long = append(long, "the quick brown fox jumps over the lazy dog "...)
	}

	if got := detector.Detect(string(long)); got != English {
		t.Errorf("Detect(long english text) = %q, want %q", got, English)
	}
}

func TestDetector_LongAccentedInputBounded(t *testing.T) {
	detector := NewDetector()

	// The accented runes are multi-byte, so the sample cut can land inside
	// one of them.
	long := make([]byte, 0, 100_000)
	for len(long) < 100_000 {
		long = append(long, "la casa está cerca de la playa y tiene un jardín amplio "...)
	}

	if got := detector.Detect(string(long)); got != Spanish {
		t.Errorf("Detect(long spanish text) = %q, want %q", got, Spanish)
	}
}
