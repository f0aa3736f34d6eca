// Package language tags page text as English or Spanish. The corpus is
// bilingual and downstream keyword analytics needs to know which stopword
// list applies.
package language

import (
	"strings"

	"github.com/pemistahl/lingua-go"
	"github.com/ticofinder/webtriage/pkg/htmltext"
)

// Tag is a lowercase ISO 639-1 language code.
type Tag string

const (
	English Tag = "en"
	Spanish Tag = "es"
	Unknown Tag = "und"
)

// minSampleBytes is how much text the detector looks at. Language is
// decided well before this point and full pages can be hundreds of KB.
const minSampleBytes = 4096

// Detector wraps a lingua detector restricted to the two corpus languages.
type Detector struct {
	inner lingua.LanguageDetector
}

func NewDetector() *Detector {
	return &Detector{
		inner: lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.English, lingua.Spanish).
			Build(),
	}
}

// Detect returns the dominant language of the text. Empty or undecidable
// text yields Unknown rather than an error.
func (d *Detector) Detect(text string) Tag {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return Unknown
	}
	// Excerpt cuts on a rune boundary so the detector never sees a torn
	// multi-byte character.
	sample = htmltext.Excerpt(sample, minSampleBytes)

	detected, ok := d.inner.DetectLanguageOf(sample)
	if !ok {
		return Unknown
	}
	switch detected {
	case lingua.English:
		return English
	case lingua.Spanish:
		return Spanish
	default:
		return Unknown
	}
}
