package contenttype

import (
	"strings"

	"github.com/ticofinder/webtriage/models"
	"github.com/ticofinder/webtriage/pkg/registry"
)

// Scorer scores extracted page text against each category's keyword
// vocabulary.
type Scorer struct {
	registry *registry.Registry
}

func NewScorer(reg *registry.Registry) *Scorer {
	return &Scorer{registry: reg}
}

// KeywordScore is the winning category of a keyword scan.
type KeywordScore struct {
	Category   models.Category
	Confidence float64
	Matched    int

	// Met reports whether Confidence reached the threshold passed to
	// Score. Below-threshold winners are still returned so the cascade can
	// label them with a lower-confidence method instead of discarding them.
	Met bool
}

// Score counts, per category, how many of its keywords appear in the text
// and normalizes by the category's vocabulary size, so large vocabularies
// cannot win on raw word count alone. The winner is a strict argmax; ties
// keep registry order. ok is false only when no keyword of any category
// matched.
func (s *Scorer) Score(text string, minConfidence float64) (KeywordScore, bool) {
	lower := strings.ToLower(text)

	var best KeywordScore
	found := false

	for _, profile := range s.registry.Profiles() {
		if len(profile.Keywords) == 0 {
			continue
		}

		matched := 0
		for _, keyword := range profile.Keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}

		confidence := float64(matched) / float64(len(profile.Keywords))
		if !found || confidence > best.Confidence {
			best = KeywordScore{
				Category:   profile.Category,
				Confidence: confidence,
				Matched:    matched,
			}
			found = true
		}
	}

	if !found {
		return KeywordScore{}, false
	}

	best.Met = best.Confidence >= minConfidence
	return best, true
}
