package pagetype

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ticofinder/webtriage/models"
	"github.com/ticofinder/webtriage/pkg/htmltext"
)

// Class-name substrings that mark repeated item containers on listing pages.
var cardClassPatterns = []string{"card", "item", "listing", "product", "result"}

// minCardTextLen filters out tiny components (badges, chips) that happen to
// carry a card-like class name.
const minCardTextLen = 50

// Phrase sets scanned against lowercased page text.
var (
	bookingPhrases    = []string{"book now", "reserve", "check availability", "add to cart", "book this"}
	filterPhrases     = []string{"filter", "sort by", "price range", "showing", "results"}
	paginationPhrases = []string{"next page", "previous", "page 1", "page 2", "of"}

	// Curated vocabularies exist for tours only; other categories rely on
	// the generic signals above.
	specificTourPhrases = []string{
		"what's included", "tour details", "meeting point", "cancellation policy",
		"departure time", "pick-up location", "what to bring", "tour itinerary",
	}
	generalGuidePhrases = []string{
		"top tours", "best tours", "browse tours", "all tours",
		"things to do", "activities in", "explore", "discover",
		"guide to", "visit", "haven for", "perfect for",
		"don't miss", "must see", "what to expect",
	}
)

// currencyRe counts price occurrences. Case-insensitive so "USD 50" is found
// in lowercased text.
var currencyRe = regexp.MustCompile(`\$\d+|(?i:usd)\s*\d+|€\d+|£\d+`)

// defaultCardTieThreshold is the card count above which a score tie breaks
// toward general. Tunable, not an invariant.
const defaultCardTieThreshold = 5

// scoreSheet accumulates weighted evidence for each page type within a
// single Analyze call.
type scoreSheet struct {
	specific   int
	general    int
	indicators []string
}

func (s *scoreSheet) addSpecific(points int, indicator string) {
	s.specific += points
	s.indicators = append(s.indicators, indicator)
}

func (s *scoreSheet) addGeneral(points int, indicator string) {
	s.general += points
	s.indicators = append(s.indicators, indicator)
}

// HTMLStructureAnalyzer scores HTML structure (repeated cards, booking and
// filter affordances, price density, curated phrase sets) into a
// specific-vs-general verdict.
type HTMLStructureAnalyzer struct {
	// CardTieThreshold overrides the card count used for tie-breaking.
	// Zero means the default of 5.
	CardTieThreshold int
}

// Analyze builds a score sheet from the page's structure and resolves it
// into a verdict. Unusable markup yields the no-indicator default rather
// than an error.
func (a *HTMLStructureAnalyzer) Analyze(html string, category models.Category) Verdict {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Verdict{models.PageSpecific, 0.40, "No clear HTML indicators"}
	}

	text := strings.ToLower(htmltext.Extract(html))
	// Every signal below needs visible text; a blank document has none.
	if strings.TrimSpace(text) == "" {
		return Verdict{models.PageSpecific, 0.40, "No clear HTML indicators"}
	}
	sheet := &scoreSheet{}

	cardCount := countItemCards(doc)
	switch {
	case cardCount >= 5:
		sheet.addGeneral(3, fmt.Sprintf("Found %d item cards", cardCount))
	case cardCount >= 2:
		sheet.addGeneral(1, fmt.Sprintf("Found %d possible items", cardCount))
	default:
		sheet.addSpecific(2, fmt.Sprintf("Found %d item (single page)", cardCount))
	}

	if found := countPhrases(text, bookingPhrases); found >= 2 {
		sheet.addSpecific(3, fmt.Sprintf("Found %d booking elements", found))
	}
	if found := countPhrases(text, filterPhrases); found >= 2 {
		sheet.addGeneral(3, fmt.Sprintf("Found %d filter elements", found))
	}
	if found := countPhrases(text, paginationPhrases); found >= 2 {
		sheet.addGeneral(2, "Found pagination")
	}

	if category == models.CategoryTour {
		if found := countPhrases(text, specificTourPhrases); found >= 2 {
			sheet.addSpecific(2, fmt.Sprintf("Found %d specific tour details", found))
		}
		switch found := countPhrases(text, generalGuidePhrases); {
		case found >= 3:
			sheet.addGeneral(3, fmt.Sprintf("Found %d destination guide keywords", found))
		case found >= 1:
			sheet.addGeneral(1, fmt.Sprintf("Found %d guide keyword", found))
		}
	}

	prices := len(currencyRe.FindAllString(text, -1))
	switch {
	case prices >= 10:
		sheet.addGeneral(3, fmt.Sprintf("Found %d prices (listing)", prices))
	case prices <= 3:
		sheet.addSpecific(1, fmt.Sprintf("Found %d price(s) (single item)", prices))
	}

	return a.resolve(sheet, cardCount)
}

// resolve turns the score sheet into a verdict. Confidence is the winning
// side's share of the total score, capped below the user-override ceiling.
func (a *HTMLStructureAnalyzer) resolve(sheet *scoreSheet, cardCount int) Verdict {
	total := sheet.specific + sheet.general
	if total == 0 {
		return Verdict{models.PageSpecific, 0.40, "No clear HTML indicators"}
	}

	reason := strings.Join(firstN(sheet.indicators, 3), ", ")

	if sheet.specific > sheet.general {
		confidence := capConfidence(float64(sheet.specific) / float64(total))
		return Verdict{models.PageSpecific, confidence, reason}
	}
	if sheet.general > sheet.specific {
		confidence := capConfidence(float64(sheet.general) / float64(total))
		return Verdict{models.PageGeneral, confidence, reason}
	}

	// Exact tie. Many repeated cards are a stronger listing signal than any
	// other single feature; few cards plus booking language point at one
	// item.
	threshold := a.CardTieThreshold
	if threshold <= 0 {
		threshold = defaultCardTieThreshold
	}
	if cardCount >= threshold {
		return Verdict{models.PageGeneral, 0.60, fmt.Sprintf("Tie broken by %d cards (listing indicator)", cardCount)}
	}
	return Verdict{models.PageSpecific, 0.55, "Tie broken by booking elements over card count"}
}

// countItemCards returns the highest count, over the class patterns, of div
// containers that look like repeated item cards and carry enough text to be
// real content.
func countItemCards(doc *goquery.Document) int {
	counts := make(map[string]int, len(cardClassPatterns))

	doc.Find("div[class]").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		class = strings.ToLower(class)

		var matched []string
		for _, pattern := range cardClassPatterns {
			if strings.Contains(class, pattern) {
				matched = append(matched, pattern)
			}
		}
		if len(matched) == 0 {
			return
		}

		if len(strings.TrimSpace(sel.Text())) <= minCardTextLen {
			return
		}
		for _, pattern := range matched {
			counts[pattern]++
		}
	})

	max := 0
	for _, count := range counts {
		if count > max {
			max = count
		}
	}
	return max
}

func countPhrases(text string, phrases []string) int {
	found := 0
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			found++
		}
	}
	return found
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func capConfidence(confidence float64) float64 {
	if confidence > 0.95 {
		return 0.95
	}
	return confidence
}
