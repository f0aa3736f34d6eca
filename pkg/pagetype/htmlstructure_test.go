package pagetype

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ticofinder/webtriage/models"
)

func listingPageHTML(cards int) string {
	var b strings.Builder
	b.WriteString(`<html><body><div class="toolbar">Filter results, sort by price range, showing 1-20</div>`)
	for i := 0; i < cards; i++ {
		fmt.Fprintf(&b, `<div class="tour-card">Tour option %d with a long enough description of the itinerary to count as real content. From $%d0 per person.</div>`, i, i+10)
	}
	b.WriteString(`<div class="prices">$45 $60 $75 $80 $95 $110 $125 $140 $155 $170</div>`)
	b.WriteString(`</body></html>`)
	return b.String()
}

func singleTourHTML() string {
	return `<html><body>
		<div class="hero">Arenal Volcano Hike full day guided experience in the rainforest with lunch included at a local soda.</div>
		<p>What's included: transportation and lunch. Meeting point: hotel lobby.</p>
		<p>Price: $89. Book now or check availability for tomorrow.</p>
	</body></html>`
}

func TestHTMLStructureAnalyzer_ListingPage(t *testing.T) {
	analyzer := &HTMLStructureAnalyzer{}

	got := analyzer.Analyze(listingPageHTML(6), models.CategoryTour)

	if got.PageType != models.PageGeneral {
		t.Fatalf("type = %q, want %q (reason: %s)", got.PageType, models.PageGeneral, got.Reason)
	}
	if got.Confidence < 0.8 {
		t.Errorf("confidence = %v, want strong general signal", got.Confidence)
	}
	if !strings.Contains(got.Reason, "item cards") {
		t.Errorf("reason = %q, want card count indicator first", got.Reason)
	}
}

func TestHTMLStructureAnalyzer_SingleItemPage(t *testing.T) {
	analyzer := &HTMLStructureAnalyzer{}

	got := analyzer.Analyze(singleTourHTML(), models.CategoryTour)

	if got.PageType != models.PageSpecific {
		t.Fatalf("type = %q, want %q (reason: %s)", got.PageType, models.PageSpecific, got.Reason)
	}
	if got.Confidence < 0.6 {
		t.Errorf("confidence = %v, want strong specific signal", got.Confidence)
	}
}

func TestHTMLStructureAnalyzer_BlankPage(t *testing.T) {
	analyzer := &HTMLStructureAnalyzer{}

	got := analyzer.Analyze("<html><body></body></html>", models.CategoryRestaurant)

	if got.PageType != models.PageSpecific {
		t.Errorf("type = %q, want %q", got.PageType, models.PageSpecific)
	}
	if got.Confidence != 0.40 {
		t.Errorf("confidence = %v, want 0.40", got.Confidence)
	}
	if got.Reason != "No clear HTML indicators" {
		t.Errorf("reason = %q, want %q", got.Reason, "No clear HTML indicators")
	}
}

func TestHTMLStructureAnalyzer_TieBreaksByCardCount(t *testing.T) {
	// Exactly 3 points each way: zero cards (+2 specific), zero prices
	// (+1 specific), two filter phrases (+3 general).
	html := `<html><body><div>filter sort by</div></body></html>`

	analyzer := &HTMLStructureAnalyzer{}
	got := analyzer.Analyze(html, models.CategoryRestaurant)

	if got.PageType != models.PageSpecific {
		t.Errorf("type = %q, want %q (few cards lean specific on a tie)", got.PageType, models.PageSpecific)
	}
	if got.Confidence != 0.55 {
		t.Errorf("confidence = %v, want 0.55", got.Confidence)
	}
}

func TestHTMLStructureAnalyzer_TieThresholdTunable(t *testing.T) {
	// 4 points each way with 3 cards on the page: +1 general (cards),
	// +3 general (filters), +3 specific (booking), +1 specific (prices).
	var b strings.Builder
	b.WriteString(`<html><body>`)
	for i := 0; i < 3; i++ {
		fmt.Fprintf(&b, `<div class="result">Casa verde number %d with a spacious garden and pool area plus parking, well past the length cutoff.</div>`, i)
	}
	b.WriteString(`<div>book now or reserve</div>`)
	b.WriteString(`<div>filter and sort by</div>`)
	b.WriteString(`<div>$100</div>`)
	b.WriteString(`</body></html>`)
	html := b.String()

	strict := &HTMLStructureAnalyzer{}
	got := strict.Analyze(html, models.CategoryRestaurant)
	if got.PageType != models.PageSpecific || got.Confidence != 0.55 {
		t.Errorf("default threshold verdict = %+v, want specific at 0.55 (3 cards under threshold 5)", got)
	}

	relaxed := &HTMLStructureAnalyzer{CardTieThreshold: 2}
	got = relaxed.Analyze(html, models.CategoryRestaurant)
	if got.PageType != models.PageGeneral || got.Confidence != 0.60 {
		t.Errorf("lowered threshold verdict = %+v, want general at 0.60 (3 cards over threshold 2)", got)
	}
}

func TestHTMLStructureAnalyzer_TourPhrasesOnlyForTours(t *testing.T) {
	analyzer := &HTMLStructureAnalyzer{}

	tour := analyzer.Analyze(singleTourHTML(), models.CategoryTour)
	other := analyzer.Analyze(singleTourHTML(), models.CategoryRestaurant)

	// The curated tour vocabulary only contributes for the tour category,
	// so the tour verdict is at least as confident.
	if tour.PageType == other.PageType && tour.Confidence < other.Confidence {
		t.Errorf("tour confidence %v < other-category confidence %v", tour.Confidence, other.Confidence)
	}
}

func TestCountPhrases(t *testing.T) {
	text := "book now and check availability for this tour"
	if got := countPhrases(text, bookingPhrases); got != 2 {
		t.Errorf("countPhrases() = %d, want 2", got)
	}
	if got := countPhrases("nothing relevant", bookingPhrases); got != 0 {
		t.Errorf("countPhrases() = %d, want 0", got)
	}
}
