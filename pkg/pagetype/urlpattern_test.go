package pagetype

import (
	"testing"

	"github.com/ticofinder/webtriage/models"
)

func TestURLPatternAnalyzer_Analyze(t *testing.T) {
	analyzer := &URLPatternAnalyzer{}

	tests := []struct {
		name           string
		url            string
		wantType       models.PageType
		wantConfidence float64
	}{
		{
			name:           "viator style tour ID",
			url:            "https://www.viator.com/tours/Costa-Rica/Arenal/d742-12345",
			wantType:       models.PageSpecific,
			wantConfidence: 0.95,
		},
		{
			name:           "getyourguide style ID",
			url:            "https://www.getyourguide.com/arenal/t48291",
			wantType:       models.PageSpecific,
			wantConfidence: 0.95,
		},
		{
			name:           "long numeric suffix",
			url:            "https://example.com/casa-playa-hermosa-98765",
			wantType:       models.PageSpecific,
			wantConfidence: 0.90,
		},
		{
			name:           "listing with ID",
			url:            "https://encuentra24.com/costa-rica-en/listing-4821",
			wantType:       models.PageSpecific,
			wantConfidence: 0.95,
		},
		{
			name:           "single review page",
			url:            "https://www.tripadvisor.com/restaurant_review-d1234",
			wantType:       models.PageSpecific,
			wantConfidence: 0.95,
		},
		{
			name:           "property slug",
			url:            "https://example.com/property/villa-del-mar",
			wantType:       models.PageSpecific,
			wantConfidence: 0.85,
		},
		{
			name:           "deep path",
			url:            "https://example.com/costa-rica/guanacaste/tamarindo/casa-verde",
			wantType:       models.PageSpecific,
			wantConfidence: 0.75,
		},
		{
			name:           "plural tail listing",
			url:            "https://example.com/tours/",
			wantType:       models.PageGeneral,
			wantConfidence: 0.90,
		},
		{
			name:           "category destination page",
			url:            "https://example.com/tours/arenal",
			wantType:       models.PageGeneral,
			wantConfidence: 0.85,
		},
		{
			name:           "search page",
			url:            "https://example.com/search?q=villas",
			wantType:       models.PageGeneral,
			wantConfidence: 0.95,
		},
		{
			name:           "homepage",
			url:            "https://example.com/",
			wantType:       models.PageGeneral,
			wantConfidence: 0.90,
		},
		{
			name:           "transactional real estate domain",
			url:            "https://www.remax-oceansurf-cr.com/oceanview-villa",
			wantType:       models.PageSpecific,
			wantConfidence: 0.60,
		},
		{
			name:           "inconclusive defaults to specific",
			url:            "https://example.com/about-us",
			wantType:       models.PageSpecific,
			wantConfidence: 0.50,
		},
		{
			name:           "empty URL",
			url:            "",
			wantType:       models.PageSpecific,
			wantConfidence: 0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzer.Analyze(tt.url, models.CategoryTour)
			if got.PageType != tt.wantType {
				t.Errorf("Analyze(%q) type = %q, want %q (reason: %s)", tt.url, got.PageType, tt.wantType, got.Reason)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Analyze(%q) confidence = %v, want %v", tt.url, got.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestURLPatternAnalyzer_SpecificRulesBeatGeneralRules(t *testing.T) {
	analyzer := &URLPatternAnalyzer{}

	// Path carries both a listing-ish segment and a vendor ID. The ID rule
	// runs first and wins.
	got := analyzer.Analyze("https://www.viator.com/searchResults/d742-12345", models.CategoryTour)
	if got.PageType != models.PageSpecific {
		t.Errorf("type = %q, want %q", got.PageType, models.PageSpecific)
	}
	if got.Confidence != 0.95 {
		t.Errorf("confidence = %v, want 0.95", got.Confidence)
	}
}

func TestURLPatternAnalyzer_CategoryPageWithNumericTail(t *testing.T) {
	analyzer := &URLPatternAnalyzer{}

	// A numeric last segment disqualifies the category-page rule; the URL
	// falls through to the ambiguous default.
	got := analyzer.Analyze("https://example.com/tours/9876", models.CategoryTour)
	if got.PageType != models.PageSpecific {
		t.Errorf("type = %q, want %q (reason: %s)", got.PageType, models.PageSpecific, got.Reason)
	}
}

func TestURLPatternAnalyzer_Idempotent(t *testing.T) {
	analyzer := &URLPatternAnalyzer{}
	url := "https://www.viator.com/tours/d742-12345"

	first := analyzer.Analyze(url, models.CategoryTour)
	second := analyzer.Analyze(url, models.CategoryTour)
	if first != second {
		t.Errorf("Analyze() not deterministic: %+v vs %+v", first, second)
	}
}
