package classify

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ticofinder/webtriage/models"
	"github.com/ticofinder/webtriage/pkg/analytics"
	"github.com/ticofinder/webtriage/pkg/caching"
	"github.com/ticofinder/webtriage/pkg/contenttype"
	"github.com/ticofinder/webtriage/pkg/fetcher"
	"github.com/ticofinder/webtriage/pkg/language"
	"github.com/ticofinder/webtriage/pkg/pagetype"
	"github.com/ticofinder/webtriage/pkg/registry"
)

func testPipeline(t *testing.T, cacheDir string) *pipeline {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := registry.Default()

	var cache *caching.Cache
	if cacheDir != "" {
		var err error
		cache, err = caching.NewCache(cacheDir, time.Hour)
		if err != nil {
			t.Fatalf("failed to create cache: %v", err)
		}
	}

	return &pipeline{
		registry:  reg,
		content:   contenttype.NewDetector(reg, nil, logger),
		pages:     pagetype.NewDetector(nil, logger),
		languages: language.NewDetector(),
		fetcher:   fetcher.NewFetcher(),
		cache:     cache,
		analytics: &analytics.Analytics{},
		logger:    logger,
	}
}

func TestPipeline_Classify(t *testing.T) {
	p := testPipeline(t, "")

	html := `<html><body><p>Full day volcano tour. Book now or check availability. What's included: lunch. Meeting point: lobby.</p></body></html>`
	result := p.classify(context.Background(), "https://www.viator.com/tours/d742-12345", html, "")

	if result.Error != nil {
		t.Fatalf("classify() error = %v", result.Error)
	}
	if result.Content.Category != models.CategoryTour {
		t.Errorf("content category = %q, want %q", result.Content.Category, models.CategoryTour)
	}
	if result.Content.Method != models.MethodDomain {
		t.Errorf("content method = %q, want %q", result.Content.Method, models.MethodDomain)
	}
	if result.Page.PageType != models.PageSpecific {
		t.Errorf("page type = %q, want %q", result.Page.PageType, models.PageSpecific)
	}
	if result.Page.Method != models.MethodURLPattern {
		t.Errorf("page method = %q, want %q", result.Page.Method, models.MethodURLPattern)
	}
	if result.Language != language.English {
		t.Errorf("language = %q, want %q", result.Language, language.English)
	}
	if len(result.WordCounts) == 0 {
		t.Error("word counts are empty")
	}
}

func TestPipeline_ClassifyWithOverride(t *testing.T) {
	p := testPipeline(t, "")

	result := p.classify(context.Background(), "https://example.com/page", "", models.CategoryRestaurant)

	if result.Content.Category != models.CategoryRestaurant {
		t.Errorf("content category = %q, want the override", result.Content.Category)
	}
	if result.Content.Confidence != 1.0 {
		t.Errorf("content confidence = %v, want 1.0", result.Content.Confidence)
	}
}

func TestRunBatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>Casa with three bedrooms and bathrooms for sale near the beach.</p></body></html>`))
	}))
	defer server.Close()

	cacheDir := t.TempDir()
	p := testPipeline(t, cacheDir)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	urls := []string{server.URL + "/casa-verde", server.URL + "/casa-azul"}
	results, wordCounts, err := runBatch(context.Background(), logger, urls, 2, p)
	if err != nil {
		t.Fatalf("runBatch() error = %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("runBatch() returned %d results, want 2", len(results))
	}
	for _, result := range results {
		if result.Error != nil {
			t.Errorf("result for %s has error: %v", result.URL, result.Error)
		}
		if result.FromCache {
			t.Errorf("first run for %s should not be a cache hit", result.URL)
		}
		if result.Content.Category != models.CategoryRealEstate {
			t.Errorf("content category = %q, want %q", result.Content.Category, models.CategoryRealEstate)
		}
	}
	if wordCounts["casa"] != 2 {
		t.Errorf("aggregated casa count = %d, want 2", wordCounts["casa"])
	}

	// Second run is served from the cache.
	results, _, err = runBatch(context.Background(), logger, urls, 2, p)
	if err != nil {
		t.Fatalf("runBatch() second run error = %v", err)
	}
	for _, result := range results {
		if !result.FromCache {
			t.Errorf("second run for %s should hit the cache", result.URL)
		}
	}
}

func TestRunBatch_PartialFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`<html><body><p>tour and adventure booking</p></body></html>`))
	}))
	defer server.Close()

	p := testPipeline(t, "")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	urls := []string{server.URL + "/ok", server.URL + "/missing"}
	results, _, err := runBatch(context.Background(), logger, urls, 2, p)
	if err == nil {
		t.Error("runBatch() with a failing URL should report an error")
	}

	failed := 0
	for _, result := range results {
		if result.Error != nil {
			failed++
			if result.ErrorType != "fetch_error" {
				t.Errorf("error type = %q, want %q", result.ErrorType, "fetch_error")
			}
		}
	}
	if failed != 1 {
		t.Errorf("failed count = %d, want 1", failed)
	}
}

func TestBuildOutput(t *testing.T) {
	reg := registry.Default()

	result := Result{
		URL: "https://www.viator.com/tours/d742-12345",
		Content: models.DetectionResult{
			Category:   models.CategoryTour,
			Confidence: 0.95,
			Method:     models.MethodDomain,
		},
		Page: models.PageTypeResult{
			PageType:   models.PageSpecific,
			Confidence: 0.95,
			Method:     models.MethodURLPattern,
			Indicators: []string{"Viator-style ID (d742-12345)"},
		},
		Language: language.English,
	}

	got := buildOutput(result, reg)

	if got.Status != "success" {
		t.Errorf("status = %q, want %q", got.Status, "success")
	}
	if got.ContentType != "tour" {
		t.Errorf("content type = %q, want %q", got.ContentType, "tour")
	}
	if got.ContentLabel != "Tour / Actividad" {
		t.Errorf("content label = %q, want the registry label", got.ContentLabel)
	}
	if got.PageType != "specific" {
		t.Errorf("page type = %q, want %q", got.PageType, "specific")
	}
}

func TestBuildOutput_Failure(t *testing.T) {
	got := buildOutput(Result{
		URL:       "https://example.com",
		Error:     context.DeadlineExceeded,
		ErrorType: "fetch_error",
	}, registry.Default())

	if got.Status != "failed" {
		t.Errorf("status = %q, want %q", got.Status, "failed")
	}
	if got.ErrorType != "fetch_error" {
		t.Errorf("error type = %q, want %q", got.ErrorType, "fetch_error")
	}
	if got.ContentType != "" {
		t.Errorf("content type = %q, want empty on failure", got.ContentType)
	}
}
