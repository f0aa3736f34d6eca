package classify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ticofinder/webtriage/models"
	"github.com/ticofinder/webtriage/pkg/analytics"
	"github.com/ticofinder/webtriage/pkg/caching"
	"github.com/ticofinder/webtriage/pkg/contenttype"
	"github.com/ticofinder/webtriage/pkg/fetcher"
	"github.com/ticofinder/webtriage/pkg/htmltext"
	"github.com/ticofinder/webtriage/pkg/language"
	"github.com/ticofinder/webtriage/pkg/mapreduce"
	"github.com/ticofinder/webtriage/pkg/pagetype"
	"github.com/ticofinder/webtriage/pkg/registry"
)

// pipeline bundles the collaborators one classification pass needs. A
// single pipeline is shared by all workers; every collaborator is
// read-only after construction.
type pipeline struct {
	registry  *registry.Registry
	content   *contenttype.Detector
	pages     *pagetype.Detector
	languages *language.Detector
	fetcher   *fetcher.Fetcher
	cache     *caching.Cache // nil disables HTML caching
	analytics *analytics.Analytics
	useLLM    bool
	logger    *slog.Logger
}

// classify runs both cascades over already-obtained HTML.
func (p *pipeline) classify(ctx context.Context, rawURL, html string, override models.Category) Result {
	result := Result{URL: rawURL}

	result.Content = p.content.Detect(ctx, models.ClassifyRequest{
		URL:            rawURL,
		HTML:           html,
		Override:       override,
		UseLLMFallback: p.useLLM,
	})
	result.Page = p.pages.Detect(ctx, rawURL, html, result.Content.Category)

	text := htmltext.Extract(html)
	result.Language = p.languages.Detect(text)
	result.WordCounts = p.analytics.WordFrequency(text)

	return result
}

// fetchHTML downloads the page, going through the cache when one is
// configured.
func (p *pipeline) fetchHTML(ctx context.Context, rawURL string) (html string, fromCache bool, err error) {
	if p.cache != nil {
		if data, ok := p.cache.Get(rawURL); ok {
			return string(data), true, nil
		}
	}

	data, err := p.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return "", false, err
	}

	if p.cache != nil {
		if err := p.cache.Set(rawURL, data); err != nil {
			p.logger.Warn("failed to cache page", "url", rawURL, "error", err)
		}
	}
	return string(data), false, nil
}

func worker(id int, ctx context.Context, logger *slog.Logger, p *pipeline, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		logger.Info("worker started job", "worker_id", id, "url", job.URL)

		html, fromCache, err := p.fetchHTML(ctx, job.URL)
		if err != nil {
			logger.Error("error fetching HTML", "worker_id", id, "url", job.URL, "error", err)
			results <- Result{URL: job.URL, Error: err, ErrorType: "fetch_error"}
			continue
		}

		result := p.classify(ctx, job.URL, html, "")
		result.FromCache = fromCache
		results <- result
	}
}

// runBatch fans the URL list out over the worker pool and aggregates
// per-page word counts into corpus keyword totals.
func runBatch(ctx context.Context, logger *slog.Logger, urls []string, workerCount int, p *pipeline) ([]Result, map[string]int, error) {
	logger.Info("starting concurrent classification phase",
		"url_count", len(urls),
		"workers", workerCount,
		"llm_enabled", p.useLLM)

	var wg sync.WaitGroup
	jobs := make(chan Job, len(urls))
	results := make(chan Result, len(urls))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(w, ctx, logger, p, &wg, jobs, results)
	}

	for _, rawURL := range urls {
		jobs <- Job{URL: rawURL}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("all classification workers finished")

	allResults := make([]Result, 0, len(urls))
	var runErr error
	for result := range results {
		allResults = append(allResults, result)
		if result.Error != nil {
			runErr = fmt.Errorf("one or more jobs failed")
		}
	}

	intermediate := make([]map[string]int, 0, len(allResults))
	for _, result := range allResults {
		if result.WordCounts != nil {
			intermediate = append(intermediate, result.WordCounts)
		}
	}
	wordCounts := mapreduce.Reduce(intermediate)

	return allResults, wordCounts, runErr
}
