package classify

import (
	"github.com/ticofinder/webtriage/models"
	"github.com/ticofinder/webtriage/pkg/language"
	"github.com/ticofinder/webtriage/pkg/registry"
)

type Job struct {
	URL string
}

// Result holds the outcome of a processed job.
type Result struct {
	URL        string
	Content    models.DetectionResult
	Page       models.PageTypeResult
	Language   language.Tag
	WordCounts map[string]int
	FromCache  bool
	Error      error
	ErrorType  string
}

// ResultOutput is the structured output for a single URL.
type ResultOutput struct {
	URL               string   `json:"url"`
	Status            string   `json:"status"`
	Error             string   `json:"error,omitempty"`
	ErrorType         string   `json:"error_type,omitempty"`
	ContentType       string   `json:"content_type,omitempty"`
	ContentLabel      string   `json:"content_label,omitempty"`
	ContentConfidence float64  `json:"content_confidence,omitempty"`
	ContentMethod     string   `json:"content_method,omitempty"`
	PageType          string   `json:"page_type,omitempty"`
	PageConfidence    float64  `json:"page_confidence,omitempty"`
	PageMethod        string   `json:"page_method,omitempty"`
	Indicators        []string `json:"indicators,omitempty"`
	Language          string   `json:"language,omitempty"`
	CostUSD           float64  `json:"cost_usd,omitempty"`
	ElapsedSeconds    float64  `json:"elapsed_seconds,omitempty"`
	Cached            bool     `json:"cached,omitempty"`
}

// Stats provides summary statistics for a batch run.
type Stats struct {
	TotalURLs        int      `json:"total_urls"`
	Successful       int      `json:"successful"`
	Failed           int      `json:"failed"`
	CacheHits        int      `json:"cache_hits"`
	TotalCostUSD     float64  `json:"total_cost_usd"`
	TotalTimeSeconds float64  `json:"total_time_seconds"`
	TopKeywords      []string `json:"top_keywords,omitempty"`
}

// FinalOutput is the structured output for an entire batch run.
type FinalOutput struct {
	Status  string         `json:"status"`
	Results []ResultOutput `json:"results"`
	Stats   Stats          `json:"stats"`
}

func buildOutput(r Result, reg *registry.Registry) ResultOutput {
	out := ResultOutput{
		URL:    r.URL,
		Cached: r.FromCache,
	}
	if r.Error != nil {
		out.Status = "failed"
		out.Error = r.Error.Error()
		out.ErrorType = r.ErrorType
		return out
	}

	out.Status = "success"
	out.ContentType = string(r.Content.Category)
	out.ContentLabel = reg.Label(r.Content.Category)
	out.ContentConfidence = r.Content.Confidence
	out.ContentMethod = r.Content.Method
	out.PageType = string(r.Page.PageType)
	out.PageConfidence = r.Page.Confidence
	out.PageMethod = r.Page.Method
	out.Indicators = r.Page.Indicators
	out.Language = string(r.Language)
	out.CostUSD = r.Page.Cost
	out.ElapsedSeconds = r.Page.ElapsedSeconds
	return out
}
