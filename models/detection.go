package models

// Content-type detection methods, in cascade order.
const (
	MethodUserOverride    = "user_override"
	MethodDomain          = "domain"
	MethodKeywordsHigh    = "keywords_high_confidence"
	MethodKeywordsMedium  = "keywords_medium_confidence"
	MethodLLM             = "llm"
	MethodDefaultFallback = "default_fallback"
)

// DetectionResult is the outcome of the content-type cascade.
type DetectionResult struct {
	Category          Category `json:"content_type" yaml:"content_type"`
	Confidence        float64  `json:"confidence" yaml:"confidence"`
	Method            string   `json:"method" yaml:"method"`
	SuggestedCategory Category `json:"suggested_type" yaml:"suggested_type"`
}

// PageType says whether a page is a single transactable item or a
// listing/guide covering many items.
type PageType string

const (
	PageSpecific PageType = "specific"
	PageGeneral  PageType = "general"
)

// Page-type detection methods, recording which cascade level decided.
const (
	MethodURLPattern         = "url_pattern"
	MethodURLPatternOnly     = "url_pattern_only"
	MethodURLHTMLCombined    = "url_html_combined"
	MethodURLHTMLLLMAgreed   = "url_html_openai_agreed"
	MethodURLHTMLLLMOverride = "url_html_openai_override"
)

// PageTypeResult is the outcome of the page-type cascade. Indicators carry a
// human-readable reason per contributing signal; Cost and ElapsedSeconds are
// nonzero only when the LLM adjudicator ran.
type PageTypeResult struct {
	PageType       PageType `json:"page_type" yaml:"page_type"`
	Confidence     float64  `json:"confidence" yaml:"confidence"`
	Method         string   `json:"method" yaml:"method"`
	Indicators     []string `json:"indicators" yaml:"indicators"`
	Cost           float64  `json:"cost" yaml:"cost"`
	ElapsedSeconds float64  `json:"elapsed_seconds" yaml:"elapsed_seconds"`
}
