package models

// ClassifyRequest carries one page through both cascades.
type ClassifyRequest struct {
	URL  string
	HTML string

	// Optional caller knobs
	Override       Category `json:"override,omitempty"`         // content-type cascade only
	UseLLMFallback bool     `json:"use_llm_fallback,omitempty"` // gates the content-type LLM stage
}
