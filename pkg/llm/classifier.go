// Package llm wraps the OpenAI chat API behind the two classification
// questions the cascades may escalate to. Both cascades treat this as a
// black box with cost and latency; every call site converts failures into a
// degraded heuristic result instead of propagating them.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ticofinder/webtriage/models"
)

const DefaultModel = "gpt-4o-mini"

// perThousandTokensUSD is the blended gpt-4o-mini price used for the cost
// field on results.
const perThousandTokensUSD = 0.0015

// ContentAnswer is the LLM's verdict on what kind of content a page holds.
type ContentAnswer struct {
	Category   models.Category
	Confidence float64
	Cost       float64
	Elapsed    time.Duration
}

// PageTypeAnswer is the LLM's verdict on specific-vs-general, with its own
// rationale and indicators.
type PageTypeAnswer struct {
	PageType   models.PageType
	Confidence float64
	Reason     string
	Indicators []string
	Cost       float64
	Elapsed    time.Duration
}

// Classifier is the escalation collaborator consumed by both cascades.
// Implementations must honor ctx cancellation; callers apply their own
// timeouts.
type Classifier interface {
	ClassifyContent(ctx context.Context, url, text string, categories []models.Category) (ContentAnswer, error)
	ClassifyPageType(ctx context.Context, url, htmlExcerpt string, category models.Category) (PageTypeAnswer, error)
}

// OpenAIClassifier implements Classifier against the OpenAI chat API.
type OpenAIClassifier struct {
	client *openai.Client
	model  string
}

// NewOpenAIClassifier creates a classifier for the given API key. An empty
// model selects gpt-4o-mini.
func NewOpenAIClassifier(apiKey, model string) *OpenAIClassifier {
	if model == "" {
		model = DefaultModel
	}
	return &OpenAIClassifier{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// ClassifyContent asks the model for a single category key for the page.
// A response outside the provided category set is a malformed response and
// returns an error; the cascade then falls back to its heuristic result.
func (c *OpenAIClassifier) ClassifyContent(ctx context.Context, url, text string, categories []models.Category) (ContentAnswer, error) {
	start := time.Now()

	keys := make([]string, len(categories))
	for i, cat := range categories {
		keys[i] = string(cat)
	}

	prompt := fmt.Sprintf(`Classify the following web content into ONE category. Return ONLY the category key, nothing else.

Categories: %s

Source URL: %s

Content preview:
%s

Category:`, strings.Join(keys, ", "), url, text)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a content classification expert. Return only the category key.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0,
		MaxTokens:   20,
	})
	if err != nil {
		return ContentAnswer{}, fmt.Errorf("content classification request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return ContentAnswer{}, fmt.Errorf("content classification returned no choices")
	}

	answer := models.Category(strings.ToLower(strings.TrimSpace(resp.Choices[0].Message.Content)))
	for _, cat := range categories {
		if answer == cat {
			return ContentAnswer{
				Category:   answer,
				Confidence: 0.85,
				Cost:       tokenCost(resp.Usage.TotalTokens),
				Elapsed:    time.Since(start),
			}, nil
		}
	}

	return ContentAnswer{}, fmt.Errorf("content classification returned unknown category %q", answer)
}

// pageTypeResponse is the JSON shape the model is instructed to return.
type pageTypeResponse struct {
	PageType      string   `json:"page_type"`
	Confidence    float64  `json:"confidence"`
	Reasoning     string   `json:"reasoning"`
	KeyIndicators []string `json:"key_indicators"`
}

// ClassifyPageType asks the model to adjudicate specific-vs-general from a
// bounded HTML excerpt.
func (c *OpenAIClassifier) ClassifyPageType(ctx context.Context, url, htmlExcerpt string, category models.Category) (PageTypeAnswer, error) {
	start := time.Now()

	prompt := fmt.Sprintf(`Analyze this webpage and determine if it's a SPECIFIC item page or a GENERAL listing/guide page.

URL: %s
Content Type: %s

HTML Preview:
%s

Determine:
1. Is this a SPECIFIC page (single %s item with full details)?
   - Examples: Single tour details, one restaurant page, one property listing
   - Indicators: "Book Now" button, detailed description, single price, reviews for ONE item

2. Or is this a GENERAL page (multiple items, guide, or category listing)?
   - Examples: List of tours, restaurant directory, property search results
   - Indicators: Multiple cards/items, filters, pagination, "Browse", "View all"

Respond ONLY with valid JSON:
{
    "page_type": "specific" or "general",
    "confidence": 0.0-1.0,
    "reasoning": "brief explanation of decision",
    "key_indicators": ["indicator1", "indicator2", "indicator3"]
}`, url, category, htmlExcerpt, category)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are an expert at analyzing webpages. You respond ONLY with valid JSON.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.1,
		MaxTokens:   300,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return PageTypeAnswer{}, fmt.Errorf("page type adjudication request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return PageTypeAnswer{}, fmt.Errorf("page type adjudication returned no choices")
	}

	var parsed pageTypeResponse
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		return PageTypeAnswer{}, fmt.Errorf("failed to parse page type response: %w", err)
	}

	pageType := models.PageType(parsed.PageType)
	if pageType != models.PageSpecific && pageType != models.PageGeneral {
		return PageTypeAnswer{}, fmt.Errorf("page type adjudication returned unknown page type %q", parsed.PageType)
	}
	if parsed.Confidence < 0 || parsed.Confidence > 1 {
		return PageTypeAnswer{}, fmt.Errorf("page type adjudication returned confidence %v outside [0,1]", parsed.Confidence)
	}

	return PageTypeAnswer{
		PageType:   pageType,
		Confidence: parsed.Confidence,
		Reason:     parsed.Reasoning,
		Indicators: parsed.KeyIndicators,
		Cost:       tokenCost(resp.Usage.TotalTokens),
		Elapsed:    time.Since(start),
	}, nil
}

func tokenCost(totalTokens int) float64 {
	return float64(totalTokens) / 1000 * perThousandTokensUSD
}
