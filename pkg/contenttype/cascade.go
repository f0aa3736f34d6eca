package contenttype

import (
	"context"
	"log/slog"

	"github.com/ticofinder/webtriage/models"
	"github.com/ticofinder/webtriage/pkg/htmltext"
	"github.com/ticofinder/webtriage/pkg/llm"
	"github.com/ticofinder/webtriage/pkg/registry"
)

const (
	// minKeywordConfidence is the threshold below which a keyword winner is
	// only good enough for the medium-confidence fallback label.
	minKeywordConfidence = 0.3

	// highKeywordConfidence terminates the cascade at the keyword stage.
	highKeywordConfidence = 0.7

	domainConfidence   = 0.95
	fallbackConfidence = 0.3

	// heuristicCap reserves 1.0 for explicit user overrides.
	heuristicCap = 0.95

	// llmPreviewBytes bounds the text excerpt sent to the LLM stage.
	llmPreviewBytes = 2000
)

// Detector runs the content-type cascade: user override → domain match →
// keyword scoring → optional LLM classification → fallback. It always
// returns a result; degraded inputs lower confidence, they never fail.
type Detector struct {
	registry   *registry.Registry
	matcher    *Matcher
	scorer     *Scorer
	classifier llm.Classifier // nil disables the LLM stage
	logger     *slog.Logger
}

// NewDetector builds a detector over the given registry. classifier may be
// nil when the caller never opts into LLM fallback.
func NewDetector(reg *registry.Registry, classifier llm.Classifier, logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{
		registry:   reg,
		matcher:    NewMatcher(reg),
		scorer:     NewScorer(reg),
		classifier: classifier,
		logger:     logger,
	}
}

// Detect classifies the page's content type. Stages run in strict priority
// order; each either terminates the cascade or falls through to the next.
func (d *Detector) Detect(ctx context.Context, req models.ClassifyRequest) models.DetectionResult {
	// Stage 1: user override. The only source of confidence 1.0.
	if req.Override != "" {
		if d.registry.Valid(req.Override) {
			d.logger.Info("using user override", "category", req.Override)
			return models.DetectionResult{
				Category:          req.Override,
				Confidence:        1.0,
				Method:            models.MethodUserOverride,
				SuggestedCategory: req.Override,
			}
		}
		d.logger.Warn("ignoring invalid user override", "override", req.Override)
	}

	// Stage 2: domain matching. Instant and reliable for known sites.
	if category, ok := d.matcher.Match(req.URL); ok {
		d.logger.Info("domain match", "url", req.URL, "category", category)
		return models.DetectionResult{
			Category:          category,
			Confidence:        domainConfidence,
			Method:            models.MethodDomain,
			SuggestedCategory: category,
		}
	}

	// Stage 3: keyword scoring over extracted page text.
	text := htmltext.Extract(req.HTML)
	score, scored := d.scorer.Score(text, minKeywordConfidence)
	if scored {
		d.logger.Info("keyword score",
			"category", score.Category,
			"confidence", score.Confidence,
			"matched", score.Matched,
			"met_threshold", score.Met)
	}

	if scored && score.Confidence >= highKeywordConfidence {
		return models.DetectionResult{
			Category:          score.Category,
			Confidence:        capHeuristic(score.Confidence),
			Method:            models.MethodKeywordsHigh,
			SuggestedCategory: score.Category,
		}
	}

	// Stage 4: LLM classification, strictly opt-in because of its cost and
	// latency. Failures fall through to the heuristic fallback.
	if req.UseLLMFallback && d.classifier != nil {
		if result, ok := d.classifyWithLLM(ctx, req); ok {
			return result
		}
	}

	// Stage 5: fallback. A keyword winner below the high threshold still
	// beats the hard default.
	if scored {
		return models.DetectionResult{
			Category:          score.Category,
			Confidence:        capHeuristic(score.Confidence),
			Method:            models.MethodKeywordsMedium,
			SuggestedCategory: score.Category,
		}
	}

	d.logger.Warn("no detection method succeeded, using default", "url", req.URL)
	return models.DetectionResult{
		Category:          models.DefaultCategory,
		Confidence:        fallbackConfidence,
		Method:            models.MethodDefaultFallback,
		SuggestedCategory: models.DefaultCategory,
	}
}

func (d *Detector) classifyWithLLM(ctx context.Context, req models.ClassifyRequest) (models.DetectionResult, bool) {
	preview := htmltext.Excerpt(htmltext.Article(req.URL, req.HTML), llmPreviewBytes)

	categories := make([]models.Category, 0, len(d.registry.Profiles()))
	for _, profile := range d.registry.Profiles() {
		categories = append(categories, profile.Category)
	}

	answer, err := d.classifier.ClassifyContent(ctx, req.URL, preview, categories)
	if err != nil {
		d.logger.Warn("llm content classification failed, falling back", "url", req.URL, "error", err)
		return models.DetectionResult{}, false
	}

	d.logger.Info("llm content classification",
		"category", answer.Category,
		"confidence", answer.Confidence,
		"cost", answer.Cost)

	return models.DetectionResult{
		Category:          answer.Category,
		Confidence:        clamp01(answer.Confidence),
		Method:            models.MethodLLM,
		SuggestedCategory: answer.Category,
	}, true
}

func capHeuristic(confidence float64) float64 {
	if confidence > heuristicCap {
		return heuristicCap
	}
	if confidence < 0 {
		return 0
	}
	return confidence
}

func clamp01(confidence float64) float64 {
	if confidence > 1 {
		return 1
	}
	if confidence < 0 {
		return 0
	}
	return confidence
}
