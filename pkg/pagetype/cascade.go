package pagetype

import (
	"context"
	"log/slog"
	"time"

	"github.com/ticofinder/webtriage/models"
	"github.com/ticofinder/webtriage/pkg/htmltext"
	"github.com/ticofinder/webtriage/pkg/llm"
)

const (
	// urlDecisiveConfidence terminates the cascade at the URL level.
	urlDecisiveConfidence = 0.90

	// escalationThreshold is the combined confidence below which the LLM
	// adjudicator is consulted.
	escalationThreshold = 0.80

	// Blend weights: HTML carries more raw signal than URL structure.
	urlWeight  = 0.4
	htmlWeight = 0.6

	// agreementBonus rewards independent signals reaching the same verdict.
	agreementBonus = 0.15

	// tieDiscount is applied to the HTML verdict when both analyzers are
	// equally confident but disagree; an exact tie signals real ambiguity.
	tieDiscount = 0.9

	// failureCap bounds the confidence reported when the adjudicator was
	// needed but failed.
	failureCap = 0.40

	// llmExcerptBytes bounds the HTML excerpt sent to the adjudicator; the
	// head of the document holds the structure that matters.
	llmExcerptBytes = 8000
)

// Detector runs the page-type cascade: URL pattern → HTML structure →
// optional LLM adjudication. Like the content-type cascade it always
// returns a result.
type Detector struct {
	urls       *URLPatternAnalyzer
	html       *HTMLStructureAnalyzer
	classifier llm.Classifier // nil disables escalation
	logger     *slog.Logger
}

// NewDetector builds a page-type detector. classifier may be nil; the
// cascade then stops at the URL+HTML combination.
func NewDetector(classifier llm.Classifier, logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{
		urls:       &URLPatternAnalyzer{},
		html:       &HTMLStructureAnalyzer{},
		classifier: classifier,
		logger:     logger,
	}
}

// HTMLAnalyzer exposes the structure analyzer for tuning (card tie-break
// threshold).
func (d *Detector) HTMLAnalyzer() *HTMLStructureAnalyzer {
	return d.html
}

// Detect classifies the page as specific or general. The content category
// feeds the HTML analyzer's curated phrase sets.
func (d *Detector) Detect(ctx context.Context, rawURL, html string, category models.Category) models.PageTypeResult {
	start := time.Now()

	// Level 1: URL pattern, free and near-instant.
	urlVerdict := d.urls.Analyze(rawURL, category)
	d.logger.Info("url pattern analysis",
		"url", rawURL,
		"page_type", urlVerdict.PageType,
		"confidence", urlVerdict.Confidence,
		"reason", urlVerdict.Reason)

	if urlVerdict.Confidence >= urlDecisiveConfidence {
		return models.PageTypeResult{
			PageType:       urlVerdict.PageType,
			Confidence:     urlVerdict.Confidence,
			Method:         models.MethodURLPattern,
			Indicators:     []string{urlVerdict.Reason},
			Cost:           0,
			ElapsedSeconds: time.Since(start).Seconds(),
		}
	}

	// Without HTML there is nothing left to consult.
	if html == "" {
		return models.PageTypeResult{
			PageType:       urlVerdict.PageType,
			Confidence:     urlVerdict.Confidence,
			Method:         models.MethodURLPatternOnly,
			Indicators:     []string{urlVerdict.Reason, "No HTML for deeper validation"},
			Cost:           0,
			ElapsedSeconds: time.Since(start).Seconds(),
		}
	}

	// Level 2: HTML structure, combined with the URL signal.
	htmlVerdict := d.html.Analyze(html, category)
	d.logger.Info("html structure analysis",
		"page_type", htmlVerdict.PageType,
		"confidence", htmlVerdict.Confidence,
		"reason", htmlVerdict.Reason)

	finalType, finalConfidence, agreement := combine(urlVerdict, htmlVerdict)
	d.logger.Info("combined signals",
		"page_type", finalType,
		"confidence", finalConfidence,
		"agreement", agreement)

	// Level 3: adjudicate low-confidence combinations.
	if finalConfidence < escalationThreshold && d.classifier != nil {
		return d.adjudicate(ctx, start, rawURL, html, category, urlVerdict, htmlVerdict, finalType, finalConfidence)
	}

	return models.PageTypeResult{
		PageType:       finalType,
		Confidence:     finalConfidence,
		Method:         models.MethodURLHTMLCombined,
		Indicators:     []string{urlVerdict.Reason, htmlVerdict.Reason, agreement},
		Cost:           0,
		ElapsedSeconds: time.Since(start).Seconds(),
	}
}

// combine blends the two analyzer verdicts. Agreement earns a bonus; on
// disagreement the strictly more confident analyzer wins outright, and an
// exact confidence tie goes to HTML at a discount.
func combine(urlVerdict, htmlVerdict Verdict) (models.PageType, float64, string) {
	combined := urlVerdict.Confidence*urlWeight + htmlVerdict.Confidence*htmlWeight

	if urlVerdict.PageType == htmlVerdict.PageType {
		confidence := combined + agreementBonus
		if confidence > 0.95 {
			confidence = 0.95
		}
		return urlVerdict.PageType, confidence, "URL and HTML agree"
	}

	switch {
	case htmlVerdict.Confidence > urlVerdict.Confidence:
		return htmlVerdict.PageType, htmlVerdict.Confidence, "HTML signal stronger than URL"
	case urlVerdict.Confidence > htmlVerdict.Confidence:
		return urlVerdict.PageType, urlVerdict.Confidence, "URL signal stronger than HTML"
	default:
		return htmlVerdict.PageType, htmlVerdict.Confidence * tieDiscount, "Tie between URL and HTML, preferring HTML"
	}
}

// adjudicate escalates to the LLM. Collaborator failure never propagates:
// the Level-2 verdict is returned with confidence capped low and a reason
// naming the failure.
func (d *Detector) adjudicate(ctx context.Context, start time.Time, rawURL, html string, category models.Category, urlVerdict, htmlVerdict Verdict, level2Type models.PageType, level2Confidence float64) models.PageTypeResult {
	answer, err := d.classifier.ClassifyPageType(ctx, rawURL, htmltext.Excerpt(html, llmExcerptBytes), category)
	if err != nil {
		d.logger.Warn("llm adjudication failed, keeping combined verdict", "url", rawURL, "error", err)
		confidence := level2Confidence
		if confidence > failureCap {
			confidence = failureCap
		}
		return models.PageTypeResult{
			PageType:       level2Type,
			Confidence:     confidence,
			Method:         models.MethodURLHTMLCombined,
			Indicators:     []string{urlVerdict.Reason, htmlVerdict.Reason, "LLM adjudication failed: " + err.Error()},
			Cost:           0,
			ElapsedSeconds: time.Since(start).Seconds(),
		}
	}

	indicators := []string{urlVerdict.Reason, htmlVerdict.Reason, "OpenAI: " + answer.Reason}

	if answer.PageType == level2Type {
		confidence := answer.Confidence
		if confidence > 0.95 {
			confidence = 0.95
		}
		d.logger.Info("llm agrees with combined verdict", "page_type", level2Type, "confidence", confidence)
		return models.PageTypeResult{
			PageType:       level2Type,
			Confidence:     confidence,
			Method:         models.MethodURLHTMLLLMAgreed,
			Indicators:     indicators,
			Cost:           answer.Cost,
			ElapsedSeconds: time.Since(start).Seconds(),
		}
	}

	// The adjudicator observed more content than either heuristic; its
	// disagreement wins outright.
	d.logger.Info("llm overrides combined verdict",
		"heuristic", level2Type,
		"llm", answer.PageType,
		"confidence", answer.Confidence)
	return models.PageTypeResult{
		PageType:       answer.PageType,
		Confidence:     answer.Confidence,
		Method:         models.MethodURLHTMLLLMOverride,
		Indicators:     indicators,
		Cost:           answer.Cost,
		ElapsedSeconds: time.Since(start).Seconds(),
	}
}
