// Package pagetype decides WHETHER a page is a single specific item or a
// general listing/guide. A URL-structure pass runs first; HTML structure and
// an optional LLM adjudicator are pulled in only when the cheap signal is
// not decisive.
package pagetype

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/ticofinder/webtriage/models"
)

// Verdict is one analyzer's opinion: a page type, how sure it is, and a
// short reason consumed as an indicator by the cascade.
type Verdict struct {
	PageType   models.PageType
	Confidence float64
	Reason     string
}

// ID shapes that mark a URL as pointing at one specific item.
var (
	viatorIDRe       = regexp.MustCompile(`/d\d+-\d+`)
	getYourGuideIDRe = regexp.MustCompile(`/t\d{4,}`)
	longNumericIDRe  = regexp.MustCompile(`-\d{5,}`)
	listingIDRe      = regexp.MustCompile(`/listing-\d+`)
	reviewIDRe       = regexp.MustCompile(`/(attraction|restaurant).*review.*-d\d+`)
	propertySlugRe   = regexp.MustCompile(`/property/[a-z0-9-]+$`)
)

// Path shapes that mark a URL as a listing or guide.
var (
	pluralTailRe   = regexp.MustCompile(`/(tours|properties|restaurants|activities)/?$`)
	categoryPageRe = regexp.MustCompile(`/(tours|properties|restaurants)/[^/]+/?$`)
	searchBrowseRe = regexp.MustCompile(`/(search|browse|results|category)`)
	segmentIDRe    = regexp.MustCompile(`\d{4,}`)
)

// transactionalDomains are sites whose ambiguous URLs are usually single
// property pages.
var transactionalDomains = []string{"coldwell", "brevitas", "encuentra24", "remax"}

const specificPathDepth = 4

// URLPatternAnalyzer guesses page type from URL structure alone. Rules are
// evaluated in a fixed order and the first match wins; this is ordered
// precedence, not best-match.
type URLPatternAnalyzer struct{}

// Analyze applies the rule list to the URL path. The category is accepted
// for contract symmetry with the HTML analyzer; URL shapes are currently
// category-agnostic.
func (a *URLPatternAnalyzer) Analyze(rawURL string, category models.Category) Verdict {
	if rawURL == "" {
		return Verdict{models.PageSpecific, 0.3, "No URL provided"}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return Verdict{models.PageSpecific, 0.5, "URL not parsable, defaulting to specific"}
	}
	path := strings.ToLower(parsed.Path)

	// Specific-page indicators: vendor ID shapes first, they are the most
	// reliable signal available.
	if viatorIDRe.MatchString(path) {
		return Verdict{models.PageSpecific, 0.95, "Viator-style ID (d742-12345)"}
	}
	if getYourGuideIDRe.MatchString(path) {
		return Verdict{models.PageSpecific, 0.95, "GetYourGuide-style ID (t12345)"}
	}
	if longNumericIDRe.MatchString(path) {
		return Verdict{models.PageSpecific, 0.90, "Contains 5+ digit ID"}
	}
	if listingIDRe.MatchString(path) {
		return Verdict{models.PageSpecific, 0.95, "Listing with ID"}
	}
	if reviewIDRe.MatchString(path) {
		return Verdict{models.PageSpecific, 0.95, "Single review page with ID"}
	}
	if propertySlugRe.MatchString(path) {
		return Verdict{models.PageSpecific, 0.85, "Property with slug"}
	}

	if depth := pathDepth(path); depth >= specificPathDepth {
		return Verdict{models.PageSpecific, 0.75, fmt.Sprintf("Deep path (%d levels)", depth)}
	}

	// General-page indicators.
	if pluralTailRe.MatchString(path) {
		return Verdict{models.PageGeneral, 0.90, "Ends in plural (listing page)"}
	}
	if categoryPageRe.MatchString(path) {
		segments := strings.Split(strings.TrimRight(path, "/"), "/")
		last := segments[len(segments)-1]
		if !segmentIDRe.MatchString(last) {
			return Verdict{models.PageGeneral, 0.85, "Category/destination page"}
		}
	}
	if searchBrowseRe.MatchString(path) {
		return Verdict{models.PageGeneral, 0.95, "Search/browse page"}
	}
	switch path {
	case "/", "", "/index", "/index.html":
		return Verdict{models.PageGeneral, 0.90, "Homepage"}
	}

	// Ambiguous. Known transactional real-estate hosts lean specific.
	host := strings.ToLower(parsed.Host)
	for _, domain := range transactionalDomains {
		if strings.Contains(host, domain) {
			return Verdict{models.PageSpecific, 0.60, "Real estate domain, likely property page"}
		}
	}

	// Extracting one item from a listing page recovers; extracting a
	// listing as one item does not, so ambiguity defaults to specific.
	return Verdict{models.PageSpecific, 0.50, "URL pattern inconclusive, defaulting to specific"}
}

func pathDepth(path string) int {
	depth := 0
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			depth++
		}
	}
	return depth
}
