// Package contenttype decides WHAT a page is about: one category out of the
// registry's fixed set. Detection cascades from cheap deterministic signals
// (domain, keywords) to an optional LLM stage, and always produces a result.
package contenttype

import (
	"net/url"
	"strings"

	"github.com/ticofinder/webtriage/models"
	"github.com/ticofinder/webtriage/pkg/registry"
)

// Matcher checks a URL's host against the registry's per-category domain
// substrings.
type Matcher struct {
	registry *registry.Registry
}

func NewMatcher(reg *registry.Registry) *Matcher {
	return &Matcher{registry: reg}
}

// Match returns the first category whose domain list matches the URL's host,
// in registry order. Malformed or empty URLs simply do not match; the caller
// must never fail on bad input because classification is advisory.
func (m *Matcher) Match(rawURL string) (models.Category, bool) {
	if rawURL == "" {
		return "", false
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return "", false
	}

	host := strings.ToLower(parsed.Host)
	host = strings.TrimPrefix(host, "www.")

	for _, profile := range m.registry.Profiles() {
		for _, pattern := range profile.Domains {
			if strings.Contains(host, strings.ToLower(pattern)) {
				return profile.Category, true
			}
		}
	}

	return "", false
}
