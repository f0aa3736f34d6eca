// Package htmltext extracts visible text from raw markup for the keyword and
// phrase scorers, and distills main-article content for bounded LLM prompts.
package htmltext

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// Extract returns the page's visible text with script, style and noscript
// content removed, whitespace-normalized to single spaces. Malformed markup
// degrades to whatever text the parser can recover; it never fails.
func Extract(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	doc.Find("script,style,noscript").Remove()
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// Article runs readability over the page and returns the main article text,
// which makes a much denser LLM prompt than the full page. Falls back to
// Extract when readability rejects the document.
func Article(rawURL, html string) string {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		parsedURL = &url.URL{}
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), parsedURL)
	if err != nil || strings.TrimSpace(article.TextContent) == "" {
		return Extract(html)
	}

	return strings.Join(strings.Fields(article.TextContent), " ")
}

// Excerpt bounds s to at most n bytes, cutting on a rune boundary.
func Excerpt(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[:n]
	// Drop trailing bytes until the last rune decodes cleanly, so the cut
	// never leaves a torn multi-byte sequence behind.
	for len(cut) > 0 {
		r, size := utf8.DecodeLastRuneInString(cut)
		if r != utf8.RuneError || size > 1 {
			break
		}
		cut = cut[:len(cut)-1]
	}
	return cut
}
