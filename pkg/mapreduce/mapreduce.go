// Package mapreduce aggregates per-page word frequencies across a batch run
// into corpus-level keyword counts.
package mapreduce

import "github.com/ticofinder/webtriage/pkg/analytics"

// Map counts word occurrences in one page's extracted text. Stopword
// filtering happens inside the analytics layer.
func Map(content string, a *analytics.Analytics) map[string]int {
	return a.WordFrequency(content)
}

// Reduce merges the per-page counts into one corpus-wide frequency map.
func Reduce(intermediate []map[string]int) map[string]int {
	merged := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			merged[word] += count
		}
	}

	return merged
}
