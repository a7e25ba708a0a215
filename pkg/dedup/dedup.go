// Package dedup implements near-duplicate detection for discovered news items.
// Matching combines three weak signals: normalized URL equality, normalized
// title equality and summary similarity. Titles and URLs are noisy across
// re-publication and syndication, so any single match rejects the candidate.
package dedup

import "github.com/umputun/newsdigest/pkg/domain"

// DefaultSimilarityThreshold is the summary similarity above which two items
// are considered duplicates
const DefaultSimilarityThreshold = 0.75

// Engine decides whether a candidate item duplicates an existing one
type Engine struct {
	threshold float64
}

// NewEngine creates a deduplication engine. A zero threshold falls back to the default.
func NewEngine(threshold float64) *Engine {
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	return &Engine{threshold: threshold}
}

// IsDuplicate reports whether the candidate duplicates any item in the corpus
func (e *Engine) IsDuplicate(candidate domain.NewsItem, corpus []domain.NewsItem) bool {
	candURL := NormalizeURL(candidate.URL)
	candTitle := NormalizeTitle(candidate.Title)

	for _, existing := range corpus {
		if NormalizeURL(existing.URL) == candURL {
			return true
		}
		if NormalizeTitle(existing.Title) == candTitle {
			return true
		}
		if existing.Summary != "" && candidate.Summary != "" &&
			Similarity(existing.Summary, candidate.Summary) > e.threshold {
			return true
		}
	}
	return false
}
