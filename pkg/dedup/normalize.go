package dedup

import (
	"net/url"
	"strings"
)

// tracking query parameters stripped during URL normalization
var trackingParams = []string{"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content", "fbclid", "gclid"}

// NormalizeURL strips tracking parameters, query and fragment from a URL,
// returning scheme://host/path. On parse failure the input is returned unchanged.
func NormalizeURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return rawURL
	}

	q := u.Query()
	for _, p := range trackingParams {
		q.Del(p)
	}

	return u.Scheme + "://" + u.Host + u.Path
}

// NormalizeTitle lowercases, trims and collapses internal whitespace runs
func NormalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}

// Similarity computes Jaccard similarity over token sets of two strings.
// Tokens shorter than 4 characters are ignored. Returns 0 if either set is empty.
func Similarity(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for tok := range setA {
		if setB[tok] {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Split(NormalizeTitle(s), " ") {
		if len(tok) > 3 {
			set[tok] = true
		}
	}
	return set
}
