// Package content enriches admitted news items with full article text
// extracted from their URLs.
package content

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
	"github.com/microcosm-cc/bluemonday"
)

// Enrichment holds the extracted article content
type Enrichment struct {
	Text     string // plain text body
	ImageURL string // main article image, may be empty
}

// Enricher fetches article pages and extracts their text using trafilatura
type Enricher struct {
	timeout       time.Duration
	minTextLength int
	userAgent     string
	client        *http.Client
	sanitizer     *bluemonday.Policy
}

// NewEnricher creates a content enricher
func NewEnricher(timeout time.Duration, minTextLength int, userAgent string) *Enricher {
	return &Enricher{
		timeout:       timeout,
		minTextLength: minTextLength,
		userAgent:     userAgent,
		client:        &http.Client{Timeout: timeout},
		sanitizer:     bluemonday.StrictPolicy(),
	}
}

// Enrich retrieves and extracts text content from the given URL
func (e *Enricher) Enrich(ctx context.Context, urlStr string) (*Enrichment, error) {
	// validate URL
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid URL: %s", urlStr)
	}

	// create request with context
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", e.userAgent)
	addBrowserHeaders(req)

	// fetch content
	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	// configure trafilatura options
	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		ExcludeTables:   false,
		IncludeImages:   true,
		IncludeLinks:    false,
		Deduplicate:     true,
		OriginalURL:     parsedURL,
	}

	// extract content
	result, err := trafilatura.Extract(resp.Body, opts)
	if err != nil {
		return nil, fmt.Errorf("extract content from %s: %w", urlStr, err)
	}
	if result == nil {
		return nil, fmt.Errorf("no content extracted from %s", urlStr)
	}

	// extraction can pick up markup fragments, strip anything but text
	text := strings.TrimSpace(e.sanitizer.Sanitize(result.ContentText))
	if text == "" {
		return nil, fmt.Errorf("no text content extracted from %s", urlStr)
	}
	if len(text) < e.minTextLength {
		return nil, fmt.Errorf("extracted text too short (%d chars) from %s", len(text), urlStr)
	}

	return &Enrichment{Text: text, ImageURL: result.Metadata.Image}, nil
}

// SanitizeSummary strips any markup from a provider-supplied summary
func (e *Enricher) SanitizeSummary(summary string) string {
	return strings.TrimSpace(e.sanitizer.Sanitize(summary))
}
