// Package search queries an LLM-backed search provider for candidate news
// articles, one request per (source, category) pair. The provider speaks the
// OpenAI chat-completions dialect extended with domain and recency filters.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/sashabaranov/go-openai"

	"github.com/umputun/newsdigest/pkg/config"
	"github.com/umputun/newsdigest/pkg/domain"
)

//go:generate moq -out mocks/key_resolver.go -pkg mocks -skip-ensure -fmt goimports . KeyResolver

// ErrNoAPIKey indicates the search credential is not configured. This is a
// whole-operation failure for the caller, not a per-source skip.
var ErrNoAPIKey = errors.New("search API key is not configured")

// KeyResolver provides the search credential
type KeyResolver interface {
	Resolve(ctx context.Context) (string, error)
}

// Client issues search requests with retry, timeout and validation
type Client struct {
	cfg        config.ProviderConfig
	keys       KeyResolver
	httpClient *http.Client
	sleep      func(time.Duration) // injectable for tests
}

// NewClient creates a search client for the configured provider
func NewClient(cfg config.ProviderConfig, keys KeyResolver) *Client {
	return &Client{
		cfg:        cfg,
		keys:       keys,
		httpClient: &http.Client{},
		sleep:      time.Sleep,
	}
}

// searchRequest extends the OpenAI chat request with provider-level search filters
type searchRequest struct {
	openai.ChatCompletionRequest
	SearchDomainFilter  []string `json:"search_domain_filter,omitempty"`
	SearchRecencyFilter string   `json:"search_recency_filter,omitempty"`
}

// Search queries the provider for candidate articles from one source in one
// category. Returns validated candidates, possibly empty. Retries transient
// failures up to the configured attempt budget.
func (c *Client) Search(ctx context.Context, source domain.NewsSource, category domain.Category) ([]domain.CandidateResult, error) {
	apiKey, err := c.keys.Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve api key: %w", err)
	}
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	domainFilter := searchDomain(source.URL)
	body, err := json.Marshal(searchRequest{
		ChatCompletionRequest: openai.ChatCompletionRequest{
			Model:       c.cfg.Model,
			Temperature: float32(c.cfg.Temperature),
			TopP:        float32(c.cfg.TopP),
			MaxTokens:   c.cfg.MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt(source, category)},
			},
		},
		SearchDomainFilter:  []string{domainFilter},
		SearchRecencyFilter: c.cfg.RecencyFilter,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		candidates, err := c.attempt(ctx, apiKey, body)
		if err == nil {
			return c.validate(candidates, source, category, domainFilter), nil
		}
		lastErr = err

		lgr.Printf("[WARN] search attempt %d/%d failed for %s/%s: %v",
			attempt, c.cfg.MaxRetries, source.Name, category, err)

		if attempt == c.cfg.MaxRetries {
			break
		}

		// rate-limited providers get an extra cooldown on top of the normal delay
		delay := c.cfg.RetryDelay
		if isRateLimited(err) {
			delay += c.cfg.RateLimitCooldown
		}
		c.sleep(delay)
	}

	return nil, fmt.Errorf("search failed after %d attempts for %s/%s: %w",
		c.cfg.MaxRetries, source.Name, category, lastErr)
}

// rateLimitError marks an HTTP 429 response so the retry loop can cool down
type rateLimitError struct {
	err error
}

func (e *rateLimitError) Error() string { return e.err.Error() }
func (e *rateLimitError) Unwrap() error { return e.err }

func isRateLimited(err error) bool {
	var rle *rateLimitError
	return errors.As(err, &rle)
}

// attempt issues a single provider request with its own timeout
func (c *Client) attempt(ctx context.Context, apiKey string, body []byte) ([]domain.CandidateResult, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	endpoint := strings.TrimRight(c.cfg.Endpoint, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &rateLimitError{err: fmt.Errorf("provider rate limited: %s", resp.Status)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned %s", resp.Status)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if len(respBody) == 0 {
		return nil, fmt.Errorf("empty response body")
	}

	var chatResp openai.ChatCompletionResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, fmt.Errorf("parse provider response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in provider response")
	}

	content := chatResp.Choices[0].Message.Content
	if content == "" {
		return nil, fmt.Errorf("empty content in provider response")
	}

	return parseCandidates(content)
}

// parseCandidates extracts the JSON array of candidates from the response
// content, trying a direct parse first and falling back to the first bracketed
// substring
func parseCandidates(content string) ([]domain.CandidateResult, error) {
	var candidates []domain.CandidateResult
	if err := json.Unmarshal([]byte(content), &candidates); err == nil {
		return candidates, nil
	}

	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || start >= end {
		return nil, fmt.Errorf("no json array found in response")
	}

	if err := json.Unmarshal([]byte(content[start:end+1]), &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse json array response: %w", err)
	}
	return candidates, nil
}

// validate silently discards candidates with missing, malformed or off-domain
// URLs. An empty result is a valid outcome.
func (c *Client) validate(candidates []domain.CandidateResult, source domain.NewsSource, category domain.Category, domainFilter string) []domain.CandidateResult {
	valid := make([]domain.CandidateResult, 0, len(candidates))
	for _, cand := range candidates {
		if reason := checkCandidateURL(cand.URL, domainFilter); reason != "" {
			lgr.Printf("[DEBUG] discarding candidate %q for %s/%s: %s", cand.URL, source.Name, category, reason)
			continue
		}
		valid = append(valid, cand)
	}
	return valid
}

// checkCandidateURL returns a rejection reason, empty string if the URL is acceptable
func checkCandidateURL(rawURL, sourceDomain string) string {
	if rawURL == "" {
		return "missing url"
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Sprintf("invalid url: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Sprintf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "missing host"
	}
	if u.Path == "" || u.Path == "/" {
		return "root path, not an article"
	}
	if !hostMatches(u.Host, sourceDomain) {
		return fmt.Sprintf("host %q does not match source domain %q", u.Host, sourceDomain)
	}
	return ""
}

// hostMatches reports whether the host belongs to the source domain,
// tolerating www prefixes and subdomains
func hostMatches(host, sourceDomain string) bool {
	host = strings.ToLower(strings.TrimPrefix(host, "www."))
	sourceDomain = strings.ToLower(strings.TrimPrefix(sourceDomain, "www."))
	if sourceDomain == "" {
		return false
	}
	return host == sourceDomain || strings.HasSuffix(host, "."+sourceDomain)
}

// searchDomain extracts the hostname from the source URL for the provider's
// domain filter, falling back to the raw value if it doesn't parse
func searchDomain(sourceURL string) string {
	u, err := url.Parse(sourceURL)
	if err != nil || u.Host == "" {
		return sourceURL
	}
	return u.Host
}
