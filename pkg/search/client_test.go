package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdigest/pkg/config"
	"github.com/umputun/newsdigest/pkg/domain"
	"github.com/umputun/newsdigest/pkg/search/mocks"
)

func testConfig(endpoint string) config.ProviderConfig {
	return config.ProviderConfig{
		Endpoint:          endpoint,
		Model:             "llama-3.1-sonar-small-128k-online",
		Temperature:       0.2,
		TopP:              0.9,
		MaxTokens:         1000,
		Timeout:           5 * time.Second,
		MaxRetries:        3,
		RetryDelay:        time.Millisecond,
		RateLimitCooldown: 100 * time.Millisecond,
		RecencyFilter:     "day",
	}
}

func staticKeys(key string) *mocks.KeyResolverMock {
	return &mocks.KeyResolverMock{
		ResolveFunc: func(ctx context.Context) (string, error) { return key, nil },
	}
}

func chatResponse(content string) string {
	resp := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]interface{}{"role": "assistant", "content": content}},
		},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func testSource() domain.NewsSource {
	return domain.NewsSource{ID: "src-1", Name: "Example News", URL: "https://www.example.com", Reliability: 8}
}

func TestClient_Search(t *testing.T) {
	candidatesJSON := `[
		{"title":"AI ethics under review","url":"https://example.com/news/ai-ethics","summary":"Regulators examine AI ethics frameworks.","date":"2026-08-30"},
		{"title":"Off-domain story","url":"https://other.org/story","summary":"Should be discarded.","date":"2026-08-30"},
		{"title":"Root path story","url":"https://example.com/","summary":"Should be discarded too.","date":"2026-08-30"}
	]`

	var gotRequest []byte
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotRequest, _ = io.ReadAll(r.Body)
		fmt.Fprint(w, chatResponse(candidatesJSON))
	}))
	defer ts.Close()

	c := NewClient(testConfig(ts.URL), staticKeys("test-key"))
	candidates, err := c.Search(context.Background(), testSource(), domain.CategoryAI)
	require.NoError(t, err)

	// off-domain and root-path candidates are silently discarded
	require.Len(t, candidates, 1)
	assert.Equal(t, "AI ethics under review", candidates[0].Title)
	assert.Equal(t, "https://example.com/news/ai-ethics", candidates[0].URL)

	// request carries the provider search extensions
	var req map[string]interface{}
	require.NoError(t, json.Unmarshal(gotRequest, &req))
	assert.Equal(t, "llama-3.1-sonar-small-128k-online", req["model"])
	assert.Equal(t, []interface{}{"www.example.com"}, req["search_domain_filter"])
	assert.Equal(t, "day", req["search_recency_filter"])
	assert.InDelta(t, 0.2, req["temperature"].(float64), 0.0001)
	assert.InDelta(t, 0.9, req["top_p"].(float64), 0.0001)
	assert.InDelta(t, 1000, req["max_tokens"].(float64), 0.0001)
}

func TestClient_Search_NoAPIKey(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer ts.Close()

	c := NewClient(testConfig(ts.URL), staticKeys(""))
	_, err := c.Search(context.Background(), testSource(), domain.CategoryAI)
	require.ErrorIs(t, err, ErrNoAPIKey)
	assert.Zero(t, atomic.LoadInt32(&calls), "no network call without a credential")
}

func TestClient_Search_RetryAfterRateLimit(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, chatResponse(`[{"title":"t","url":"https://example.com/a/b","summary":"s","date":"2026-08-30"}]`))
	}))
	defer ts.Close()

	cfg := testConfig(ts.URL)
	c := NewClient(cfg, staticKeys("test-key"))

	var slept []time.Duration
	c.sleep = func(d time.Duration) { slept = append(slept, d) }

	candidates, err := c.Search(context.Background(), testSource(), domain.CategoryAI)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	// 429 adds the rate-limit cooldown on top of the normal retry delay
	require.Len(t, slept, 1)
	assert.Equal(t, cfg.RetryDelay+cfg.RateLimitCooldown, slept[0])
}

func TestClient_Search_AllAttemptsFail(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := NewClient(testConfig(ts.URL), staticKeys("test-key"))
	c.sleep = func(time.Duration) {}

	_, err := c.Search(context.Background(), testSource(), domain.CategoryAI)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_Search_EmptyContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chatResponse(""))
	}))
	defer ts.Close()

	c := NewClient(testConfig(ts.URL), staticKeys("test-key"))
	c.sleep = func(time.Duration) {}

	_, err := c.Search(context.Background(), testSource(), domain.CategoryAI)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty content")
}

func TestParseCandidates(t *testing.T) {
	t.Run("direct array", func(t *testing.T) {
		candidates, err := parseCandidates(`[{"title":"a","url":"https://x/1","summary":"s","date":"2026-08-30"}]`)
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, "a", candidates[0].Title)
	})

	t.Run("array wrapped in prose", func(t *testing.T) {
		content := "Here are the results:\n```json\n[{\"title\":\"b\",\"url\":\"https://x/2\",\"summary\":\"s\",\"date\":\"2026-08-30\"}]\n```\nHope this helps."
		candidates, err := parseCandidates(content)
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, "b", candidates[0].Title)
	})

	t.Run("empty array", func(t *testing.T) {
		candidates, err := parseCandidates(`[]`)
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("no array at all", func(t *testing.T) {
		_, err := parseCandidates("I could not find any relevant news.")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no json array")
	})

	t.Run("malformed array", func(t *testing.T) {
		_, err := parseCandidates(`some text [not json] more text`)
		require.Error(t, err)
	})
}

func TestCheckCandidateURL(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		domain string
		reject bool
	}{
		{name: "valid article url", url: "https://example.com/news/article-1", domain: "example.com", reject: false},
		{name: "www tolerated", url: "https://www.example.com/news/article-1", domain: "example.com", reject: false},
		{name: "subdomain tolerated", url: "https://blog.example.com/post", domain: "example.com", reject: false},
		{name: "missing url", url: "", domain: "example.com", reject: true},
		{name: "ftp scheme", url: "ftp://example.com/file", domain: "example.com", reject: true},
		{name: "root path", url: "https://example.com/", domain: "example.com", reject: true},
		{name: "no path", url: "https://example.com", domain: "example.com", reject: true},
		{name: "wrong domain", url: "https://evil.org/article", domain: "example.com", reject: true},
		{name: "suffix trick rejected", url: "https://notexample.com/article", domain: "example.com", reject: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason := checkCandidateURL(tt.url, tt.domain)
			if tt.reject {
				assert.NotEmpty(t, reason)
				return
			}
			assert.Empty(t, reason)
		})
	}
}

func TestSearchDomain(t *testing.T) {
	assert.Equal(t, "www.example.com", searchDomain("https://www.example.com"))
	assert.Equal(t, "example.com", searchDomain("https://example.com/path"))
	assert.Equal(t, "not a url", searchDomain("not a url"))
}

func TestUserPrompt(t *testing.T) {
	prompt := userPrompt(testSource(), domain.CategoryBiotech)
	assert.Contains(t, prompt, "Biotechnology")
	assert.Contains(t, prompt, "crispr")
	assert.Contains(t, prompt, "https://www.example.com")
	assert.Contains(t, prompt, "JSON")
}
