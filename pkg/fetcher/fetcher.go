// Package fetcher orchestrates news discovery: it iterates all configured
// (source, category) pairs, collects candidates from the search provider,
// filters them through the deduplication engine and merges the survivors into
// the persisted corpus.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newsdigest/pkg/content"
	"github.com/umputun/newsdigest/pkg/dedup"
	"github.com/umputun/newsdigest/pkg/domain"
	"github.com/umputun/newsdigest/pkg/search"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/searcher.go -pkg mocks -skip-ensure -fmt goimports . Searcher
//go:generate moq -out mocks/key_resolver.go -pkg mocks -skip-ensure -fmt goimports . KeyResolver
//go:generate moq -out mocks/enricher.go -pkg mocks -skip-ensure -fmt goimports . Enricher

// Store is the persistence interface for the orchestrator
type Store interface {
	LoadNews(ctx context.Context) []domain.NewsItem
	SaveNews(ctx context.Context, items []domain.NewsItem) error
	LoadSources(ctx context.Context) ([]domain.NewsSource, error)
	UpdateLastFetchTime(ctx context.Context) error
	ShouldFetchNews(ctx context.Context) bool
	ClearNewsArchive(ctx context.Context) error
	EnsureSeedNews(ctx context.Context) error
}

// Searcher queries the external provider for one (source, category) pair
type Searcher interface {
	Search(ctx context.Context, source domain.NewsSource, category domain.Category) ([]domain.CandidateResult, error)
}

// KeyResolver provides the search credential
type KeyResolver interface {
	Resolve(ctx context.Context) (string, error)
}

// Enricher optionally fills admitted items with full article text
type Enricher interface {
	Enrich(ctx context.Context, url string) (*content.Enrichment, error)
	SanitizeSummary(summary string) string
}

// PairResult records the outcome of one (source, category) pair, making
// failure isolation visible to callers and tests
type PairResult struct {
	SourceID   string          `json:"sourceId"`
	SourceName string          `json:"sourceName"`
	Category   domain.Category `json:"category"`
	Candidates int             `json:"candidates"`
	Admitted   int             `json:"admitted"`
	Err        error           `json:"-"`
}

// Params holds all dependencies and settings for the fetcher
type Params struct {
	Store               Store
	Searcher            Searcher
	Keys                KeyResolver
	Enricher            Enricher // nil disables enrichment
	SimilarityThreshold float64
	EnrichConcurrency   int
}

// Fetcher runs the discovery pipeline. Runs are mutually excluded so a manual
// trigger can't race a scheduled one on the final save.
type Fetcher struct {
	store             Store
	searcher          Searcher
	keys              KeyResolver
	enricher          Enricher
	engine            *dedup.Engine
	enrichConcurrency int
	nowFn             func() time.Time

	mu sync.Mutex // serialize whole fetch runs
}

// New creates a fetcher from params
func New(params Params) *Fetcher {
	if params.EnrichConcurrency == 0 {
		params.EnrichConcurrency = 5
	}
	return &Fetcher{
		store:             params.Store,
		searcher:          params.Searcher,
		keys:              params.Keys,
		enricher:          params.Enricher,
		engine:            dedup.NewEngine(params.SimilarityThreshold),
		enrichConcurrency: params.EnrichConcurrency,
		nowFn:             time.Now,
	}
}

// SetNowFunc overrides the clock, used by tests
func (f *Fetcher) SetNowFunc(nowFn func() time.Time) {
	f.nowFn = nowFn
}

// FetchNews runs a full discovery cycle and returns the summary result
func (f *Fetcher) FetchNews(ctx context.Context) domain.FetchNewsResult {
	result, _ := f.Run(ctx)
	return result
}

// Run executes a full discovery cycle and returns the summary plus per-pair outcomes
func (f *Fetcher) Run(ctx context.Context) (domain.FetchNewsResult, []PairResult) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sources, err := f.store.LoadSources(ctx)
	if err != nil {
		return failure(fmt.Sprintf("failed to load sources: %v", err)), nil
	}

	if len(sources) == 0 {
		lgr.Printf("[WARN] no news sources configured, using seed data")
		if err := f.store.EnsureSeedNews(ctx); err != nil {
			lgr.Printf("[WARN] failed to ensure seed news: %v", err)
		}
		return success("no sources configured, seed data in place", 0), nil
	}

	// without a credential no call can succeed, fail before touching the network
	apiKey, err := f.keys.Resolve(ctx)
	if err != nil {
		return failure(fmt.Sprintf("failed to resolve search credential: %v", err)), nil
	}
	if apiKey == "" {
		return failure("search API key is not configured, set it in the settings"), nil
	}

	corpus := f.store.LoadNews(ctx)
	lgr.Printf("[INFO] starting fetch cycle, %d sources, %d existing items", len(sources), len(corpus))

	var pairs []PairResult
	var admitted []int // indices of newly admitted items in the corpus

	for _, source := range sources {
		for _, category := range domain.Categories() {
			pair := PairResult{SourceID: source.ID, SourceName: source.Name, Category: category}

			candidates, err := f.searcher.Search(ctx, source, category)
			if err != nil {
				// a credential failure mid-run can't recover, abort the cycle
				if errors.Is(err, search.ErrNoAPIKey) {
					return failure("search API key is not configured, set it in the settings"), pairs
				}
				lgr.Printf("[WARN] pair %s/%s failed: %v", source.Name, category, err)
				pair.Err = err
				pairs = append(pairs, pair)
				continue // one bad source must not abort the whole run
			}

			pair.Candidates = len(candidates)
			for _, cand := range candidates {
				item := f.makeItem(cand, source, category)
				if item.Title == "" || item.URL == "" {
					lgr.Printf("[DEBUG] skipping candidate with empty title or url from %s/%s", source.Name, category)
					continue
				}
				// dedup runs against the accumulated corpus, not just the
				// original, so same-run duplicates are caught too
				if f.engine.IsDuplicate(item, corpus) {
					lgr.Printf("[DEBUG] duplicate candidate %q from %s/%s", item.Title, source.Name, category)
					continue
				}
				corpus = append(corpus, item)
				admitted = append(admitted, len(corpus)-1)
				pair.Admitted++
			}

			pairs = append(pairs, pair)
		}
	}

	if f.enricher != nil && len(admitted) > 0 {
		f.enrichItems(ctx, corpus, admitted)
	}

	if err := f.store.SaveNews(ctx, corpus); err != nil {
		return failure(fmt.Sprintf("failed to save news: %v", err)), pairs
	}
	if err := f.store.UpdateLastFetchTime(ctx); err != nil {
		lgr.Printf("[WARN] failed to update last fetch time: %v", err)
	}

	failed := 0
	for _, p := range pairs {
		if p.Err != nil {
			failed++
		}
	}
	lgr.Printf("[INFO] fetch cycle completed, %d new articles, %d/%d pairs failed",
		len(admitted), failed, len(pairs))

	return success(fmt.Sprintf("fetched %d new articles", len(admitted)), len(admitted)), pairs
}

// CheckAndFetchNews runs the pipeline only if the fetch interval has elapsed.
// It never panics to the caller, all failures come back as a result.
func (f *Fetcher) CheckAndFetchNews(ctx context.Context) (result domain.FetchNewsResult) {
	defer func() {
		if r := recover(); r != nil {
			lgr.Printf("[ERROR] panic during gated fetch: %v", r)
			result = failure(fmt.Sprintf("failed to check if news should be fetched: %v", r))
		}
	}()

	if !f.store.ShouldFetchNews(ctx) {
		return success("skipped fetching: last fetch was too recent", -1)
	}
	return f.FetchNews(ctx)
}

// ClearAndRefreshNews wipes the archive and rebuilds it with a fresh fetch
func (f *Fetcher) ClearAndRefreshNews(ctx context.Context) domain.FetchNewsResult {
	if err := f.store.ClearNewsArchive(ctx); err != nil {
		return failure(fmt.Sprintf("failed to clear news archive: %v", err))
	}
	return f.FetchNews(ctx)
}

// makeItem converts a validated candidate into a stored news item
func (f *Fetcher) makeItem(cand domain.CandidateResult, source domain.NewsSource, category domain.Category) domain.NewsItem {
	date := cand.Date
	if date == "" {
		date = f.nowFn().Format("2006-01-02")
	}

	summary := cand.Summary
	if f.enricher != nil {
		summary = f.enricher.SanitizeSummary(summary)
	}

	return domain.NewsItem{
		ID:       domain.NewID(),
		Title:    cand.Title,
		Summary:  summary,
		URL:      cand.URL,
		Date:     date,
		SourceID: source.ID,
		Category: category,
		ImageURL: domain.ImageURLFor(cand.Title),
	}
}

// enrichItems fills admitted items with extracted article text. Dedup already
// ran, so pairs can be processed concurrently; corpus slots are disjoint per
// goroutine which keeps writes race-free.
func (f *Fetcher) enrichItems(ctx context.Context, corpus []domain.NewsItem, admitted []int) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.enrichConcurrency)

	for _, idx := range admitted {
		g.Go(func() error {
			item := &corpus[idx]
			enriched, err := f.enricher.Enrich(gctx, item.URL)
			if err != nil {
				lgr.Printf("[DEBUG] enrichment failed for %s: %v", item.URL, err)
				return nil // enrichment is best-effort, the item stays admitted
			}
			item.Content = enriched.Text
			if enriched.ImageURL != "" {
				item.ImageURL = enriched.ImageURL
			}
			return nil
		})
	}

	_ = g.Wait() // errors are swallowed per item
}

func success(message string, count int) domain.FetchNewsResult {
	res := domain.FetchNewsResult{Success: true, Message: message}
	if count >= 0 {
		res.NewArticlesCount = &count
	}
	return res
}

func failure(message string) domain.FetchNewsResult {
	return domain.FetchNewsResult{Success: false, Message: message}
}
