package fetcher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdigest/pkg/content"
	"github.com/umputun/newsdigest/pkg/domain"
	"github.com/umputun/newsdigest/pkg/fetcher/mocks"
	"github.com/umputun/newsdigest/pkg/search"
)

func testStoreMock(corpus []domain.NewsItem, sources []domain.NewsSource) *mocks.StoreMock {
	return &mocks.StoreMock{
		LoadNewsFunc:    func(ctx context.Context) []domain.NewsItem { return corpus },
		SaveNewsFunc:    func(ctx context.Context, items []domain.NewsItem) error { return nil },
		LoadSourcesFunc: func(ctx context.Context) ([]domain.NewsSource, error) { return sources, nil },
		UpdateLastFetchTimeFunc: func(ctx context.Context) error { return nil },
		ShouldFetchNewsFunc:     func(ctx context.Context) bool { return true },
		ClearNewsArchiveFunc:    func(ctx context.Context) error { return nil },
		EnsureSeedNewsFunc:      func(ctx context.Context) error { return nil },
	}
}

func keysWith(key string) *mocks.KeyResolverMock {
	return &mocks.KeyResolverMock{ResolveFunc: func(ctx context.Context) (string, error) { return key, nil }}
}

func TestFetcher_Run_HappyPath(t *testing.T) {
	sources := []domain.NewsSource{{ID: "src-1", Name: "Example", URL: "https://example.com", Reliability: 8}}
	existing := []domain.NewsItem{{
		ID:      "old-1",
		Title:   "Existing article about robots",
		URL:     "https://example.com/robots/existing",
		Summary: "Already stored robot coverage with plenty of detail.",
	}}

	store := testStoreMock(existing, sources)
	searcher := &mocks.SearcherMock{
		SearchFunc: func(ctx context.Context, source domain.NewsSource, category domain.Category) ([]domain.CandidateResult, error) {
			if category != domain.CategoryAI {
				return nil, nil // only AI yields results in this scenario
			}
			return []domain.CandidateResult{
				{Title: "Fresh AI news", URL: "https://example.com/ai/fresh", Summary: "New coverage of AI policy debates.", Date: "2026-08-30"},
				{Title: "Existing article about robots", URL: "https://example.com/robots/existing-copy", Summary: "dup by title"},
			}, nil
		},
	}

	f := New(Params{Store: store, Searcher: searcher, Keys: keysWith("k"), SimilarityThreshold: 0.75})

	result, pairs := f.Run(context.Background())
	require.True(t, result.Success)
	require.NotNil(t, result.NewArticlesCount)
	assert.Equal(t, 1, *result.NewArticlesCount)
	assert.Equal(t, "fetched 1 new articles", result.Message)

	// one pair per (source, category)
	require.Len(t, pairs, 3)
	assert.Equal(t, 2, pairs[0].Candidates)
	assert.Equal(t, 1, pairs[0].Admitted)
	assert.Zero(t, pairs[1].Candidates)

	// saved corpus = existing + one admitted item, fully formed
	require.Len(t, store.SaveNewsCalls(), 1)
	savedItems := store.SaveNewsCalls()[0].Items
	require.Len(t, savedItems, 2)
	added := savedItems[1]
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "Fresh AI news", added.Title)
	assert.Equal(t, "src-1", added.SourceID)
	assert.Equal(t, domain.CategoryAI, added.Category)
	assert.Equal(t, "2026-08-30", added.Date)
	assert.NotEmpty(t, added.ImageURL)

	require.Len(t, store.UpdateLastFetchTimeCalls(), 1)
}

func TestFetcher_Run_NoSources(t *testing.T) {
	store := testStoreMock(nil, nil)
	searcher := &mocks.SearcherMock{}

	f := New(Params{Store: store, Searcher: searcher, Keys: keysWith("k")})

	result, pairs := f.Run(context.Background())
	require.True(t, result.Success)
	require.NotNil(t, result.NewArticlesCount)
	assert.Zero(t, *result.NewArticlesCount)
	assert.Empty(t, pairs)

	// seed data is put in place, no provider calls happen
	assert.Len(t, store.EnsureSeedNewsCalls(), 1)
	assert.Empty(t, searcher.SearchCalls())
}

func TestFetcher_Run_NoCredential(t *testing.T) {
	sources := []domain.NewsSource{{ID: "src-1", Name: "Example", URL: "https://example.com"}}
	store := testStoreMock(nil, sources)
	searcher := &mocks.SearcherMock{}

	f := New(Params{Store: store, Searcher: searcher, Keys: keysWith("")})

	result, _ := f.Run(context.Background())
	require.False(t, result.Success)
	assert.Contains(t, result.Message, "API key is not configured")
	assert.Empty(t, searcher.SearchCalls(), "no provider call without a credential")
	assert.Empty(t, store.SaveNewsCalls())
}

func TestFetcher_Run_KeyResolverError(t *testing.T) {
	sources := []domain.NewsSource{{ID: "src-1", Name: "Example", URL: "https://example.com"}}
	store := testStoreMock(nil, sources)
	keys := &mocks.KeyResolverMock{ResolveFunc: func(ctx context.Context) (string, error) {
		return "", errors.New("resolver exploded")
	}}

	f := New(Params{Store: store, Searcher: &mocks.SearcherMock{}, Keys: keys})

	result, _ := f.Run(context.Background())
	require.False(t, result.Success)
	assert.Contains(t, result.Message, "resolver exploded")
}

func TestFetcher_Run_PairFailureIsolation(t *testing.T) {
	sources := []domain.NewsSource{{ID: "src-1", Name: "Example", URL: "https://example.com"}}
	store := testStoreMock(nil, sources)
	searcher := &mocks.SearcherMock{
		SearchFunc: func(ctx context.Context, source domain.NewsSource, category domain.Category) ([]domain.CandidateResult, error) {
			if category == domain.CategoryRobotics {
				return nil, errors.New("provider timeout")
			}
			return []domain.CandidateResult{{
				Title:   "Story for " + string(category),
				URL:     "https://example.com/" + string(category) + "/story",
				Summary: "Distinct summary for category " + string(category) + " coverage.",
			}}, nil
		},
	}

	f := New(Params{Store: store, Searcher: searcher, Keys: keysWith("k")})

	result, pairs := f.Run(context.Background())
	require.True(t, result.Success, "one failing pair must not fail the run")
	require.NotNil(t, result.NewArticlesCount)
	assert.Equal(t, 2, *result.NewArticlesCount)

	require.Len(t, pairs, 3)
	assert.NoError(t, pairs[0].Err)
	assert.Error(t, pairs[1].Err)
	assert.NoError(t, pairs[2].Err)

	// results from the healthy pairs still get saved
	require.Len(t, store.SaveNewsCalls(), 1)
	assert.Len(t, store.SaveNewsCalls()[0].Items, 2)
}

func TestFetcher_Run_MissingKeyMidRunAborts(t *testing.T) {
	sources := []domain.NewsSource{{ID: "src-1", Name: "Example", URL: "https://example.com"}}
	store := testStoreMock(nil, sources)
	searcher := &mocks.SearcherMock{
		SearchFunc: func(ctx context.Context, source domain.NewsSource, category domain.Category) ([]domain.CandidateResult, error) {
			return nil, search.ErrNoAPIKey
		},
	}

	f := New(Params{Store: store, Searcher: searcher, Keys: keysWith("stale-key")})

	result, _ := f.Run(context.Background())
	require.False(t, result.Success)
	assert.Contains(t, result.Message, "API key is not configured")
	assert.Len(t, searcher.SearchCalls(), 1, "aborts on the first credential failure")
	assert.Empty(t, store.SaveNewsCalls())
}

func TestFetcher_Run_SameRunDuplicates(t *testing.T) {
	// two sources return the same article, only the first admission survives
	sources := []domain.NewsSource{
		{ID: "src-1", Name: "First", URL: "https://example.com"},
		{ID: "src-2", Name: "Second", URL: "https://mirror.example.org"},
	}
	store := testStoreMock(nil, sources)
	searcher := &mocks.SearcherMock{
		SearchFunc: func(ctx context.Context, source domain.NewsSource, category domain.Category) ([]domain.CandidateResult, error) {
			if category != domain.CategoryAI {
				return nil, nil
			}
			return []domain.CandidateResult{{
				Title:   "Shared syndicated headline",
				URL:     "https://" + source.ID + ".example.com/story",
				Summary: "Identical syndicated summary text reused across outlets everywhere.",
			}}, nil
		},
	}

	f := New(Params{Store: store, Searcher: searcher, Keys: keysWith("k")})

	result, pairs := f.Run(context.Background())
	require.True(t, result.Success)
	require.NotNil(t, result.NewArticlesCount)
	assert.Equal(t, 1, *result.NewArticlesCount, "same-run duplicate must be caught")

	require.Len(t, pairs, 6)
	assert.Equal(t, 1, pairs[0].Admitted)
	assert.Equal(t, 0, pairs[3].Admitted)
}

func TestFetcher_Run_SkipsEmptyTitleOrURL(t *testing.T) {
	sources := []domain.NewsSource{{ID: "src-1", Name: "Example", URL: "https://example.com"}}
	store := testStoreMock(nil, sources)
	searcher := &mocks.SearcherMock{
		SearchFunc: func(ctx context.Context, source domain.NewsSource, category domain.Category) ([]domain.CandidateResult, error) {
			if category != domain.CategoryAI {
				return nil, nil
			}
			return []domain.CandidateResult{
				{Title: "", URL: "https://example.com/no-title"},
				{Title: "No URL here", URL: ""},
			}, nil
		},
	}

	f := New(Params{Store: store, Searcher: searcher, Keys: keysWith("k")})

	result, _ := f.Run(context.Background())
	require.True(t, result.Success)
	require.NotNil(t, result.NewArticlesCount)
	assert.Zero(t, *result.NewArticlesCount)
}

func TestFetcher_Run_DateFallsBackToToday(t *testing.T) {
	sources := []domain.NewsSource{{ID: "src-1", Name: "Example", URL: "https://example.com"}}
	store := testStoreMock(nil, sources)
	searcher := &mocks.SearcherMock{
		SearchFunc: func(ctx context.Context, source domain.NewsSource, category domain.Category) ([]domain.CandidateResult, error) {
			if category != domain.CategoryAI {
				return nil, nil
			}
			return []domain.CandidateResult{{Title: "Undated story", URL: "https://example.com/undated", Summary: "s"}}, nil
		},
	}

	f := New(Params{Store: store, Searcher: searcher, Keys: keysWith("k")})
	fixed := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)
	f.SetNowFunc(func() time.Time { return fixed })

	result, _ := f.Run(context.Background())
	require.True(t, result.Success)

	saved := store.SaveNewsCalls()[0].Items
	require.Len(t, saved, 1)
	assert.Equal(t, "2026-08-31", saved[0].Date)
}

func TestFetcher_Run_SaveFailure(t *testing.T) {
	sources := []domain.NewsSource{{ID: "src-1", Name: "Example", URL: "https://example.com"}}
	store := testStoreMock(nil, sources)
	store.SaveNewsFunc = func(ctx context.Context, items []domain.NewsItem) error {
		return errors.New("disk full")
	}
	searcher := &mocks.SearcherMock{
		SearchFunc: func(ctx context.Context, source domain.NewsSource, category domain.Category) ([]domain.CandidateResult, error) {
			return nil, nil
		},
	}

	f := New(Params{Store: store, Searcher: searcher, Keys: keysWith("k")})

	result, _ := f.Run(context.Background())
	require.False(t, result.Success)
	assert.Contains(t, result.Message, "disk full")
}

func TestFetcher_Run_Enrichment(t *testing.T) {
	sources := []domain.NewsSource{{ID: "src-1", Name: "Example", URL: "https://example.com"}}
	store := testStoreMock(nil, sources)
	searcher := &mocks.SearcherMock{
		SearchFunc: func(ctx context.Context, source domain.NewsSource, category domain.Category) ([]domain.CandidateResult, error) {
			if category != domain.CategoryAI {
				return nil, nil
			}
			return []domain.CandidateResult{
				{Title: "Enrichable", URL: "https://example.com/enrich-me", Summary: "  <b>short</b> summary  "},
				{Title: "Unreachable", URL: "https://example.com/fetch-fails", Summary: "another distinct summary entirely different"},
			}, nil
		},
	}
	enricher := &mocks.EnricherMock{
		EnrichFunc: func(ctx context.Context, url string) (*content.Enrichment, error) {
			if url == "https://example.com/fetch-fails" {
				return nil, errors.New("connection refused")
			}
			return &content.Enrichment{Text: "full extracted article text", ImageURL: "https://example.com/img.jpg"}, nil
		},
		SanitizeSummaryFunc: func(summary string) string { return "clean " + summary },
	}

	f := New(Params{Store: store, Searcher: searcher, Keys: keysWith("k"), Enricher: enricher, EnrichConcurrency: 2})

	result, _ := f.Run(context.Background())
	require.True(t, result.Success)
	require.NotNil(t, result.NewArticlesCount)
	assert.Equal(t, 2, *result.NewArticlesCount, "failed enrichment keeps the item admitted")

	saved := store.SaveNewsCalls()[0].Items
	require.Len(t, saved, 2)
	assert.Equal(t, "full extracted article text", saved[0].Content)
	assert.Equal(t, "https://example.com/img.jpg", saved[0].ImageURL)
	assert.Empty(t, saved[1].Content)

	// summaries pass through the sanitizer
	assert.Contains(t, saved[0].Summary, "clean ")
	assert.Len(t, enricher.EnrichCalls(), 2)
}

func TestFetcher_CheckAndFetchNews_Gated(t *testing.T) {
	store := testStoreMock(nil, nil)
	store.ShouldFetchNewsFunc = func(ctx context.Context) bool { return false }
	searcher := &mocks.SearcherMock{}

	f := New(Params{Store: store, Searcher: searcher, Keys: keysWith("k")})

	result := f.CheckAndFetchNews(context.Background())
	require.True(t, result.Success)
	assert.Contains(t, result.Message, "skipped")
	assert.Nil(t, result.NewArticlesCount)
	assert.Empty(t, store.LoadSourcesCalls(), "gated run must not touch the pipeline")
}

func TestFetcher_CheckAndFetchNews_RunsWhenDue(t *testing.T) {
	store := testStoreMock(nil, nil)
	f := New(Params{Store: store, Searcher: &mocks.SearcherMock{}, Keys: keysWith("k")})

	result := f.CheckAndFetchNews(context.Background())
	require.True(t, result.Success)
	assert.Len(t, store.LoadSourcesCalls(), 1)
}

func TestFetcher_CheckAndFetchNews_RecoversPanic(t *testing.T) {
	store := testStoreMock(nil, nil)
	store.ShouldFetchNewsFunc = func(ctx context.Context) bool { panic("storage meltdown") }

	f := New(Params{Store: store, Searcher: &mocks.SearcherMock{}, Keys: keysWith("k")})

	result := f.CheckAndFetchNews(context.Background())
	require.False(t, result.Success)
	assert.Contains(t, result.Message, "storage meltdown")
}

func TestFetcher_ClearAndRefreshNews(t *testing.T) {
	store := testStoreMock(nil, nil)
	f := New(Params{Store: store, Searcher: &mocks.SearcherMock{}, Keys: keysWith("k")})

	result := f.ClearAndRefreshNews(context.Background())
	require.True(t, result.Success)
	assert.Len(t, store.ClearNewsArchiveCalls(), 1)
	assert.Len(t, store.EnsureSeedNewsCalls(), 1, "refresh with no sources re-seeds")
}

func TestFetcher_ClearAndRefreshNews_ClearFails(t *testing.T) {
	store := testStoreMock(nil, nil)
	store.ClearNewsArchiveFunc = func(ctx context.Context) error { return errors.New("locked") }

	f := New(Params{Store: store, Searcher: &mocks.SearcherMock{}, Keys: keysWith("k")})

	result := f.ClearAndRefreshNews(context.Background())
	require.False(t, result.Success)
	assert.Contains(t, result.Message, "locked")
}

func TestFetcher_Run_LoadSourcesFails(t *testing.T) {
	store := testStoreMock(nil, nil)
	store.LoadSourcesFunc = func(ctx context.Context) ([]domain.NewsSource, error) {
		return nil, errors.New("table missing")
	}

	f := New(Params{Store: store, Searcher: &mocks.SearcherMock{}, Keys: keysWith("k")})

	result, _ := f.Run(context.Background())
	require.False(t, result.Success)
	assert.Contains(t, result.Message, "table missing")
}
