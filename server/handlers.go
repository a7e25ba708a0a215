package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsdigest/pkg/domain"
)

// newsListHandler returns the corpus, optionally filtered by category and a
// free-text query, newest first
func (s *Server) newsListHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	items := s.store.LoadNews(ctx)

	if category := r.URL.Query().Get("category"); category != "" {
		if !domain.Category(category).Valid() {
			RenderError(w, r, fmt.Errorf("unknown category %q", category), http.StatusBadRequest)
			return
		}
		items = filterNews(items, func(item domain.NewsItem) bool {
			return item.Category == domain.Category(category)
		})
	}

	if query := strings.ToLower(r.URL.Query().Get("q")); query != "" {
		items = filterNews(items, func(item domain.NewsItem) bool {
			return strings.Contains(strings.ToLower(item.Title), query) ||
				strings.Contains(strings.ToLower(item.Summary), query) ||
				strings.Contains(strings.ToLower(item.Content), query)
		})
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Date > items[j].Date })
	RenderJSON(w, r, http.StatusOK, items)
}

// newsDeleteHandler removes a single item by id
func (s *Server) newsDeleteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	items := s.store.LoadNews(ctx)
	kept := filterNews(items, func(item domain.NewsItem) bool { return item.ID != id })
	if len(kept) == len(items) {
		RenderError(w, r, fmt.Errorf("news item %s not found", id), http.StatusNotFound)
		return
	}

	if err := s.store.SaveNews(ctx, kept); err != nil {
		lgr.Printf("[ERROR] failed to save news after delete: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"deleted": id})
}

// sourcesListHandler returns all configured sources
func (s *Server) sourcesListHandler(w http.ResponseWriter, r *http.Request) {
	sources, err := s.store.LoadSources(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to load sources: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, sources)
}

// sourceCreateHandler adds a new source
func (s *Server) sourceCreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var source domain.NewsSource
	if err := json.NewDecoder(r.Body).Decode(&source); err != nil {
		RenderError(w, r, fmt.Errorf("invalid source payload: %w", err), http.StatusBadRequest)
		return
	}
	if err := validateSource(&source); err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}
	if source.ID == "" {
		source.ID = domain.NewID()
	}

	sources, err := s.store.LoadSources(ctx)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	for _, existing := range sources {
		if existing.ID == source.ID {
			RenderError(w, r, fmt.Errorf("source %s already exists", source.ID), http.StatusConflict)
			return
		}
	}

	sources = append(sources, source)
	if err := s.store.SaveSources(ctx, sources); err != nil {
		lgr.Printf("[ERROR] failed to save sources: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusCreated, source)
}

// sourceUpdateHandler replaces an existing source
func (s *Server) sourceUpdateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	var source domain.NewsSource
	if err := json.NewDecoder(r.Body).Decode(&source); err != nil {
		RenderError(w, r, fmt.Errorf("invalid source payload: %w", err), http.StatusBadRequest)
		return
	}
	source.ID = id
	if err := validateSource(&source); err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	sources, err := s.store.LoadSources(ctx)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	found := false
	for i := range sources {
		if sources[i].ID == id {
			sources[i] = source
			found = true
			break
		}
	}
	if !found {
		RenderError(w, r, fmt.Errorf("source %s not found", id), http.StatusNotFound)
		return
	}

	if err := s.store.SaveSources(ctx, sources); err != nil {
		lgr.Printf("[ERROR] failed to save sources: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, source)
}

// sourceDeleteHandler removes a source. Dangling sourceId references in the
// corpus are left alone, matching the loose ownership model of the admin UI.
func (s *Server) sourceDeleteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	sources, err := s.store.LoadSources(ctx)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	kept := make([]domain.NewsSource, 0, len(sources))
	for _, source := range sources {
		if source.ID != id {
			kept = append(kept, source)
		}
	}
	if len(kept) == len(sources) {
		RenderError(w, r, fmt.Errorf("source %s not found", id), http.StatusNotFound)
		return
	}

	if err := s.store.SaveSources(ctx, kept); err != nil {
		lgr.Printf("[ERROR] failed to save sources: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"deleted": id})
}

// apiKeyHandler stores the search credential locally
func (s *Server) apiKeyHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RenderError(w, r, fmt.Errorf("invalid payload: %w", err), http.StatusBadRequest)
		return
	}

	if err := s.store.SetAPIKey(r.Context(), payload.Key); err != nil {
		lgr.Printf("[ERROR] failed to save api key: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "saved"})
}

// fetchHandler is the gated fetch trigger used by widgets and external callers
func (s *Server) fetchHandler(w http.ResponseWriter, r *http.Request) {
	result := s.fetches.CheckAndFetchNews(r.Context())
	RenderJSON(w, r, resultCode(result), result)
}

// fetchForceHandler runs an ungated fetch and reports per-pair outcomes
func (s *Server) fetchForceHandler(w http.ResponseWriter, r *http.Request) {
	result, pairs := s.fetches.Run(r.Context())

	type pairView struct {
		SourceID   string          `json:"sourceId"`
		SourceName string          `json:"sourceName"`
		Category   domain.Category `json:"category"`
		Candidates int             `json:"candidates"`
		Admitted   int             `json:"admitted"`
		Error      string          `json:"error,omitempty"`
	}
	views := make([]pairView, 0, len(pairs))
	for _, p := range pairs {
		view := pairView{SourceID: p.SourceID, SourceName: p.SourceName, Category: p.Category,
			Candidates: p.Candidates, Admitted: p.Admitted}
		if p.Err != nil {
			view.Error = p.Err.Error()
		}
		views = append(views, view)
	}

	RenderJSON(w, r, resultCode(result), map[string]interface{}{
		"result": result,
		"pairs":  views,
	})
}

// refreshHandler wipes the archive and rebuilds it from scratch
func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	result := s.fetches.ClearAndRefreshNews(r.Context())
	RenderJSON(w, r, resultCode(result), result)
}

func resultCode(result domain.FetchNewsResult) int {
	if result.Success {
		return http.StatusOK
	}
	return http.StatusInternalServerError
}

func validateSource(source *domain.NewsSource) error {
	if source.Name == "" {
		return fmt.Errorf("source name is required")
	}
	if source.URL == "" {
		return fmt.Errorf("source url is required")
	}
	if source.Reliability < 1 || source.Reliability > 10 {
		return fmt.Errorf("source reliability must be between 1 and 10")
	}
	return nil
}

func filterNews(items []domain.NewsItem, keep func(domain.NewsItem) bool) []domain.NewsItem {
	result := make([]domain.NewsItem, 0, len(items))
	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}
