package server

import (
	"log"
	"net/http"

	"github.com/umputun/newsdigest/pkg/domain"
	"github.com/umputun/newsdigest/pkg/feed"
)

// rssHandler serves the digest as RSS.
// Supports both /rss and /rss/{category} patterns.
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// get category from path or query params
	category := domain.Category(r.PathValue("category"))
	if category == "" {
		category = domain.Category(r.URL.Query().Get("category"))
	}
	if category != "" && !category.Valid() {
		http.Error(w, "unknown category", http.StatusBadRequest)
		return
	}

	items := s.store.LoadNews(ctx)

	generator := feed.NewGenerator(s.config.GetBaseURL())
	rss, err := generator.GenerateRSS(items, category)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
