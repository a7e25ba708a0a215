// Package server exposes the digest over a JSON API and RSS, and accepts the
// externally-raised fetch triggers.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/newsdigest/pkg/domain"
	"github.com/umputun/newsdigest/pkg/fetcher"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/fetch_service.go -pkg mocks -skip-ensure -fmt goimports . FetchService

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	store   Store
	fetches FetchService
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Store interface for server operations
type Store interface {
	LoadNews(ctx context.Context) []domain.NewsItem
	SaveNews(ctx context.Context, items []domain.NewsItem) error
	LoadSources(ctx context.Context) ([]domain.NewsSource, error)
	SaveSources(ctx context.Context, sources []domain.NewsSource) error
	SetAPIKey(ctx context.Context, key string) error
}

// FetchService interface for on-demand fetch operations
type FetchService interface {
	FetchNews(ctx context.Context) domain.FetchNewsResult
	CheckAndFetchNews(ctx context.Context) domain.FetchNewsResult
	ClearAndRefreshNews(ctx context.Context) domain.FetchNewsResult
	Run(ctx context.Context) (domain.FetchNewsResult, []fetcher.PairResult)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetBaseURL() string
}

// New initializes a new server instance
func New(cfg ConfigProvider, store Store, fetches FetchService, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		store:   store,
		fetches: fetches,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newsdigest", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// API routes
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /news", s.newsListHandler)
		r.HandleFunc("DELETE /news/{id}", s.newsDeleteHandler)

		r.HandleFunc("GET /sources", s.sourcesListHandler)
		r.HandleFunc("POST /sources", s.sourceCreateHandler)
		r.HandleFunc("PUT /sources/{id}", s.sourceUpdateHandler)
		r.HandleFunc("DELETE /sources/{id}", s.sourceDeleteHandler)

		r.HandleFunc("PUT /settings/apikey", s.apiKeyHandler)

		r.HandleFunc("POST /fetch", s.fetchHandler)
		r.HandleFunc("POST /fetch/force", s.fetchForceHandler)
		r.HandleFunc("POST /refresh", s.refreshHandler)
	})

	// RSS routes
	s.router.HandleFunc("GET /rss", s.rssHandler)
	s.router.HandleFunc("GET /rss/{category}", s.rssHandler)
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
