// Package store persists the news corpus, configured sources and pipeline
// bookkeeping in a local sqlite key-value table. The pipeline always operates
// on full read-modify-write cycles, so values are stored as JSON blobs under
// fixed keys rather than normalized rows.
package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/umputun/newsdigest/pkg/domain"
)

//go:embed schema.sql
var schemaFS embed.FS

// storage keys
const (
	keyNews            = "news"
	keyLastFetch       = "lastFetch"
	keySchedulerActive = "schedulerActive"
	keySources         = "sources"
	keyAPIKey          = "apiKey"
)

// Config represents store configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	FetchInterval   time.Duration // elapsed time after which ShouldFetchNews turns true
}

// Store is the persisted collection of news items and pipeline state
type Store struct {
	db            *sqlx.DB
	fetchInterval time.Duration
	nowFn         func() time.Time
}

// New opens the database, initializes the schema and returns a store
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.DSN == "" {
		cfg.DSN = "file:newsdigest.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.FetchInterval == 0 {
		cfg.FetchInterval = 12 * time.Hour
	}

	db, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// configure connection pool
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	// optimize SQLite settings
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000", // 5 second timeout for locks
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	// initialize schema
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		return nil, fmt.Errorf("execute schema: %w", err)
	}

	return &Store{db: db, fetchInterval: cfg.FetchInterval, nowFn: time.Now}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// SetNowFunc overrides the clock, used by tests
func (s *Store) SetNowFunc(nowFn func() time.Time) {
	s.nowFn = nowFn
}

// LoadNews returns the persisted news list. Missing or corrupted data falls
// back to the built-in seed set, never an error.
func (s *Store) LoadNews(ctx context.Context) []domain.NewsItem {
	value, err := s.getValue(ctx, keyNews)
	if err != nil {
		lgr.Printf("[WARN] failed to load news, using seed data: %v", err)
		return SeedNews()
	}
	if value == "" {
		return SeedNews()
	}

	var items []domain.NewsItem
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		lgr.Printf("[WARN] corrupted news data, using seed data: %v", err)
		return SeedNews()
	}
	return items
}

// SaveNews overwrite-persists the full news list
func (s *Store) SaveNews(ctx context.Context, items []domain.NewsItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal news: %w", err)
	}
	return s.setValue(ctx, keyNews, string(data))
}

// LoadSources returns the configured source list, empty if none saved
func (s *Store) LoadSources(ctx context.Context) ([]domain.NewsSource, error) {
	value, err := s.getValue(ctx, keySources)
	if err != nil {
		return nil, fmt.Errorf("load sources: %w", err)
	}
	if value == "" {
		return []domain.NewsSource{}, nil
	}

	var sources []domain.NewsSource
	if err := json.Unmarshal([]byte(value), &sources); err != nil {
		return nil, fmt.Errorf("unmarshal sources: %w", err)
	}
	return sources, nil
}

// SaveSources overwrite-persists the full source list
func (s *Store) SaveSources(ctx context.Context, sources []domain.NewsSource) error {
	data, err := json.Marshal(sources)
	if err != nil {
		return fmt.Errorf("marshal sources: %w", err)
	}
	return s.setValue(ctx, keySources, string(data))
}

// UpdateLastFetchTime persists the current instant as the last corpus refresh
func (s *Store) UpdateLastFetchTime(ctx context.Context) error {
	return s.setValue(ctx, keyLastFetch, s.nowFn().UTC().Format(time.RFC3339))
}

// LastFetchTime returns the last refresh instant, zero time if never fetched
func (s *Store) LastFetchTime(ctx context.Context) (time.Time, error) {
	value, err := s.getValue(ctx, keyLastFetch)
	if err != nil {
		return time.Time{}, fmt.Errorf("get last fetch time: %w", err)
	}
	if value == "" {
		return time.Time{}, nil
	}

	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse last fetch time: %w", err)
	}
	return ts, nil
}

// ShouldFetchNews reports whether enough time elapsed since the last fetch.
// True with no prior timestamp or when the timestamp can't be read.
func (s *Store) ShouldFetchNews(ctx context.Context) bool {
	last, err := s.LastFetchTime(ctx)
	if err != nil {
		lgr.Printf("[WARN] can't read last fetch time, assuming fetch is due: %v", err)
		return true
	}
	if last.IsZero() {
		return true
	}
	return s.nowFn().Sub(last) > s.fetchInterval
}

// ClearNewsArchive deletes the news list and the last-fetch timestamp
func (s *Store) ClearNewsArchive(ctx context.Context) error {
	if err := s.deleteValue(ctx, keyNews); err != nil {
		return fmt.Errorf("clear news: %w", err)
	}
	if err := s.deleteValue(ctx, keyLastFetch); err != nil {
		return fmt.Errorf("clear last fetch time: %w", err)
	}
	lgr.Printf("[INFO] news archive and last fetch timestamp cleared")
	return nil
}

// EnsureSeedNews seeds the built-in demo set if no news is persisted,
// keeping the UI non-empty on first run
func (s *Store) EnsureSeedNews(ctx context.Context) error {
	value, err := s.getValue(ctx, keyNews)
	if err != nil {
		return fmt.Errorf("check news presence: %w", err)
	}
	if value != "" {
		return nil
	}
	if err := s.SaveNews(ctx, SeedNews()); err != nil {
		return fmt.Errorf("save seed news: %w", err)
	}
	lgr.Printf("[INFO] seed news added to empty store")
	return nil
}

// SchedulerActive reports whether a scheduling chain is already armed
func (s *Store) SchedulerActive(ctx context.Context) (bool, error) {
	value, err := s.getValue(ctx, keySchedulerActive)
	if err != nil {
		return false, fmt.Errorf("get scheduler flag: %w", err)
	}
	return value == "true", nil
}

// SetSchedulerActive persists the scheduler guard flag
func (s *Store) SetSchedulerActive(ctx context.Context, active bool) error {
	return s.setValue(ctx, keySchedulerActive, fmt.Sprintf("%t", active))
}

// APIKey returns the locally persisted search credential, empty if not set
func (s *Store) APIKey(ctx context.Context) (string, error) {
	return s.getValue(ctx, keyAPIKey)
}

// SetAPIKey persists the search credential locally
func (s *Store) SetAPIKey(ctx context.Context, key string) error {
	return s.setValue(ctx, keyAPIKey, key)
}

// getValue retrieves a raw value, empty string if the key is absent
func (s *Store) getValue(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.GetContext(ctx, &value, "SELECT value FROM storage WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

// setValue upserts a raw value, retrying on sqlite lock errors
func (s *Store) setValue(ctx context.Context, key, value string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO storage (key, value, updated_at) VALUES (?, ?, datetime('now'))
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`
		if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
			if isLockError(err) {
				return err // retried by repeater
			}
			return &criticalError{err: fmt.Errorf("set %s: %w", key, err)}
		}
		return nil
	})
}

// deleteValue removes a key, retrying on sqlite lock errors
func (s *Store) deleteValue(ctx context.Context, key string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM storage WHERE key = ?", key); err != nil {
			if isLockError(err) {
				return err // retried by repeater
			}
			return &criticalError{err: fmt.Errorf("delete %s: %w", key, err)}
		}
		return nil
	})
}

// criticalError wraps an error that should not be retried
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}
