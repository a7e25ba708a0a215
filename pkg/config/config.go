package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for RSS links"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newsdigest.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Provider ProviderConfig `yaml:"provider" json:"provider" jsonschema:"description=Search provider configuration"`

	Fetch FetchConfig `yaml:"fetch" json:"fetch" jsonschema:"description=Fetch pipeline configuration"`

	Enrichment EnrichmentConfig `yaml:"enrichment" json:"enrichment" jsonschema:"description=Content enrichment configuration"`
}

// ProviderConfig holds the LLM-backed search provider configuration
type ProviderConfig struct {
	Endpoint          string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://api.perplexity.ai,description=OpenAI-compatible search API endpoint"`
	APIKey            string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model             string        `yaml:"model" json:"model" jsonschema:"default=llama-3.1-sonar-small-128k-online,description=Model name"`
	Temperature       float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.2,description=Temperature for response generation"`
	TopP              float64       `yaml:"top_p" json:"top_p" jsonschema:"default=0.9,description=Nucleus sampling parameter"`
	MaxTokens         int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=1000,description=Maximum tokens in response"`
	Timeout           time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Per-attempt request timeout"`
	MaxRetries        int           `yaml:"max_retries" json:"max_retries" jsonschema:"default=3,minimum=1,description=Attempts per source/category pair"`
	RetryDelay        time.Duration `yaml:"retry_delay" json:"retry_delay" jsonschema:"default=2s,description=Delay between retry attempts"`
	RateLimitCooldown time.Duration `yaml:"rate_limit_cooldown" json:"rate_limit_cooldown" jsonschema:"default=30s,description=Extra cooldown after HTTP 429"`
	RecencyFilter     string        `yaml:"recency_filter" json:"recency_filter" jsonschema:"default=day,description=Provider recency filter (day or week)"`
}

// FetchConfig holds fetch pipeline settings
type FetchConfig struct {
	Interval            time.Duration `yaml:"interval" json:"interval" jsonschema:"default=12h,description=Minimum elapsed time before a gated fetch runs again"`
	DailyRunAt          string        `yaml:"daily_run_at" json:"daily_run_at" jsonschema:"default=06:00,description=Local time of the daily scheduled run (HH:MM)"`
	SimilarityThreshold float64       `yaml:"similarity_threshold" json:"similarity_threshold" jsonschema:"default=0.75,minimum=0,maximum=1,description=Summary similarity above which items are duplicates"`
}

// EnrichmentConfig holds full-text enrichment settings for admitted items
type EnrichmentConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable content enrichment"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Enrichment timeout per article"`
	MaxConcurrent int           `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=5,description=Maximum concurrent enrichments"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=100,description=Minimum text length to consider valid"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=NewsDigest/1.0,description=User agent for HTTP requests"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// setDefaults fills zero values with defaults
func setDefaults(cfg *Config) {
	// server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = "http://localhost:8080"
	}

	// database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:newsdigest.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// provider
	if cfg.Provider.Endpoint == "" {
		cfg.Provider.Endpoint = "https://api.perplexity.ai"
	}
	if cfg.Provider.Model == "" {
		cfg.Provider.Model = "llama-3.1-sonar-small-128k-online"
	}
	if cfg.Provider.Temperature == 0 {
		cfg.Provider.Temperature = 0.2
	}
	if cfg.Provider.TopP == 0 {
		cfg.Provider.TopP = 0.9
	}
	if cfg.Provider.MaxTokens == 0 {
		cfg.Provider.MaxTokens = 1000
	}
	if cfg.Provider.Timeout == 0 {
		cfg.Provider.Timeout = 60 * time.Second
	}
	if cfg.Provider.MaxRetries == 0 {
		cfg.Provider.MaxRetries = 3
	}
	if cfg.Provider.RetryDelay == 0 {
		cfg.Provider.RetryDelay = 2 * time.Second
	}
	if cfg.Provider.RateLimitCooldown == 0 {
		cfg.Provider.RateLimitCooldown = 30 * time.Second
	}
	if cfg.Provider.RecencyFilter == "" {
		cfg.Provider.RecencyFilter = "day"
	}

	// fetch
	if cfg.Fetch.Interval == 0 {
		cfg.Fetch.Interval = 12 * time.Hour
	}
	if cfg.Fetch.DailyRunAt == "" {
		cfg.Fetch.DailyRunAt = "06:00"
	}
	if cfg.Fetch.SimilarityThreshold == 0 {
		cfg.Fetch.SimilarityThreshold = 0.75
	}

	// enrichment
	if cfg.Enrichment.Timeout == 0 {
		cfg.Enrichment.Timeout = 30 * time.Second
	}
	if cfg.Enrichment.MaxConcurrent == 0 {
		cfg.Enrichment.MaxConcurrent = 5
	}
	if cfg.Enrichment.MinTextLength == 0 {
		cfg.Enrichment.MinTextLength = 100
	}
	if cfg.Enrichment.UserAgent == "" {
		cfg.Enrichment.UserAgent = "NewsDigest/1.0"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate provider config
	if cfg.Provider.Endpoint == "" {
		return fmt.Errorf("provider.endpoint is required")
	}
	if cfg.Provider.Model == "" {
		return fmt.Errorf("provider.model is required")
	}
	if cfg.Provider.Temperature < 0 || cfg.Provider.Temperature > 2 {
		return fmt.Errorf("provider.temperature must be between 0 and 2")
	}
	if cfg.Provider.MaxRetries < 1 {
		return fmt.Errorf("provider.max_retries must be at least 1")
	}
	if cfg.Provider.RecencyFilter != "day" && cfg.Provider.RecencyFilter != "week" {
		return fmt.Errorf("provider.recency_filter must be day or week")
	}

	// validate fetch config
	if cfg.Fetch.SimilarityThreshold < 0 || cfg.Fetch.SimilarityThreshold > 1 {
		return fmt.Errorf("fetch.similarity_threshold must be between 0 and 1")
	}
	if _, err := ParseDailyRunAt(cfg.Fetch.DailyRunAt); err != nil {
		return fmt.Errorf("fetch.daily_run_at: %w", err)
	}

	// validate enrichment config
	if cfg.Enrichment.Enabled {
		if cfg.Enrichment.Timeout < time.Second {
			return fmt.Errorf("enrichment timeout must be at least 1 second")
		}
		if cfg.Enrichment.MinTextLength < 0 {
			return fmt.Errorf("enrichment min_text_length must be non-negative")
		}
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// ParseDailyRunAt parses a HH:MM local run time into an offset from midnight
func ParseDailyRunAt(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetBaseURL returns the public base URL used for RSS links
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}

// GetProviderConfig returns search provider configuration
func (c *Config) GetProviderConfig() ProviderConfig {
	return c.Provider
}

// GetFetchConfig returns fetch pipeline configuration
func (c *Config) GetFetchConfig() FetchConfig {
	return c.Fetch
}

// GetEnrichmentConfig returns content enrichment configuration
func (c *Config) GetEnrichmentConfig() EnrichmentConfig {
	return c.Enrichment
}

// GetFullConfig returns the full configuration
func (c *Config) GetFullConfig() *Config {
	return c
}
