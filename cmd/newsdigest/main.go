package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/newsdigest/pkg/apikey"
	"github.com/umputun/newsdigest/pkg/config"
	"github.com/umputun/newsdigest/pkg/content"
	"github.com/umputun/newsdigest/pkg/fetcher"
	"github.com/umputun/newsdigest/pkg/scheduler"
	"github.com/umputun/newsdigest/pkg/search"
	"github.com/umputun/newsdigest/pkg/store"
	"github.com/umputun/newsdigest/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Printf("failed to load config %s: %v\n", opts.Config, err)
		os.Exit(1)
	}

	setupLog(opts.Debug, opts.NoColor, cfg.Provider.APIKey)

	log.Printf("[INFO] starting newsdigest version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires all components together and blocks until the context is cancelled
func run(ctx context.Context, cfg *config.Config, debug bool) error {
	dataStore, err := store.New(ctx, store.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
		FetchInterval:   cfg.Fetch.Interval,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer func() {
		if err := dataStore.Close(); err != nil {
			log.Printf("[WARN] failed to close store: %v", err)
		}
	}()

	// credential resolution: config/env first, locally stored key as fallback
	keys := apikey.NewResolver(apikey.Static(cfg.Provider.APIKey), apikey.NewStoreBacked(dataStore))

	searcher := search.NewClient(cfg.GetProviderConfig(), keys)

	params := fetcher.Params{
		Store:               dataStore,
		Searcher:            searcher,
		Keys:                keys,
		SimilarityThreshold: cfg.Fetch.SimilarityThreshold,
		EnrichConcurrency:   cfg.Enrichment.MaxConcurrent,
	}
	if cfg.Enrichment.Enabled {
		params.Enricher = content.NewEnricher(cfg.Enrichment.Timeout, cfg.Enrichment.MinTextLength, cfg.Enrichment.UserAgent)
		log.Printf("[INFO] content enrichment enabled, concurrency %d", cfg.Enrichment.MaxConcurrent)
	}
	fetchService := fetcher.New(params)

	runAt, err := config.ParseDailyRunAt(cfg.Fetch.DailyRunAt)
	if err != nil {
		return fmt.Errorf("invalid daily run time: %w", err)
	}
	sched := scheduler.New(dataStore, fetchService, runAt)
	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	srv := server.New(cfg, dataStore, fetchService, revision, debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	secrets := make([]string, 0, len(secs))
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
