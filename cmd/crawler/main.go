/*
Crawler is the entry point for the film catalog crawler.

It discovers Wikipedia film articles year by year, resolves each to an OMDb
record, and persists films and their related entities into a relational
catalog — resumable and idempotent across reruns.

Usage:

	go run cmd/crawler/main.go

It takes no command-line flags. The environment variables are:

	DATABASE_URL              connection URI (scheme selects the dialect, required)
	START_YEAR                first year crawled (default: 1887)
	STOP_YEAR                 year crawled up to, exclusive (default: current year + 1)
	MAX_CONNECTIONS           concurrency/throughput knob (default: 50)
	RETRY_INTERVAL_SECONDS    sleep between HTTP-522 retries (default: 2)
	OMDB_API_KEY              OMDb api key (optional)

Startup Sequence:

 1. Logger: initialize structured JSON logging (slog).
 2. Config: load and validate environment variables.
 3. Storage: acquire the database pool for the configured dialect.
 4. Wiring: construct the HTTP clients and the orchestrator.
 5. Run: drive Phase A then Phase B, honoring SIGINT/SIGTERM cancellation.

No business logic lives here. This file is strictly for orchestration and wiring.
*/
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/filmcatalog/internal/crawl"
	"github.com/taibuivan/filmcatalog/internal/dbtype"
	"github.com/taibuivan/filmcatalog/internal/httpclient"
	"github.com/taibuivan/filmcatalog/internal/omdb"
	"github.com/taibuivan/filmcatalog/internal/platform/config"
	"github.com/taibuivan/filmcatalog/internal/platform/constants"
	"github.com/taibuivan/filmcatalog/internal/store"
	"github.com/taibuivan/filmcatalog/internal/wikipedia"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application_startup_failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	// # 1. Logger
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("crawler_initializing", slog.String("version", constants.AppVersion))

	// # 2. Configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.Int("start_year", cfg.StartYear),
		slog.Int("stop_year", cfg.StopYear),
		slog.Int("max_connections", cfg.MaxConnections),
	)

	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// # 3. Storage
	uri := dbtype.ParseURI(cfg.DatabaseURL)
	pool, err := store.AcquirePool(appCtx, uri, cfg.MaxConnections, constants.DefaultConnectTimeout, log)
	if err != nil {
		return fmt.Errorf("acquire database pool: %w", err)
	}
	defer func() {
		log.Info("closing database pool")
		pool.Close()
	}()

	// # 4. Upstream HTTP Clients
	httpCli := httpclient.New(log, cfg.RetryInterval())
	wikiCli := wikipedia.New(httpCli)
	omdbCli := omdb.New(httpCli, cfg.OmdbAPIKey)

	orchestrator := crawl.NewOrchestrator(wikiCli, omdbCli, pool, log, cfg.MaxConnections)

	// # 5. Lifecycle Handling
	runErr := make(chan error, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		runErr <- orchestrator.Run(appCtx, cfg.StartYear, cfg.StopYear)
	}()

	log.Info("crawler_running", slog.Int("start_year", cfg.StartYear), slog.Int("stop_year", cfg.StopYear))

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
		appCancel()
		select {
		case <-runErr:
		case <-time.After(constants.ShutdownTimeout):
			log.Warn("shutdown_timeout_exceeded, exiting with in-flight work abandoned")
		}
	case err := <-runErr:
		if err != nil {
			return fmt.Errorf("crawl run failed: %w", err)
		}
	}

	log.Info("crawl_complete")
	return nil
}
