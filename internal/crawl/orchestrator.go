package crawl

import (
	stdctx "context"
	"log/slog"

	"github.com/taibuivan/filmcatalog/internal/omdb"
	"github.com/taibuivan/filmcatalog/internal/platform/ctxutil"
	"github.com/taibuivan/filmcatalog/internal/store"
	"github.com/taibuivan/filmcatalog/internal/wikipedia"
	"github.com/taibuivan/filmcatalog/pkg/uuid"
)

// Orchestrator runs Phase A to completion over [start, stop), then Phase B
// over the same range.
type Orchestrator struct {
	articles *ArticleCrawler
	films    *FilmCrawler
	logger   *slog.Logger
}

// NewOrchestrator wires the two crawl phases over a shared pool and HTTP
// clients. maxConns is the sole concurrency knob shared by both phases.
func NewOrchestrator(wiki *wikipedia.Client, omdbClient *omdb.Client, pool store.Pool, logger *slog.Logger, maxConns int) *Orchestrator {
	return &Orchestrator{
		articles: NewArticleCrawler(wiki, pool, maxConns),
		films:    NewFilmCrawler(wiki, omdbClient, pool, maxConns),
		logger:   logger,
	}
}

// Run drives Phase A then Phase B over [start, stop). A database failure in
// either phase aborts the run and is returned to the caller; upstream HTTP
// failures never do.
func (o *Orchestrator) Run(ctx stdctx.Context, start, stop int) error {
	runID := uuid.New()
	logger := o.logger.With(slog.String("run_id", runID))
	ctx = ctxutil.WithRunID(ctx, runID)
	ctx = ctxutil.WithLogger(ctx, logger)

	logger.Info("phase_a_starting", slog.Int("start", start), slog.Int("stop", stop))
	if err := o.articles.Run(ctx, start, stop); err != nil {
		return err
	}
	logger.Info("phase_a_complete")

	logger.Info("phase_b_starting", slog.Int("start", start), slog.Int("stop", stop))
	if err := o.films.Run(ctx, start, stop); err != nil {
		return err
	}
	logger.Info("phase_b_complete")

	return nil
}
