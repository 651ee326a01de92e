/*
Package crawl implements the two-phase ingestion pipeline: Phase A
discovers Wikipedia film articles per year, Phase B resolves each article to
an OMDb film record and persists it with its related entities.
*/
package crawl

import (
	stdctx "context"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/taibuivan/filmcatalog/internal/catalog"
	"github.com/taibuivan/filmcatalog/internal/platform/ctxutil"
	"github.com/taibuivan/filmcatalog/internal/store"
	"github.com/taibuivan/filmcatalog/internal/wikipedia"
)

// ArticleCrawler populates the articles table for a year range.
type ArticleCrawler struct {
	wiki     *wikipedia.Client
	pool     store.Pool
	repo     catalog.Repository
	maxConns int
}

func NewArticleCrawler(wiki *wikipedia.Client, pool store.Pool, maxConns int) *ArticleCrawler {
	return &ArticleCrawler{wiki: wiki, pool: pool, maxConns: maxConns}
}

// Run iterates [start, stop) in steps of maxConns, fanning one task out per
// year within a step; steps run sequentially to bound peak concurrency. An
// HTTP failure for a year yields zero titles for that year (no partial
// corruption); a database failure aborts the whole run.
func (c *ArticleCrawler) Run(ctx stdctx.Context, start, stop int) error {
	for stepStart := start; stepStart < stop; stepStart += c.maxConns {
		stepEnd := stepStart + c.maxConns
		if stepEnd > stop {
			stepEnd = stop
		}

		if err := c.runStep(ctx, stepStart, stepEnd); err != nil {
			return err
		}
	}
	return nil
}

func (c *ArticleCrawler) runStep(ctx stdctx.Context, from, to int) error {
	sem := semaphore.NewWeighted(int64(c.maxConns))
	group, groupCtx := errgroup.WithContext(ctx)

	yearArticles := make([][]catalog.Article, to-from)

	for year := from; year < to; year++ {
		idx := year - from

		if err := sem.Acquire(groupCtx, 1); err != nil {
			break
		}
		group.Go(func() error {
			defer sem.Release(1)

			titles, err := c.wiki.ListFilmArticlesForYear(groupCtx, year)
			if err != nil {
				ctxutil.GetLogger(groupCtx).Warn("article listing failed, skipping year",
					slog.Int("year", year), slog.Any("error", err))
				return nil
			}

			articles := make([]catalog.Article, len(titles))
			for i, title := range titles {
				articles[i] = catalog.Article{Title: title, Year: year}
			}
			yearArticles[idx] = articles
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	var batch []catalog.Article
	for _, articles := range yearArticles {
		batch = append(batch, articles...)
	}
	if len(batch) == 0 {
		return nil
	}

	conn, release, err := c.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	return c.repo.UpsertArticles(ctx, conn, c.pool.Dialect(), batch)
}
