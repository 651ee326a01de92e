package crawl

import (
	stdctx "context"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/taibuivan/filmcatalog/internal/catalog"
	"github.com/taibuivan/filmcatalog/internal/omdb"
	"github.com/taibuivan/filmcatalog/internal/platform/constants"
	"github.com/taibuivan/filmcatalog/internal/platform/ctxutil"
	"github.com/taibuivan/filmcatalog/internal/store"
	"github.com/taibuivan/filmcatalog/internal/wikipedia"
)

// FilmCrawler populates films and their related entities for each known
// article.
type FilmCrawler struct {
	wiki     *wikipedia.Client
	omdb     *omdb.Client
	pool     store.Pool
	repo     catalog.Repository
	maxConns int
}

func NewFilmCrawler(wiki *wikipedia.Client, omdbClient *omdb.Client, pool store.Pool, maxConns int) *FilmCrawler {
	return &FilmCrawler{wiki: wiki, omdb: omdbClient, pool: pool, maxConns: maxConns}
}

// resolved is one article's successfully fetched OMDb record, carried
// through the batch pipeline alongside the article it was resolved for.
type resolved struct {
	article catalog.Article
	film    *catalog.Film
	plot    *catalog.Plot
}

// Run walks articles in [start, stop) page by page, splitting each page
// into batches of ceil(page size / maxConns) articles (at least 1), and
// persisting each batch under one acquired connection.
func (c *FilmCrawler) Run(ctx stdctx.Context, start, stop int) error {
	conn, release, err := c.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	total, err := c.repo.CountArticlesInRange(ctx, conn, c.pool.Dialect(), start, stop)
	release()
	if err != nil {
		return err
	}

	step := constants.ArticlePageSize
	batchSize := int(math.Ceil(float64(step) / float64(c.maxConns)))
	if batchSize < 1 {
		batchSize = 1
	}

	for offset := 0; offset < total; offset += step {
		pageConn, pageRelease, err := c.pool.Acquire(ctx)
		if err != nil {
			return err
		}
		page, err := c.repo.FetchArticlesPage(ctx, pageConn, c.pool.Dialect(), start, stop, step, offset)
		pageRelease()
		if err != nil {
			return err
		}

		for batchStart := 0; batchStart < len(page); batchStart += batchSize {
			batchEnd := batchStart + batchSize
			if batchEnd > len(page) {
				batchEnd = len(page)
			}

			if err := c.processBatch(ctx, page[batchStart:batchEnd]); err != nil {
				return err
			}
		}
	}

	return nil
}

// processBatch resolves every article in the batch concurrently, then
// persists the results under one connection in the dependency order plot,
// film, related entities, join rows.
func (c *FilmCrawler) processBatch(ctx stdctx.Context, articles []catalog.Article) error {
	sem := semaphore.NewWeighted(int64(c.maxConns))
	group, groupCtx := errgroup.WithContext(ctx)

	results := make([]*resolved, len(articles))

	for i, article := range articles {
		if err := sem.Acquire(groupCtx, 1); err != nil {
			break
		}
		group.Go(func() error {
			defer sem.Release(1)

			r, err := c.resolveArticle(groupCtx, article)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	var batch []*resolved
	for _, r := range results {
		if r != nil {
			batch = append(batch, r)
		}
	}
	if len(batch) == 0 {
		return nil
	}

	conn, release, err := c.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	return c.persist(ctx, conn, batch)
}

// resolveArticle resolves one article's IMDb id, fetches its OMDb record
// and Wikipedia plot section, and deserializes the result. A missing IMDb
// id or permanent upstream failure yields (nil, nil) — dropped, not fatal.
func (c *FilmCrawler) resolveArticle(ctx stdctx.Context, article catalog.Article) (*resolved, error) {
	log := ctxutil.GetLogger(ctx)

	imdbID, err := c.wiki.ResolveImdbID(ctx, article.Title)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		log.Warn("imdb id resolution failed, skipping article",
			slog.String("title", article.Title), slog.Any("error", err))
		return nil, nil
	}
	if imdbID == nil {
		log.Warn("no imdb id resolved, skipping article", slog.String("title", article.Title))
		return nil, nil
	}

	raw, err := c.omdb.FetchFilm(ctx, *imdbID, article.Year)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		log.Warn("omdb fetch failed, skipping article",
			slog.String("title", article.Title), slog.Any("error", err))
		return nil, nil
	}
	if raw == nil {
		log.Warn("no omdb record found, skipping article", slog.String("title", article.Title))
		return nil, nil
	}

	film, plot, err := omdb.Deserialize(raw, article.ID)
	if err != nil {
		log.Warn("omdb record malformed, skipping article",
			slog.String("title", article.Title), slog.Any("error", err))
		return nil, nil
	}

	if wikitext, err := c.wiki.FetchPlotText(ctx, article.Title); err == nil && wikitext != "" {
		plot.WikipediaContent = &wikitext
	}

	return &resolved{article: article, film: film, plot: plot}, nil
}

// persist writes the batch in strict dependency order: plots, then films,
// then related entities, then join rows, so every foreign key it assigns
// already exists.
func (c *FilmCrawler) persist(ctx stdctx.Context, conn store.Conn, batch []*resolved) error {
	d := c.pool.Dialect()

	plots := make([]catalog.Plot, len(batch))
	for i, r := range batch {
		plots[i] = *r.plot
	}
	plotIDs, err := c.repo.UpsertPlotsReturningIDs(ctx, conn, d, plots)
	if err != nil {
		return err
	}
	for i, r := range batch {
		id := plotIDs[i]
		r.film.PlotID = &id
	}

	films := make([]catalog.Film, len(batch))
	for i, r := range batch {
		films[i] = *r.film
	}
	filmIDs, err := c.repo.UpsertFilmsReturningIDs(ctx, conn, d, films)
	if err != nil {
		return err
	}

	for i, r := range batch {
		filmID := filmIDs[i]

		genreIDs, err := c.repo.UpsertGenresReturningIDs(ctx, conn, d, r.film.Related.Genres)
		if err != nil {
			return err
		}
		if err := c.repo.InsertFilmsGenres(ctx, conn, d, filmID, genreIDs); err != nil {
			return err
		}

		directorIDs, err := c.repo.UpsertDirectorsReturningIDs(ctx, conn, d, r.film.Related.Directors)
		if err != nil {
			return err
		}
		if err := c.repo.InsertFilmsDirectors(ctx, conn, d, filmID, directorIDs); err != nil {
			return err
		}

		writerIDs, err := c.repo.UpsertWritersReturningIDs(ctx, conn, d, r.film.Related.Writers)
		if err != nil {
			return err
		}
		if err := c.repo.InsertFilmsWriters(ctx, conn, d, filmID, writerIDs); err != nil {
			return err
		}

		actorIDs, err := c.repo.UpsertActorsReturningIDs(ctx, conn, d, r.film.Related.Actors)
		if err != nil {
			return err
		}
		if err := c.repo.InsertFilmsActors(ctx, conn, d, filmID, actorIDs); err != nil {
			return err
		}
	}

	return nil
}
