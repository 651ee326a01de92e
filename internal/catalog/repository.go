package catalog

import (
	stdctx "context"

	"github.com/taibuivan/filmcatalog/internal/dbtype"
	"github.com/taibuivan/filmcatalog/internal/dialect"
	"github.com/taibuivan/filmcatalog/internal/store"
	"github.com/taibuivan/filmcatalog/internal/store/schema"
	"github.com/taibuivan/filmcatalog/pkg/slice"
)

// Repository is the catalog domain's view of [internal/store]: every method
// takes the connection a caller already holds — a batch acquires exactly
// one connection for the duration of all its writes — and the dialect that
// connection's pool selected.
type Repository struct{}

// UpsertArticles persists Phase A's discovered titles, merging on
// (title, year).
func (Repository) UpsertArticles(ctx stdctx.Context, conn store.Conn, d dialect.Dialect, articles []Article) error {
	if len(articles) == 0 {
		return nil
	}
	columns := []string{schema.Articles.Title, schema.Articles.Year}
	records := make([]dbtype.Record, len(articles))
	for i, a := range articles {
		records[i] = dbtype.Record{a.Title, a.Year}
	}
	return store.Insert(ctx, conn, d, schema.Articles.Table, columns, schema.Articles.UniqueColumns(), records, true)
}

// CountArticlesInRange is the Phase B outer loop's COUNT over
// articles.year BETWEEN [start, stop).
func (Repository) CountArticlesInRange(ctx stdctx.Context, conn store.Conn, d dialect.Dialect, start, stop int) (int, error) {
	filters := []dbtype.Filter{dbtype.Between(schema.Articles.Year, start, stop-1)}
	return store.FetchRecordsCount(ctx, conn, d, schema.Articles.Table, filters)
}

// FetchArticlesPage returns a page of articles in [start, stop), ordered
// ascending by year, for the Phase B middle loop.
func (Repository) FetchArticlesPage(ctx stdctx.Context, conn store.Conn, d dialect.Dialect, start, stop, limit, offset int) ([]Article, error) {
	columns := []string{schema.Articles.ID, schema.Articles.Title, schema.Articles.Year}
	filters := []dbtype.Filter{dbtype.Between(schema.Articles.Year, start, stop-1)}
	orderings := []dbtype.Ordering{{Column: schema.Articles.Year, Direction: dbtype.Asc}}

	records, err := store.Fetch(ctx, conn, d, schema.Articles.Table, columns, filters, orderings, &limit, &offset)
	if err != nil {
		return nil, err
	}

	articles := make([]Article, len(records))
	for i, rec := range records {
		articles[i] = Article{ID: toInt(rec[0]), Title: toString(rec[1]), Year: toInt(rec[2])}
	}
	return articles, nil
}

// UpsertPlotsReturningIDs persists one plot row per film record, with no
// conflict key: Phase B always creates a fresh plot.
func (Repository) UpsertPlotsReturningIDs(ctx stdctx.Context, conn store.Conn, d dialect.Dialect, plots []Plot) ([]int, error) {
	if len(plots) == 0 {
		return nil, nil
	}
	columns := []string{schema.Plots.ImdbContent, schema.Plots.WikipediaContent}
	records := make([]dbtype.Record, len(plots))
	for i, p := range plots {
		records[i] = dbtype.Record{fromStringP(p.ImdbContent), fromStringP(p.WikipediaContent)}
	}

	out, err := store.InsertReturning(ctx, conn, d, schema.Plots.Table, columns, nil, records, []string{schema.Plots.ID})
	if err != nil {
		return nil, err
	}
	return recordIDs(out), nil
}

// UpsertFilmsReturningIDs upserts films keyed on imdb_id — resolving the
// same IMDb id twice updates the existing row — and returns their ids in
// input order.
func (Repository) UpsertFilmsReturningIDs(ctx stdctx.Context, conn store.Conn, d dialect.Dialect, films []Film) ([]int, error) {
	if len(films) == 0 {
		return nil, nil
	}
	columns := schema.Films.Columns()[1:] // every column except the surrogate id
	records := make([]dbtype.Record, len(films))
	for i, f := range films {
		records[i] = dbtype.Record{
			string(f.Type), f.Title, fromStringP(f.Countries), fromStringP(f.Languages),
			fromIntP(f.Duration), fromStringP(f.ReleaseDate), fromStringP(f.ContentRating),
			f.ImdbID, fromFloatP(f.ImdbRating), fromStringP(f.PosterURL), fromIntP(f.PlotID), f.ArticleID,
		}
	}

	out, err := store.InsertReturning(ctx, conn, d, schema.Films.Table, columns, schema.Films.UniqueColumns(), records, []string{schema.Films.ID})
	if err != nil {
		return nil, err
	}
	return recordIDs(out), nil
}

// UpsertGenresReturningIDs, UpsertDirectorsReturningIDs,
// UpsertWritersReturningIDs and UpsertActorsReturningIDs upsert related
// entities keyed on name uniqueness, returning ids in input order so they
// zip back against the name slice they were built from.
func (Repository) UpsertGenresReturningIDs(ctx stdctx.Context, conn store.Conn, d dialect.Dialect, names []string) ([]int, error) {
	return upsertNamedReturningIDs(ctx, conn, d, schema.Genres.Table, schema.Genres.Name, schema.Genres.ID, schema.Genres.UniqueColumns(), names)
}

func (Repository) UpsertDirectorsReturningIDs(ctx stdctx.Context, conn store.Conn, d dialect.Dialect, names []string) ([]int, error) {
	return upsertNamedReturningIDs(ctx, conn, d, schema.Directors.Table, schema.Directors.Name, schema.Directors.ID, schema.Directors.UniqueColumns(), names)
}

func (Repository) UpsertWritersReturningIDs(ctx stdctx.Context, conn store.Conn, d dialect.Dialect, names []string) ([]int, error) {
	return upsertNamedReturningIDs(ctx, conn, d, schema.Writers.Table, schema.Writers.Name, schema.Writers.ID, schema.Writers.UniqueColumns(), names)
}

func (Repository) UpsertActorsReturningIDs(ctx stdctx.Context, conn store.Conn, d dialect.Dialect, names []string) ([]int, error) {
	return upsertNamedReturningIDs(ctx, conn, d, schema.Actors.Table, schema.Actors.Name, schema.Actors.ID, schema.Actors.UniqueColumns(), names)
}

func upsertNamedReturningIDs(ctx stdctx.Context, conn store.Conn, d dialect.Dialect, table, nameCol, idCol string, unique, names []string) ([]int, error) {
	if len(names) == 0 {
		return nil, nil
	}
	records := make([]dbtype.Record, len(names))
	for i, n := range names {
		records[i] = dbtype.Record{n}
	}

	out, err := store.InsertReturning(ctx, conn, d, table, []string{nameCol}, unique, records, []string{idCol})
	if err != nil {
		return nil, err
	}
	return recordIDs(out), nil
}

// InsertFilmsGenres, InsertFilmsDirectors, InsertFilmsWriters and
// InsertFilmsActors insert join-table rows by zipping a film id with a
// related-id list. Inserts do not merge: a pair already present under the
// (film_id, related_id) key is skipped (ON CONFLICT DO NOTHING on Postgres,
// INSERT IGNORE on MySQL), which keeps reruns idempotent.
func (Repository) InsertFilmsGenres(ctx stdctx.Context, conn store.Conn, d dialect.Dialect, filmID int, genreIDs []int) error {
	return insertJoinPairs(ctx, conn, d, schema.FilmsGenres.Table, schema.FilmsGenres.FilmID, schema.FilmsGenres.RelatedID, filmID, genreIDs)
}

func (Repository) InsertFilmsDirectors(ctx stdctx.Context, conn store.Conn, d dialect.Dialect, filmID int, directorIDs []int) error {
	return insertJoinPairs(ctx, conn, d, schema.FilmsDirectors.Table, schema.FilmsDirectors.FilmID, schema.FilmsDirectors.RelatedID, filmID, directorIDs)
}

func (Repository) InsertFilmsWriters(ctx stdctx.Context, conn store.Conn, d dialect.Dialect, filmID int, writerIDs []int) error {
	return insertJoinPairs(ctx, conn, d, schema.FilmsWriters.Table, schema.FilmsWriters.FilmID, schema.FilmsWriters.RelatedID, filmID, writerIDs)
}

func (Repository) InsertFilmsActors(ctx stdctx.Context, conn store.Conn, d dialect.Dialect, filmID int, actorIDs []int) error {
	return insertJoinPairs(ctx, conn, d, schema.FilmsActors.Table, schema.FilmsActors.FilmID, schema.FilmsActors.RelatedID, filmID, actorIDs)
}

func insertJoinPairs(ctx stdctx.Context, conn store.Conn, d dialect.Dialect, table, filmCol, relatedCol string, filmID int, relatedIDs []int) error {
	if len(relatedIDs) == 0 {
		return nil
	}
	records := slice.Map(relatedIDs, func(id int) dbtype.Record { return dbtype.Record{filmID, id} })
	return store.Insert(ctx, conn, d, table, []string{filmCol, relatedCol}, []string{filmCol, relatedCol}, records, false)
}

func recordIDs(records []dbtype.Record) []int {
	return slice.Map(records, func(rec dbtype.Record) int { return toInt(rec[0]) })
}
