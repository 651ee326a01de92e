package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/filmcatalog/internal/catalog"
	"github.com/taibuivan/filmcatalog/internal/dbtype"
	"github.com/taibuivan/filmcatalog/internal/dialect"
	"github.com/taibuivan/filmcatalog/internal/store"
)

// fakeConn is a minimal, scriptable [store.Conn] standing in for a real
// Postgres/MySQL connection: it records every statement it is asked to run
// and plays back pre-seeded rows, so the repository's query construction and
// id-propagation can be asserted against without a live database.
type fakeConn struct {
	execQueries []string
	execArgs    [][]any

	queryRecords []dbtype.Record
	rowValues    []any
}

func (c *fakeConn) Exec(_ context.Context, query string, args ...any) (store.Result, error) {
	c.execQueries = append(c.execQueries, query)
	c.execArgs = append(c.execArgs, args)
	return fakeResult{}, nil
}

func (c *fakeConn) Query(_ context.Context, query string, args ...any) (store.Rows, error) {
	c.execQueries = append(c.execQueries, query)
	c.execArgs = append(c.execArgs, args)
	return &fakeRows{records: c.queryRecords}, nil
}

func (c *fakeConn) QueryRow(_ context.Context, query string, args ...any) store.Row {
	c.execQueries = append(c.execQueries, query)
	c.execArgs = append(c.execArgs, args)
	return fakeRow{values: c.rowValues}
}

type fakeResult struct{}

func (fakeResult) RowsAffected() int64 { return 1 }

type fakeRows struct {
	records []dbtype.Record
	idx     int
}

func (r *fakeRows) Next() bool { r.idx++; return r.idx <= len(r.records) }
func (r *fakeRows) Err() error { return nil }
func (r *fakeRows) Close()     {}
func (r *fakeRows) Scan(dest ...any) error {
	rec := r.records[r.idx-1]
	for i, d := range dest {
		assignScanTarget(d, rec[i])
	}
	return nil
}

type fakeRow struct{ values []any }

func (r fakeRow) Scan(dest ...any) error {
	for i, d := range dest {
		assignScanTarget(d, r.values[i])
	}
	return nil
}

func assignScanTarget(dest, value any) {
	switch p := dest.(type) {
	case *any:
		*p = value
	case *int:
		*p, _ = value.(int)
	case *int64:
		switch v := value.(type) {
		case int64:
			*p = v
		case int:
			*p = int64(v)
		}
	case *string:
		*p, _ = value.(string)
	}
}

func TestUpsertArticles_PostgresMergeQuery(t *testing.T) {
	conn := &fakeConn{}
	repo := catalog.Repository{}

	err := repo.UpsertArticles(context.Background(), conn, dialect.Postgres{}, []catalog.Article{
		{Title: "The Matrix", Year: 1999},
		{Title: "Citizen Kane", Year: 1941},
	})
	require.NoError(t, err)

	require.Len(t, conn.execQueries, 1)
	assert.Contains(t, conn.execQueries[0], "ON CONFLICT (title, year) DO UPDATE")
	assert.Equal(t, []any{"The Matrix", 1999, "Citizen Kane", 1941}, conn.execArgs[0])
}

func TestUpsertArticles_Empty(t *testing.T) {
	conn := &fakeConn{}
	repo := catalog.Repository{}

	err := repo.UpsertArticles(context.Background(), conn, dialect.Postgres{}, nil)
	require.NoError(t, err)
	assert.Empty(t, conn.execQueries)
}

func TestCountArticlesInRange_BindsBetweenBounds(t *testing.T) {
	conn := &fakeConn{rowValues: []any{42}}
	repo := catalog.Repository{}

	count, err := repo.CountArticlesInRange(context.Background(), conn, dialect.Postgres{}, 1990, 2000)
	require.NoError(t, err)
	assert.Equal(t, 42, count)
	assert.Equal(t, []any{1990, 1999}, conn.execArgs[0])
}

func TestFetchArticlesPage_OrdersByYearAscending(t *testing.T) {
	conn := &fakeConn{queryRecords: []dbtype.Record{
		{1, "The Matrix", 1999},
		{2, "Citizen Kane", 1941},
	}}
	repo := catalog.Repository{}

	articles, err := repo.FetchArticlesPage(context.Background(), conn, dialect.Postgres{}, 1887, 2026, 100, 0)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, catalog.Article{ID: 1, Title: "The Matrix", Year: 1999}, articles[0])
	assert.Contains(t, conn.execQueries[0], "ORDER BY year ASC")
}

func TestUpsertFilmsReturningIDs_PropagatesIDsInOrder(t *testing.T) {
	conn := &fakeConn{queryRecords: []dbtype.Record{{int64(10)}, {int64(11)}}}
	repo := catalog.Repository{}

	films := []catalog.Film{
		{Type: catalog.FilmTypeMovie, Title: "The Matrix", ImdbID: 133093, ArticleID: 1},
		{Type: catalog.FilmTypeMovie, Title: "Citizen Kane", ImdbID: 33467, ArticleID: 2},
	}

	ids, err := repo.UpsertFilmsReturningIDs(context.Background(), conn, dialect.Postgres{}, films)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11}, ids)
	assert.Contains(t, conn.execQueries[0], "ON CONFLICT (imdb_id) DO UPDATE")
	assert.Contains(t, conn.execQueries[0], "RETURNING id")
}

func TestUpsertGenresReturningIDs_Empty(t *testing.T) {
	conn := &fakeConn{}
	repo := catalog.Repository{}

	ids, err := repo.UpsertGenresReturningIDs(context.Background(), conn, dialect.Postgres{}, nil)
	require.NoError(t, err)
	assert.Nil(t, ids)
	assert.Empty(t, conn.execQueries)
}

func TestInsertFilmsGenres_ZipsFilmIDWithEachRelatedID(t *testing.T) {
	conn := &fakeConn{}
	repo := catalog.Repository{}

	err := repo.InsertFilmsGenres(context.Background(), conn, dialect.Postgres{}, 7, []int{3, 4})
	require.NoError(t, err)

	require.Len(t, conn.execArgs, 1)
	assert.Equal(t, []any{7, 3, 7, 4}, conn.execArgs[0])
	assert.Contains(t, conn.execQueries[0], "ON CONFLICT (film_id, genre_id) DO NOTHING")
}

func TestInsertFilmsGenres_Empty(t *testing.T) {
	conn := &fakeConn{}
	repo := catalog.Repository{}

	err := repo.InsertFilmsGenres(context.Background(), conn, dialect.Postgres{}, 7, nil)
	require.NoError(t, err)
	assert.Empty(t, conn.execQueries)
}
