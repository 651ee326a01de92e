package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/filmcatalog/internal/dialect"
)

func TestPostgres_BuildSelect(t *testing.T) {
	limit, offset := 10, 20
	query, n := dialect.Postgres{}.BuildSelect(dialect.SelectSpec{
		Table:   "films",
		Columns: []string{"id", "title"},
		Filters: []dialect.Filter{
			{Column: "imdb_id", Op: dialect.OpEQ, Values: 1},
			{Column: "year", Op: dialect.OpBetween, Values: 2},
		},
		Orderings: []dialect.Ordering{{Column: "year", Direction: dialect.Asc}},
		Limit:     &limit,
		Offset:    &offset,
	})

	assert.Equal(t,
		"SELECT id, title FROM films WHERE imdb_id = $1 AND year BETWEEN $2 AND $3 ORDER BY year ASC LIMIT $4 OFFSET $5",
		query)
	assert.Equal(t, 5, n)
}

func TestPostgres_BuildSelect_BareOffsetNoLimit(t *testing.T) {
	offset := 5
	query, n := dialect.Postgres{}.BuildSelect(dialect.SelectSpec{
		Table:   "articles",
		Columns: []string{"id"},
		Offset:  &offset,
	})

	assert.Equal(t, "SELECT id FROM articles OFFSET $1", query)
	assert.Equal(t, 1, n)
}

func TestPostgres_BuildInsert_MergeCompositeKeyAllColumnsUnique(t *testing.T) {
	query, n := dialect.Postgres{}.BuildInsert(dialect.InsertSpec{
		Table:         "articles",
		Columns:       []string{"title", "year"},
		UniqueColumns: []string{"title", "year"},
		Merge:         true,
		RowCount:      2,
	})

	assert.Equal(t,
		"INSERT INTO articles (title, year) VALUES ($1, $2), ($3, $4) ON CONFLICT (title, year) DO UPDATE SET title = EXCLUDED.title, year = EXCLUDED.year",
		query)
	assert.Equal(t, 4, n)
}

func TestPostgres_BuildInsert_MergeAllColumnsUnique(t *testing.T) {
	// Reference tables (genres/directors/writers/actors) are unique on the
	// only non-id column they have, so the SET clause must self-assign it
	// rather than render an empty UPDATE SET.
	query, _ := dialect.Postgres{}.BuildInsert(dialect.InsertSpec{
		Table:         "genres",
		Columns:       []string{"name"},
		UniqueColumns: []string{"name"},
		Merge:         true,
		RowCount:      1,
		ReturningCols: []string{"id"},
	})

	assert.Contains(t, query, "ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name")
	assert.Contains(t, query, "RETURNING id")
}

func TestPostgres_BuildInsert_NoMerge(t *testing.T) {
	query, _ := dialect.Postgres{}.BuildInsert(dialect.InsertSpec{
		Table:         "films_genres",
		Columns:       []string{"film_id", "genre_id"},
		UniqueColumns: []string{"film_id", "genre_id"},
		Merge:         false,
		RowCount:      1,
	})

	assert.Contains(t, query, "ON CONFLICT (film_id, genre_id) DO NOTHING")
}

func TestPostgres_BuildDelete(t *testing.T) {
	query, n := dialect.Postgres{}.BuildDelete(dialect.DeleteSpec{
		Table:   "films",
		Filters: []dialect.Filter{{Column: "id", Op: dialect.OpEQ, Values: 1}},
	})

	assert.Equal(t, "DELETE FROM films WHERE id = $1", query)
	assert.Equal(t, 1, n)
}

func TestPostgres_BuildGroupWise(t *testing.T) {
	query, n := dialect.Postgres{}.BuildGroupWise(dialect.GroupWiseSpec{
		Table:        "films",
		Columns:      []string{"id", "article_id", "imdb_rating"},
		MaximizedCol: "imdb_rating",
		Groupings:    []string{"article_id"},
		IsMaximum:    true,
	})

	assert.Equal(t,
		"SELECT id, article_id, imdb_rating FROM (SELECT DISTINCT ON (article_id) id, article_id, imdb_rating FROM films ORDER BY article_id ASC, imdb_rating DESC) gw",
		query)
	assert.Equal(t, 0, n)
}
