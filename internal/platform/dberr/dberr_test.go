package dberr_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/filmcatalog/internal/platform/apperr"
	"github.com/taibuivan/filmcatalog/internal/platform/dberr"
)

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "fetch"))
}

func TestWrap_PgxNoRowsIsNotFound(t *testing.T) {
	err := dberr.Wrap(pgx.ErrNoRows, "fetch_row")
	assert.ErrorIs(t, err, dberr.ErrNotFound)
	assert.True(t, dberr.IsNotFound(err))
	assert.False(t, dberr.IsFatal(err))
}

func TestWrap_SQLNoRowsIsNotFound(t *testing.T) {
	err := dberr.Wrap(sql.ErrNoRows, "fetch_row")
	assert.True(t, dberr.IsNotFound(err))
}

func TestWrap_PostgresUniqueViolationIsConflictNotFatal(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "films_imdb_id_key"}

	err := dberr.Wrap(pgErr, "insert")

	ae := apperr.As(err)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.False(t, dberr.IsFatal(err))
}

func TestWrap_PostgresOtherConstraintIsFatal(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.NotNullViolation}

	err := dberr.Wrap(pgErr, "insert")

	ae := apperr.As(err)
	assert.Equal(t, "INTERNAL_ERROR", ae.Code)
	assert.True(t, dberr.IsFatal(err))
}

func TestWrap_MySQLDuplicateEntryIsConflictNotFatal(t *testing.T) {
	myErr := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'tt0133093' for key 'imdb_id'"}

	err := dberr.Wrap(myErr, "insert")

	ae := apperr.As(err)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.False(t, dberr.IsFatal(err))
}

func TestWrap_MySQLOtherErrorIsFatal(t *testing.T) {
	myErr := &mysql.MySQLError{Number: 1048, Message: "Column cannot be null"}

	err := dberr.Wrap(myErr, "insert")

	assert.True(t, dberr.IsFatal(err))
}

func TestWrap_UnknownErrorIsFatal(t *testing.T) {
	err := dberr.Wrap(errors.New("connection reset by peer"), "execute")
	assert.True(t, dberr.IsFatal(err))
}

func TestIsFatal_NilIsNotFatal(t *testing.T) {
	assert.False(t, dberr.IsFatal(nil))
}
