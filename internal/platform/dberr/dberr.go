// Package dberr classifies low-level database driver errors into the
// crawler's error taxonomy: not-found, unique-violation (absorbed
// by merge semantics; [IsFatal] reports it as non-fatal), and everything
// else, which [IsFatal] reports as fatal.
package dberr

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/filmcatalog/internal/platform/apperr"
)

// ErrNotFound is returned when a queried row doesn't exist.
var ErrNotFound = apperr.NotFound("row")

// mysqlDupEntry is ER_DUP_ENTRY, MySQL's unique-constraint violation number.
const mysqlDupEntry = 1062

// Wrap inspects a database error and classifies it into the crawler's
// taxonomy. Unique violations are not expected to reach here in normal
// operation (every insert uses ON CONFLICT / ON DUPLICATE KEY merge); when
// one does, it is reported as [apperr.Conflict] rather than
// [apperr.Internal], so [IsFatal] reports it as non-fatal. The crawl
// pipeline does not call IsFatal: it returns every wrapped error, Conflict
// included, and the orchestrator aborts the run on it.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgerrcode.UniqueViolation {
			return apperr.Conflict(action + ": unique violation on " + pgErr.ConstraintName)
		}
		return apperr.Internal(err)
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		if myErr.Number == mysqlDupEntry {
			return apperr.Conflict(action + ": duplicate entry")
		}
		return apperr.Internal(err)
	}

	return apperr.Internal(err)
}

// IsNotFound reports whether err represents a missing row.
func IsNotFound(err error) bool {
	ae := apperr.As(err)
	return ae != nil && ae.Code == "NOT_FOUND"
}

// IsFatal reports whether err must abort the current batch: any database
// failure other than not-found and merge-absorbed unique conflicts.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	ae := apperr.As(err)
	return ae == nil || ae.Code == "INTERNAL_ERROR"
}
