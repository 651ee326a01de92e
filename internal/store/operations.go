package store

import (
	stdctx "context"
	"fmt"

	"github.com/taibuivan/filmcatalog/internal/dbtype"
	"github.com/taibuivan/filmcatalog/internal/dialect"
	"github.com/taibuivan/filmcatalog/internal/platform/dberr"
)

// Execute runs a single statement with no rows returned.
func Execute(ctx stdctx.Context, conn Conn, query string, args ...any) error {
	_, err := conn.Exec(ctx, query, args...)
	return dberr.Wrap(err, "execute")
}

// ExecuteMany runs the same statement once per argument set, returning the
// row from the final execution when resultCols
// is non-empty and the dialect supports RETURNING, otherwise nothing. It is
// kept distinct from Insert because it makes no assumption that every
// execution shares one VALUES list the way a batched upsert does.
func ExecuteMany(ctx stdctx.Context, conn Conn, d dialect.Dialect, query string, argSets [][]any, resultCols []string) (dbtype.Record, error) {
	var last dbtype.Record

	for i, args := range argSets {
		if len(resultCols) > 0 && d.SupportsReturning() {
			rec := make(dbtype.Record, len(resultCols))
			dest := make([]any, len(rec))
			for j := range rec {
				dest[j] = &rec[j]
			}
			if err := conn.QueryRow(ctx, query, args...).Scan(dest...); err != nil {
				return nil, dberr.Wrap(err, "execute_many")
			}
			if i == len(argSets)-1 {
				last = rec
			}
			continue
		}
		if _, err := conn.Exec(ctx, query, args...); err != nil {
			return nil, dberr.Wrap(err, "execute_many")
		}
	}

	return last, nil
}

// Fetch returns rows shaped by columns order: the caller
// passes the column list it wants back, in order, and both dialects' driver
// rows are scanned into that same order so the result is dialect-agnostic.
func Fetch(ctx stdctx.Context, conn Conn, d dialect.Dialect, table string, columns []string, filters []dbtype.Filter, orderings []dbtype.Ordering, limit, offset *int) ([]dbtype.Record, error) {
	rendered, args := splitFilters(filters)
	query, _ := d.BuildSelect(dialect.SelectSpec{
		Table:     table,
		Columns:   columns,
		Filters:   rendered,
		Orderings: renderOrderings(orderings),
		Limit:     limit,
		Offset:    offset,
	})
	args = appendLimitOffsetArgs(args, limit, offset)

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "fetch")
	}
	defer rows.Close()

	var records []dbtype.Record
	for rows.Next() {
		rec := make(dbtype.Record, len(columns))
		dest := make([]any, len(rec))
		for i := range rec {
			dest[i] = &rec[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, dberr.Wrap(err, "fetch_scan")
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "fetch_rows")
	}

	return records, nil
}

// FetchRow returns a single row, or [dberr.ErrNotFound] if none matched.
func FetchRow(ctx stdctx.Context, conn Conn, d dialect.Dialect, table string, columns []string, filters []dbtype.Filter) (dbtype.Record, error) {
	one := 1
	rendered, args := splitFilters(filters)
	query, _ := d.BuildSelect(dialect.SelectSpec{Table: table, Columns: columns, Filters: rendered, Limit: &one})
	args = appendLimitOffsetArgs(args, &one, nil)

	rec := make(dbtype.Record, len(columns))
	dest := make([]any, len(rec))
	for i := range rec {
		dest[i] = &rec[i]
	}
	if err := conn.QueryRow(ctx, query, args...).Scan(dest...); err != nil {
		return nil, dberr.Wrap(err, "fetch_row")
	}
	return rec, nil
}

// FetchRecordsCount issues SELECT COUNT(*) with the same filter vocabulary
// as Fetch.
func FetchRecordsCount(ctx stdctx.Context, conn Conn, d dialect.Dialect, table string, filters []dbtype.Filter) (int, error) {
	rendered, args := splitFilters(filters)
	query, _ := d.BuildSelect(dialect.SelectSpec{Table: table, Columns: []string{"COUNT(*)"}, Filters: rendered})

	var count int
	if err := conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "fetch_records_count")
	}
	return count, nil
}

// FetchMaxColumnValue issues SELECT MAX(col) with the same filter vocabulary
// as Fetch.
func FetchMaxColumnValue(ctx stdctx.Context, conn Conn, d dialect.Dialect, table, column string, filters []dbtype.Filter) (any, error) {
	rendered, args := splitFilters(filters)
	query, _ := d.BuildSelect(dialect.SelectSpec{Table: table, Columns: []string{"MAX(" + column + ")"}, Filters: rendered})

	var value any
	if err := conn.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		return nil, dberr.Wrap(err, "fetch_max_column_value")
	}
	return value, nil
}

// Delete removes rows matching filters.
func Delete(ctx stdctx.Context, conn Conn, d dialect.Dialect, table string, filters []dbtype.Filter) error {
	rendered, args := splitFilters(filters)
	query, _ := d.BuildDelete(dialect.DeleteSpec{Table: table, Filters: rendered})
	_, err := conn.Exec(ctx, query, args...)
	return dberr.Wrap(err, "delete")
}

// Insert builds an insert query and submits all records in one statement.
// unique is the conflict key the dialect upserts on; merge selects
// DO UPDATE/ON DUPLICATE KEY UPDATE (true) or DO NOTHING/INSERT IGNORE
// (false).
func Insert(ctx stdctx.Context, conn Conn, d dialect.Dialect, table string, columns, unique []string, records []dbtype.Record, merge bool) error {
	if len(records) == 0 {
		return nil
	}

	args := make([]any, 0, len(records)*len(columns))
	for _, rec := range records {
		args = append(args, []any(rec)...)
	}

	query, _ := d.BuildInsert(dialect.InsertSpec{
		Table:         table,
		Columns:       columns,
		UniqueColumns: unique,
		Merge:         merge,
		RowCount:      len(records),
	})

	_, err := conn.Exec(ctx, query, args...)
	return dberr.Wrap(err, "insert")
}

// InsertReturning inserts records and returns one row per input record
// holding returningCols, in input order — used to propagate newly created
// ids without a second round trip on PostgreSQL.
//
// PostgreSQL supports a single multi-row INSERT ... RETURNING that preserves
// input order in one round trip. MySQL has no RETURNING at all, so the cost
// is one round trip per record: an upsert followed by a
// LAST_INSERT_ID()-based id recovery.
func InsertReturning(ctx stdctx.Context, conn Conn, d dialect.Dialect, table string, columns, unique []string, records []dbtype.Record, returningCols []string) ([]dbtype.Record, error) {
	if len(records) == 0 {
		return nil, nil
	}

	if d.SupportsReturning() {
		return insertReturningBatch(ctx, conn, d, table, columns, unique, records, returningCols)
	}
	return insertReturningOneAtATime(ctx, conn, table, columns, unique, records, returningCols)
}

func insertReturningBatch(ctx stdctx.Context, conn Conn, d dialect.Dialect, table string, columns, unique []string, records []dbtype.Record, returningCols []string) ([]dbtype.Record, error) {
	args := make([]any, 0, len(records)*len(columns))
	for _, rec := range records {
		args = append(args, []any(rec)...)
	}

	query, _ := d.BuildInsert(dialect.InsertSpec{
		Table:         table,
		Columns:       columns,
		UniqueColumns: unique,
		Merge:         true,
		RowCount:      len(records),
		ReturningCols: returningCols,
	})

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "insert_returning")
	}
	defer rows.Close()

	out := make([]dbtype.Record, 0, len(records))
	for rows.Next() {
		rec := make(dbtype.Record, len(returningCols))
		dest := make([]any, len(rec))
		for i := range rec {
			dest[i] = &rec[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, dberr.Wrap(err, "insert_returning_scan")
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "insert_returning_rows")
	}

	return out, nil
}

// insertReturningOneAtATime implements the MySQL round-trip-per-record path.
// Each record is upserted with an "id = LAST_INSERT_ID(id)" clause appended
// so LAST_INSERT_ID() reports the row's id whether it was newly inserted or
// already existed, then a single follow-up SELECT recovers returningCols.
func insertReturningOneAtATime(ctx stdctx.Context, conn Conn, table string, columns, unique []string, records []dbtype.Record, returningCols []string) ([]dbtype.Record, error) {
	d := dialect.MySQL{}

	out := make([]dbtype.Record, 0, len(records))
	for _, rec := range records {
		query, _ := d.BuildInsert(dialect.InsertSpec{
			Table:         table,
			Columns:       columns,
			UniqueColumns: unique,
			Merge:         true,
			RowCount:      1,
		})
		if len(unique) > 0 {
			query = fmt.Sprintf("%s, id = LAST_INSERT_ID(id)", query)
		}

		if _, err := conn.Exec(ctx, query, []any(rec)...); err != nil {
			return nil, dberr.Wrap(err, "insert_returning_one")
		}

		var id int64
		if err := conn.QueryRow(ctx, "SELECT LAST_INSERT_ID()").Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "insert_returning_last_id")
		}

		row, err := FetchRow(ctx, conn, d, table, returningCols, []dbtype.Filter{dbtype.Eq("id", id)})
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}

	return out, nil
}
