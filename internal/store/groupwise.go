package store

import (
	stdctx "context"

	"github.com/taibuivan/filmcatalog/internal/dbtype"
	"github.com/taibuivan/filmcatalog/internal/dialect"
	"github.com/taibuivan/filmcatalog/internal/platform/dberr"
)

// FetchGroupWise returns, per group in groupings, the row holding the
// maximum (or minimum) of maximizedCol.
func FetchGroupWise(ctx stdctx.Context, conn Conn, d dialect.Dialect, table string, columns []string, maximizedCol string, groupings []string, filters []dbtype.Filter, orderings []dbtype.Ordering, limit, offset *int, isMaximum bool) ([]dbtype.Record, error) {
	rendered, args := splitFilters(filters)
	query, _ := d.BuildGroupWise(dialect.GroupWiseSpec{
		Table:        table,
		Columns:      columns,
		MaximizedCol: maximizedCol,
		Groupings:    groupings,
		Filters:      rendered,
		Orderings:    renderOrderings(orderings),
		Limit:        limit,
		Offset:       offset,
		IsMaximum:    isMaximum,
	})
	args = appendLimitOffsetArgs(args, limit, offset)

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "fetch_group_wise")
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
			return nil, dberr.Wrap(err, "fetch_group_wise_scan")
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "fetch_group_wise_rows")
	}

	return records, nil
}

// FetchGroupWiseRecordsCount counts the rows FetchGroupWise would return:
// one per group.
func FetchGroupWiseRecordsCount(ctx stdctx.Context, conn Conn, d dialect.Dialect, table string, maximizedCol string, groupings []string, filters []dbtype.Filter, isMaximum bool) (int, error) {
	records, err := FetchGroupWise(ctx, conn, d, table, groupings, maximizedCol, groupings, filters, nil, nil, nil, isMaximum)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// FetchGroupWiseMaxColumnValue returns the overall maximum (or minimum) of
// maximizedCol across the group-wise result set.
func FetchGroupWiseMaxColumnValue(ctx stdctx.Context, conn Conn, d dialect.Dialect, table string, maximizedCol string, groupings []string, filters []dbtype.Filter, isMaximum bool) (any, error) {
	dir := dbtype.Desc
	if !isMaximum {
		dir = dbtype.Asc
	}
	one := 1
	records, err := FetchGroupWise(ctx, conn, d, table, []string{maximizedCol}, maximizedCol, groupings, filters,
		[]dbtype.Ordering{{Column: maximizedCol, Direction: dir}}, &one, nil, isMaximum)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0][0], nil
}
