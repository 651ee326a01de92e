package dialect

import (
	"fmt"
	"math"
	"strings"
)

// MySQL renders MySQL-dialect SQL text.
type MySQL struct{}

func (MySQL) Name() string { return "mysql" }

func (MySQL) Placeholder(int) string { return "?" }

func (MySQL) SupportsReturning() bool { return false }

// PaginationSentinel is math.MaxUint64: MySQL rejects a bare OFFSET, so a
// fetch with an offset but no caller-supplied limit pairs it with this
// sentinel upper bound instead.
func (MySQL) PaginationSentinel() *uint64 {
	v := uint64(math.MaxUint64)
	return &v
}

func (d MySQL) BuildSelect(spec SelectSpec) (string, int) {
	var b strings.Builder
	n := 0

	fmt.Fprintf(&b, "SELECT %s FROM %s", strings.Join(spec.Columns, ", "), spec.Table)

	where, n2 := renderWhere(d, spec.Filters, n)
	n = n2
	b.WriteString(where)

	b.WriteString(renderOrderBy(spec.Orderings))

	limitOffset, n3 := renderLimitOffset(d, spec.Limit, spec.Offset, n)
	n = n3
	b.WriteString(limitOffset)

	return b.String(), n
}

func (d MySQL) BuildInsert(spec InsertSpec) (string, int) {
	var b strings.Builder
	n := 0

	verb := "INSERT"
	if len(spec.UniqueColumns) > 0 && !spec.Merge {
		// MySQL has no ON CONFLICT DO NOTHING; INSERT IGNORE is the
		// idiomatic equivalent for a non-merging idempotent insert,
		// which is what the join-table writes need.
		verb = "INSERT IGNORE"
	}
	fmt.Fprintf(&b, "%s INTO %s (%s) VALUES ", verb, spec.Table, strings.Join(spec.Columns, ", "))

	rows := make([]string, spec.RowCount)
	for r := 0; r < spec.RowCount; r++ {
		placeholders := make([]string, len(spec.Columns))
		for c := range spec.Columns {
			n++
			placeholders[c] = d.Placeholder(n)
		}
		rows[r] = "(" + strings.Join(placeholders, ", ") + ")"
	}
	b.WriteString(strings.Join(rows, ", "))

	if len(spec.UniqueColumns) > 0 && spec.Merge {
		setCols := nonUniqueOrSelf(spec.Columns, spec.UniqueColumns)
		sets := make([]string, len(setCols))
		for i, c := range setCols {
			sets[i] = fmt.Sprintf("%s = VALUES(%s)", c, c)
		}
		fmt.Fprintf(&b, " ON DUPLICATE KEY UPDATE %s", strings.Join(sets, ", "))
	}

	// MySQL has no RETURNING; a caller needing ids back must instead
	// issue one round trip per record (LAST_INSERT_ID()/follow-up SELECT)
	// at the internal/store layer, which never builds a non-empty
	// ReturningCols spec for this dialect.

	return b.String(), n
}

func (d MySQL) BuildDelete(spec DeleteSpec) (string, int) {
	var b strings.Builder
	fmt.Fprintf(&b, "DELETE FROM %s", spec.Table)
	where, n := renderWhere(d, spec.Filters, 0)
	b.WriteString(where)
	return b.String(), n
}

// BuildGroupWise renders the MySQL group-wise maximum/minimum pattern using
// the classic user-variable boundary trick: rows are ordered so that each
// group's members are contiguous and sorted by the maximized column, a
// session variable tracks the previous row's group key, and the row where
// the key changes — the first row of each group, i.e. its max/min — is
// flagged and kept. The variable is seeded with an empty string so the very
// first row always starts a group.
func (d MySQL) BuildGroupWise(spec GroupWiseSpec) (string, int) {
	dir := Desc
	if !spec.IsMaximum {
		dir = Asc
	}

	groupKey := "CONCAT_WS('\\x01', " + strings.Join(spec.Groupings, ", ") + ")"

	innerCols := make([]string, len(spec.Columns))
	for i, c := range spec.Columns {
		innerCols[i] = "t." + c
	}

	var inner strings.Builder
	fmt.Fprintf(&inner, "SELECT %s, IF(@gw_prev = %s, 0, 1) AS gw_boundary, @gw_prev := %s AS gw_key "+
		"FROM (SELECT @gw_prev := '') gw_init, %s t",
		strings.Join(innerCols, ", "), groupKey, groupKey, spec.Table)

	where, n := renderWhere(d, spec.Filters, 0)
	inner.WriteString(where)

	innerOrder := make([]string, 0, len(spec.Groupings)+1)
	for _, g := range spec.Groupings {
		innerOrder = append(innerOrder, g+" ASC")
	}
	innerOrder = append(innerOrder, fmt.Sprintf("%s %s", spec.MaximizedCol, dir))
	fmt.Fprintf(&inner, " ORDER BY %s", strings.Join(innerOrder, ", "))

	var outer strings.Builder
	fmt.Fprintf(&outer, "SELECT %s FROM (%s) gw WHERE gw.gw_boundary = 1",
		strings.Join(spec.Columns, ", "), inner.String())
	outer.WriteString(renderOrderBy(spec.Orderings))

	limitOffset, n2 := renderLimitOffset(d, spec.Limit, spec.Offset, n)
	outer.WriteString(limitOffset)

	return outer.String(), n2
}
