package dialect

import (
	"fmt"
	"strings"
)

// Postgres renders PostgreSQL-dialect SQL text. It carries no state — every
// Build* call is a pure function of its spec.
type Postgres struct{}

func (Postgres) Name() string { return "postgres" }

func (Postgres) Placeholder(n int) string { return fmt.Sprintf("$%d", n) }

func (Postgres) SupportsReturning() bool { return true }

func (Postgres) PaginationSentinel() *uint64 { return nil }

func (d Postgres) BuildSelect(spec SelectSpec) (string, int) {
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

func (d Postgres) BuildInsert(spec InsertSpec) (string, int) {
	var b strings.Builder
	n := 0

	fmt.Fprintf(&b, "INSERT INTO %s (%s) VALUES ", spec.Table, strings.Join(spec.Columns, ", "))

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

	if len(spec.UniqueColumns) > 0 {
		fmt.Fprintf(&b, " ON CONFLICT (%s) DO ", strings.Join(spec.UniqueColumns, ", "))
		if spec.Merge {
			setCols := nonUniqueOrSelf(spec.Columns, spec.UniqueColumns)
			sets := make([]string, len(setCols))
			for i, c := range setCols {
				sets[i] = fmt.Sprintf("%s = EXCLUDED.%s", c, c)
			}
			b.WriteString("UPDATE SET " + strings.Join(sets, ", "))
		} else {
			b.WriteString("NOTHING")
		}
	}

	if len(spec.ReturningCols) > 0 {
		fmt.Fprintf(&b, " RETURNING %s", strings.Join(spec.ReturningCols, ", "))
	}

	return b.String(), n
}

func (d Postgres) BuildDelete(spec DeleteSpec) (string, int) {
	var b strings.Builder
	fmt.Fprintf(&b, "DELETE FROM %s", spec.Table)
	where, n := renderWhere(d, spec.Filters, 0)
	b.WriteString(where)
	return b.String(), n
}

// BuildGroupWise renders the Postgres group-wise maximum/minimum pattern
// using DISTINCT ON: the inner query's ORDER BY both defines the
// groups (leading columns) and picks the kept row per group (trailing
// maximized column); the caller's own orderings/limit/offset apply to the
// already-deduplicated outer query.
func (d Postgres) BuildGroupWise(spec GroupWiseSpec) (string, int) {
	dir := Desc
	if !spec.IsMaximum {
		dir = Asc
	}

	var inner strings.Builder
	fmt.Fprintf(&inner, "SELECT DISTINCT ON (%s) %s FROM %s",
		strings.Join(spec.Groupings, ", "), strings.Join(spec.Columns, ", "), spec.Table)

	where, n := renderWhere(d, spec.Filters, 0)
	inner.WriteString(where)

	innerOrder := make([]string, 0, len(spec.Groupings)+1)
	for _, g := range spec.Groupings {
		innerOrder = append(innerOrder, g+" ASC")
	}
	innerOrder = append(innerOrder, fmt.Sprintf("%s %s", spec.MaximizedCol, dir))
	fmt.Fprintf(&inner, " ORDER BY %s", strings.Join(innerOrder, ", "))

	var outer strings.Builder
	fmt.Fprintf(&outer, "SELECT %s FROM (%s) gw", strings.Join(spec.Columns, ", "), inner.String())
	outer.WriteString(renderOrderBy(spec.Orderings))

	limitOffset, n2 := renderLimitOffset(d, spec.Limit, spec.Offset, n)
	outer.WriteString(limitOffset)

	return outer.String(), n2
}

// nonUniqueOrSelf returns the columns that should appear on the SET side of
// an upsert's DO UPDATE clause: every column not part of the unique key, or
// (when every column is part of the unique key, e.g. a name-only reference
// table) the unique columns themselves, self-assigned as a no-op so that
// RETURNING still fires for a conflicting row.
func nonUniqueOrSelf(columns, uniqueColumns []string) []string {
	unique := make(map[string]bool, len(uniqueColumns))
	for _, c := range uniqueColumns {
		unique[c] = true
	}

	var rest []string
	for _, c := range columns {
		if !unique[c] {
			rest = append(rest, c)
		}
	}
	if len(rest) == 0 {
		return uniqueColumns
	}
	return rest
}

func renderWhere(d Dialect, filters []Filter, n int) (string, int) {
	if len(filters) == 0 {
		return "", n
	}

	clauses := make([]string, len(filters))
	for i, f := range filters {
		clause, n2 := renderFilter(d, f, n)
		n = n2
		clauses[i] = clause
	}
	return " WHERE " + strings.Join(clauses, " AND "), n
}

func renderFilter(d Dialect, f Filter, n int) (string, int) {
	switch f.Op {
	case OpBetween:
		n++
		lo := d.Placeholder(n)
		n++
		hi := d.Placeholder(n)
		return fmt.Sprintf("%s BETWEEN %s AND %s", f.Column, lo, hi), n
	case OpIn:
		placeholders := make([]string, f.Values)
		for i := range placeholders {
			n++
			placeholders[i] = d.Placeholder(n)
		}
		return fmt.Sprintf("%s IN (%s)", f.Column, strings.Join(placeholders, ", ")), n
	default:
		n++
		return fmt.Sprintf("%s %s %s", f.Column, f.Op, d.Placeholder(n)), n
	}
}

func renderOrderBy(orderings []Ordering) string {
	if len(orderings) == 0 {
		return ""
	}
	terms := make([]string, len(orderings))
	for i, o := range orderings {
		terms[i] = fmt.Sprintf("%s %s", o.Column, o.Direction)
	}
	return " ORDER BY " + strings.Join(terms, ", ")
}

// renderLimitOffset renders LIMIT/OFFSET. An offset without a limit is still
// rendered: Postgres gets a bare OFFSET, while a dialect with a
// [Dialect.PaginationSentinel] (MySQL) gets that sentinel as a literal LIMIT
// in front of the OFFSET. Only the limit and offset values are placeholders.
func renderLimitOffset(d Dialect, limit, offset *int, n int) (string, int) {
	var b strings.Builder

	if limit != nil {
		n++
		fmt.Fprintf(&b, " LIMIT %s", d.Placeholder(n))
		if offset != nil {
			n++
			fmt.Fprintf(&b, " OFFSET %s", d.Placeholder(n))
		}
		return b.String(), n
	}

	if offset != nil {
		if sentinel := d.PaginationSentinel(); sentinel != nil {
			fmt.Fprintf(&b, " LIMIT %d", *sentinel)
		}
		n++
		fmt.Fprintf(&b, " OFFSET %s", d.Placeholder(n))
	}

	return b.String(), n
}
