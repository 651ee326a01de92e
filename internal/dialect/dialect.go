/*
Package dialect is the crawler's query builder.

It is pure: every Build* function takes a spec describing the desired
statement and returns SQL text with positional placeholders, never touching
a connection. Parameter binding is [internal/store]'s job.

# Capability abstraction instead of an is_mysql flag

Dialect differences are expressed through the [Dialect] interface,
implemented by two zero-size types, [Postgres] and [MySQL]. Callers take a
Dialect value; the only MySQL-or-not check is the URI scheme test in
[internal/store]'s AcquirePool, which picks the pool and its Dialect.

# Relationship to dbtype

[internal/dbtype] defines the filter/ordering vocabulary callers build
queries out of; its Filter carries an actual bound Value. This package's
own [Filter] is deliberately narrower — it has no Value field, only a
Values count — because a Build* function never sees bound parameters, only
how many placeholders a clause needs to reserve. [internal/store] is the
translation boundary: it turns a []dbtype.Filter into both a []Filter (for
text generation) and a flat []any of bound values (for execution), in the
same order.
*/
package dialect

// Dialect renders SQL text for one of the two supported engines.
type Dialect interface {
	// Name identifies the dialect for logging.
	Name() string

	// Placeholder returns the positional parameter placeholder for the nth
	// (1-indexed) bound parameter: "$1", "$2", ... for Postgres, "?" for
	// every position in MySQL.
	Placeholder(n int) string

	// SupportsReturning reports whether INSERT ... RETURNING is available.
	// Postgres: true (and supports multi-row RETURNING, preserving input
	// order). MySQL: false — callers needing ids back must perform one
	// round trip per record (see [internal/store]'s InsertReturning).
	SupportsReturning() bool

	// PaginationSentinel returns the upper LIMIT value a bare OFFSET must be
	// paired with on engines that reject "OFFSET n" without a LIMIT (MySQL).
	// Returns nil for dialects that accept a bare OFFSET (Postgres).
	PaginationSentinel() *uint64

	BuildSelect(spec SelectSpec) (string, int)
	BuildInsert(spec InsertSpec) (string, int)
	BuildDelete(spec DeleteSpec) (string, int)
	BuildGroupWise(spec GroupWiseSpec) (string, int)
}

// SelectSpec describes a SELECT statement.
type SelectSpec struct {
	Table     string
	Columns   []string
	Filters   []Filter
	Orderings []Ordering
	Limit     *int
	Offset    *int
}

// InsertSpec describes an INSERT statement.
// RowCount is the number of VALUES tuples to render; the caller supplies the
// actual bound values in that same order when executing.
type InsertSpec struct {
	Table         string
	Columns       []string
	UniqueColumns []string
	Merge         bool
	RowCount      int
	ReturningCols []string
}

// DeleteSpec describes a DELETE statement.
type DeleteSpec struct {
	Table   string
	Filters []Filter
}

// GroupWiseSpec describes the group-wise maximum/minimum pattern: per
// distinct tuple of Groupings, keep the single row with the largest (or
// smallest) value of MaximizedCol.
type GroupWiseSpec struct {
	Table        string
	Columns      []string
	MaximizedCol string
	Groupings    []string
	Filters      []Filter
	Orderings    []Ordering
	Limit        *int
	Offset       *int
	IsMaximum    bool
}

// Op is a filter comparison operator.
type Op string

const (
	OpEQ      Op = "="
	OpNEQ     Op = "!="
	OpGT      Op = ">"
	OpGTE     Op = ">="
	OpLT      Op = "<"
	OpLTE     Op = "<="
	OpIn      Op = "IN"
	OpBetween Op = "BETWEEN"
)

// Filter expresses a single WHERE clause term. Multiplicity (how many bound
// parameters it consumes) depends on Op: 1 for comparison ops, Values for
// IN, 2 for BETWEEN.
type Filter struct {
	Column string
	Op     Op
	Values int // number of bound parameters this filter consumes
}

// Direction is an ORDER BY direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Ordering is a single ORDER BY term.
type Ordering struct {
	Column    string
	Direction Direction
}
