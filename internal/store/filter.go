package store

import (
	"github.com/taibuivan/filmcatalog/internal/dbtype"
	"github.com/taibuivan/filmcatalog/internal/dialect"
)

// splitFilters is the translation boundary [internal/dialect]'s package doc
// promises: it turns the caller-facing []dbtype.Filter — which carries
// actual bound values — into the parallel []dialect.Filter the query builder
// needs for placeholder counting, plus a flat, positionally-aligned slice of
// the values themselves.
func splitFilters(filters []dbtype.Filter) ([]dialect.Filter, []any) {
	if len(filters) == 0 {
		return nil, nil
	}

	rendered := make([]dialect.Filter, len(filters))
	var args []any

	for i, f := range filters {
		switch f.Op {
		case dbtype.OpBetween:
			pair := f.Value.([2]any)
			rendered[i] = dialect.Filter{Column: f.Column, Op: dialect.OpBetween, Values: 2}
			args = append(args, pair[0], pair[1])
		case dbtype.OpIn:
			values := f.Value.([]any)
			rendered[i] = dialect.Filter{Column: f.Column, Op: dialect.OpIn, Values: len(values)}
			args = append(args, values...)
		default:
			rendered[i] = dialect.Filter{Column: f.Column, Op: dialect.Op(f.Op), Values: 1}
			args = append(args, f.Value)
		}
	}

	return rendered, args
}

func renderOrderings(orderings []dbtype.Ordering) []dialect.Ordering {
	if len(orderings) == 0 {
		return nil
	}
	rendered := make([]dialect.Ordering, len(orderings))
	for i, o := range orderings {
		rendered[i] = dialect.Ordering{Column: o.Column, Direction: dialect.Direction(o.Direction)}
	}
	return rendered
}

// appendLimitOffsetArgs mirrors the placeholder bookkeeping in
// [dialect.renderLimitOffset]: a limit is always bound to a placeholder; an
// offset is bound to one only when paired with a limit or standing alone —
// the MySQL pagination sentinel is rendered as a literal, never bound.
func appendLimitOffsetArgs(args []any, limit, offset *int) []any {
	if limit != nil {
		args = append(args, *limit)
		if offset != nil {
			args = append(args, *offset)
		}
		return args
	}
	if offset != nil {
		args = append(args, *offset)
	}
	return args
}
