package catalog

import "github.com/taibuivan/filmcatalog/pkg/pointer"

// toInt and toString normalize the driver-scanned values [store.Fetch] and
// [store.InsertReturning] hand back — pgx and database/sql agree on Go types
// for integer/text columns, but neither guarantees the exact numeric width,
// so both int and int64 are accepted.
func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	default:
		return 0
	}
}

func toString(v any) string {
	s, _ := v.(string)
	return s
}

func fromStringP(p *string) any {
	if p == nil {
		return nil
	}
	return pointer.Val(p)
}

func fromIntP(p *int) any {
	if p == nil {
		return nil
	}
	return pointer.Val(p)
}

func fromFloatP(p *float64) any {
	if p == nil {
		return nil
	}
	return pointer.Val(p)
}
