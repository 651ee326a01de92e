package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/filmcatalog/internal/dbtype"
	"github.com/taibuivan/filmcatalog/internal/dialect"
)

func TestSplitFilters_Between(t *testing.T) {
	rendered, args := splitFilters([]dbtype.Filter{dbtype.Between("year", 1990, 1999)})

	assert.Equal(t, []dialect.Filter{{Column: "year", Op: dialect.OpBetween, Values: 2}}, rendered)
	assert.Equal(t, []any{1990, 1999}, args)
}

func TestSplitFilters_In(t *testing.T) {
	rendered, args := splitFilters([]dbtype.Filter{dbtype.In("id", []any{1, 2, 3})})

	assert.Equal(t, []dialect.Filter{{Column: "id", Op: dialect.OpIn, Values: 3}}, rendered)
	assert.Equal(t, []any{1, 2, 3}, args)
}

func TestSplitFilters_Eq(t *testing.T) {
	rendered, args := splitFilters([]dbtype.Filter{dbtype.Eq("imdb_id", 111161)})

	assert.Equal(t, []dialect.Filter{{Column: "imdb_id", Op: dialect.OpEQ, Values: 1}}, rendered)
	assert.Equal(t, []any{111161}, args)
}

func TestSplitFilters_Empty(t *testing.T) {
	rendered, args := splitFilters(nil)
	assert.Nil(t, rendered)
	assert.Nil(t, args)
}

func TestAppendLimitOffsetArgs(t *testing.T) {
	limit, offset := 10, 20

	assert.Equal(t, []any{10, 20}, appendLimitOffsetArgs(nil, &limit, &offset))
	assert.Equal(t, []any{10}, appendLimitOffsetArgs(nil, &limit, nil))
	assert.Equal(t, []any{20}, appendLimitOffsetArgs(nil, nil, &offset))
	assert.Nil(t, appendLimitOffsetArgs(nil, nil, nil))
}
