package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/filmcatalog/pkg/query"
)

func TestStringSlice(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single", "Drama", []string{"Drama"}},
		{"trims_whitespace", "Drama,  Comedy ,Crime", []string{"Drama", "Comedy", "Crime"}},
		{"drops_empty_elements", "Drama,,Comedy", []string{"Drama", "Comedy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, query.StringSlice(tt.in))
		})
	}
}

func TestNamesSlice_DropsNASentinel(t *testing.T) {
	assert.Equal(t, []string{"Drama", "Comedy"}, query.NamesSlice("Drama, N/A, Comedy"))
}

func TestNamesSlice_DedupPreservesFirstOccurrenceOrder(t *testing.T) {
	// I4: a film's related-entity sets contain no name repeated twice.
	assert.Equal(t, []string{"Keanu Reeves", "Carrie-Anne Moss"},
		query.NamesSlice("Keanu Reeves, Carrie-Anne Moss, Keanu Reeves"))
}

func TestNamesSlice_Empty(t *testing.T) {
	assert.Nil(t, query.NamesSlice(""))
}

func TestIntSlice(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, query.IntSlice([]string{"1", "2", "3"}))
	assert.Equal(t, []int{1, 3}, query.IntSlice([]string{"1", "bad", "3"}))
	assert.Nil(t, query.IntSlice(nil))
}
