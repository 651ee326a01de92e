package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/filmcatalog/internal/platform/apperr"
	"github.com/taibuivan/filmcatalog/internal/platform/validate"
)

func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "The Matrix", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

func TestValidator_Range(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		min, max int
		hasError bool
	}{
		{"within_range", 1999, 1887, 2027, false},
		{"below_range", 1800, 1887, 2027, true},
		{"above_range", 3000, 1887, 2027, true},
		{"boundary_min", 1887, 1887, 2027, false},
		{"boundary_max", 2027, 1887, 2027, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Range("year", tt.value, tt.min, tt.max)
			assert.Equal(t, tt.hasError, v.HasErrors())
		})
	}
}

func TestValidator_Custom(t *testing.T) {
	v := &validate.Validator{}
	v.Custom("stop_year", 1999 <= 2000, "stop_year must be greater than start_year")
	require.True(t, v.HasErrors())

	ae := apperr.As(v.Err())
	require.NotNil(t, ae)
	assert.Equal(t, "stop_year", ae.Details[0].Field)
}

func TestValidator_ChainAccumulates(t *testing.T) {
	v := &validate.Validator{}
	v.Required("database_url", "").Range("max_connections", -1, 1, 1000)

	ae := apperr.As(v.Err())
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 2)
}
