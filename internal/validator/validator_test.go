package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listParams struct {
	Page    *int    `validate:"omitnil,min=1"`
	PerPage *int    `validate:"omitnil,min=1,max=5"`
	Sort    *string `validate:"omitnil,oneof=price duration"`
}

func ptr[T any](v T) *T {
	return &v
}

func TestValidationMessage(t *testing.T) {
	tests := []struct {
		name  string
		input listParams
		want  map[string]string
	}{
		{
			name:  "nil fields are skipped",
			input: listParams{},
		},
		{
			name:  "zero page is below the minimum",
			input: listParams{Page: ptr(0)},
			want:  map[string]string{"Page": "must be at least 1"},
		},
		{
			name:  "per page above the maximum",
			input: listParams{PerPage: ptr(999)},
			want:  map[string]string{"PerPage": "must be at most 5"},
		},
		{
			name:  "sort outside the allowed values",
			input: listParams{Sort: ptr("name")},
			want:  map[string]string{"Sort": "must be one of: price duration"},
		},
	}

	v := NewValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))

			got := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				got[fe.Field()] = ValidationMessage(fe)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}
