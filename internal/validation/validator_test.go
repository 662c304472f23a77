package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookRequest struct {
	Title      string   `json:"title" validate:"required,max=20"`
	AgeRange   string   `json:"ageRange,omitempty" validate:"omitempty,agerange"`
	Categories []string `json:"categories" validate:"dive,category"`
	Rating     *int     `json:"rating,omitempty" validate:"omitempty,gte=0,lte=50"`
}

func TestValidate_Valid(t *testing.T) {
	v := New()
	rating := 40

	err := v.Validate(bookRequest{
		Title:      "Gruffalo",
		AgeRange:   "3-5 years",
		Categories: []string{"Picture Books"},
		Rating:     &rating,
	})
	assert.NoError(t, err)
}

func TestValidate_FieldErrorsUseJSONNames(t *testing.T) {
	v := New()
	rating := 51

	err := v.Validate(bookRequest{
		AgeRange:   "teen",
		Categories: []string{"Picture Books", "Cooking"},
		Rating:     &rating,
	})
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "validation failed", verr.Message)
	assert.Equal(t, "is required", verr.Fields["title"])
	assert.Contains(t, verr.Fields["ageRange"], "must be one of")
	assert.Contains(t, verr.Fields["categories[1]"], "must be one of")
	assert.NotContains(t, verr.Fields, "categories[0]")
	assert.Equal(t, "must be less than or equal to 50", verr.Fields["rating"])
}

func TestValidate_MaxLength(t *testing.T) {
	err := New().Validate(bookRequest{Title: "A title that is far too long"})

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "must not exceed 20 characters", verr.Fields["title"])
}
