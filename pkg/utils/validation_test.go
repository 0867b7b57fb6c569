package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type selectionRequest struct {
	ID string `json:"id" validate:"omitempty,max=4"`
}

type measureListRequest struct {
	Measures []string `json:"measures" validate:"omitempty,dive,min=1"`
}

func TestValidateStruct_ValidPasses(t *testing.T) {
	assert.NoError(t, ValidateStruct(selectionRequest{ID: "g1"}))
	assert.NoError(t, ValidateStruct(selectionRequest{}))
	assert.NoError(t, ValidateStruct(measureListRequest{Measures: []string{"mu_drastic"}}))
}

func TestValidateStruct_MaxViolation(t *testing.T) {
	err := ValidateStruct(selectionRequest{ID: "too-long"})

	require.Error(t, err)
	assert.Equal(t, "id must be at most 4 characters", err.Error())
}

func TestValidateStruct_MinViolationInsideList(t *testing.T) {
	err := ValidateStruct(measureListRequest{Measures: []string{""}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be at least 1")
}

func TestValidateStruct_MultipleFailuresJoined(t *testing.T) {
	type req struct {
		A string `validate:"max=1"`
		B string `validate:"max=1"`
	}

	err := ValidateStruct(req{A: "xx", B: "yy"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "; ")
}
