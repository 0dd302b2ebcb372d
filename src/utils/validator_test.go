package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `validate:"required"`
	Time string `validate:"omitempty,oneof=All Morning Afternoon"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(sample{Name: "x", Time: "Morning"}))
	assert.NoError(t, ValidateStruct(sample{Name: "x"}))

	err := ValidateStruct(sample{Time: "Evening"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample.Name: required")
	assert.Contains(t, err.Error(), "sample.Time: oneof=All Morning Afternoon")
}
