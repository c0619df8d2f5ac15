package util

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
	Type     string `json:"type" binding:"omitempty,oneof=workshop social"`
}

func TestFlattenValidationErrorUsesJSONNames(t *testing.T) {
	err := binding.Validator.ValidateStruct(&sampleRequest{Name: "x"})
	assert.Error(t, err)

	details := FlattenValidationError(err)
	assert.Len(t, details, 1)
	assert.Equal(t, "location", details[0].Field)
	assert.Equal(t, "location is required", details[0].Message)
}

func TestFlattenValidationErrorOneof(t *testing.T) {
	err := binding.Validator.ValidateStruct(&sampleRequest{
		Name:     "x",
		Location: "y",
		Type:     "party",
	})
	assert.Error(t, err)

	details := FlattenValidationError(err)
	assert.Len(t, details, 1)
	assert.Equal(t, "type", details[0].Field)
	assert.Equal(t, "Invalid type", details[0].Message)
}

func TestFlattenValidationErrorNonValidatorError(t *testing.T) {
	details := FlattenValidationError(errors.New("unexpected EOF"))
	assert.Len(t, details, 1)
	assert.Equal(t, "body", details[0].Field)
}
