package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorClassification(t *testing.T) {
	err := NewValidationError(ReasonMissingTemplate, "no template selected")

	assert.True(t, IsValidation(err))
	assert.False(t, IsRequestFailed(err))
	assert.True(t, HasReason(err, ReasonMissingTemplate))
	assert.False(t, HasReason(err, ReasonEmptyRecipients))
	assert.Contains(t, err.Error(), "validation_error")
}

func TestRequestFailedWrapsCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewRequestFailedError("GET /users", cause)

	assert.True(t, IsRequestFailed(err))
	assert.ErrorContains(t, err, "connection refused")
	assert.Equal(t, cause, err.Unwrap())
}

func TestClassificationThroughWrapping(t *testing.T) {
	inner := NewValidationError(ReasonInvalidVariablesJSON, "variables must be valid JSON")
	wrapped := fmt.Errorf("submit: %w", inner)

	assert.True(t, IsValidation(wrapped))
	assert.True(t, HasReason(wrapped, ReasonInvalidVariablesJSON))
	assert.Equal(t, inner, GetAppError(wrapped))
}

func TestGetAppErrorOnForeignError(t *testing.T) {
	assert.Nil(t, GetAppError(fmt.Errorf("plain")))
	assert.False(t, IsAppError(fmt.Errorf("plain")))
}
