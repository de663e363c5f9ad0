package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/errors"
)

type sample struct {
	Subject  string `json:"subject" validate:"required,max=10"`
	Email    string `json:"clientEmail" validate:"required,email"`
	Priority string `json:"priority" validate:"oneof=low normal"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(sample{Subject: "ok", Email: "a@b.test", Priority: "low"}))

	err := ValidateStruct(sample{Subject: "far too long subject", Email: "nope", Priority: "urgent"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Details, "subject must be at most 10 characters long")
	assert.Contains(t, appErr.Details, "clientEmail must be a valid email address")
	assert.Contains(t, appErr.Details, "priority must be one of [low normal]")
}
