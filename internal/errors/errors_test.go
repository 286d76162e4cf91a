package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_WithDetails(t *testing.T) {
	err := NewValidationError("validation failed",
		ValidationDetail{Field: "name", Message: "name is required"},
		ValidationDetail{Field: "price", Message: "price must be non-negative"},
	)

	assert.Equal(t, "validation failed", err.Error())
	assert.Len(t, err.Details, 2)

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "name", ve.Details[0].Field)
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("company not found")

	nfe, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.Equal(t, "company not found", nfe.Error())
}

func TestNotFoundError_OtherErrorKind(t *testing.T) {
	nfe, ok := IsNotFoundError(errors.New("boom"))

	assert.False(t, ok)
	assert.Nil(t, nfe)
}

func TestUnauthorizedError(t *testing.T) {
	err := NewUnauthorizedError("wrong username or password")

	ue, ok := IsUnauthorizedError(err)
	assert.True(t, ok)
	assert.Equal(t, "wrong username or password", ue.Message)

	_, ok = IsValidationError(err)
	assert.False(t, ok)
}

func TestConflictError_WrapsCause(t *testing.T) {
	cause := errors.New("duplicate entry")
	err := NewConflictError("username taken", cause)

	ce, ok := IsConflictError(err)
	assert.True(t, ok)
	assert.ErrorIs(t, ce, cause)
	assert.Contains(t, ce.Error(), "username taken")
}

func TestInternalError_WithAndWithoutCause(t *testing.T) {
	cause := errors.New("connection refused")

	withCause := NewInternalError("querying database", cause)
	assert.Equal(t, "querying database: connection refused", withCause.Error())
	assert.ErrorIs(t, withCause, cause)

	withoutCause := NewInternalError("something broke", nil)
	assert.Equal(t, "something broke", withoutCause.Error())
}
