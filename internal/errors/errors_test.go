package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "build"}
		assert.Equal(t, "build not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "build"}
		err2 := &NotFoundError{Entity: "build"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "build"}
		err2 := &NotFoundError{Entity: "component"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrBuildNotFound, ErrBuildNotFound))
		assert.False(t, errors.Is(ErrBuildNotFound, ErrComponentNotFound))
	})

	t.Run("errors.Is sees through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading build: %w", ErrBuildNotFound)
		assert.True(t, errors.Is(wrapped, ErrBuildNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrComponentNotFound))
		assert.False(t, IsNotFound(ErrBuildNameExists))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &ConflictError{Entity: "build", Context: "a build with this name already exists"}
		assert.Equal(t, "build conflict: a build with this name already exists", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &ConflictError{Entity: "build"}
		assert.Equal(t, "build conflict", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &ConflictError{Entity: "build", Context: "x"}
		err2 := &ConflictError{Entity: "build", Context: "y"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(ErrBuildNameExists))
		assert.True(t, IsConflict(ErrComponentInUse))
		assert.False(t, IsConflict(ErrBuildNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "category", Message: "unknown component category"}
		assert.Equal(t, "validation error: category - unknown component category", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "bad input"}
		assert.Equal(t, "validation error: bad input", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("name", "required")))
		assert.True(t, IsValidation(ErrInvalidCategory))
		assert.False(t, IsValidation(ErrBuildNotFound))
	})
}

func TestAuthorizationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "caller is not the owner of this build", ErrNotBuildOwner.Error())
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrNotBuildOwner))
		assert.True(t, IsAuthorization(ErrOwnLikeRejected))
		assert.True(t, IsAuthorization(ErrBuildNotVisible))
		assert.False(t, IsAuthorization(ErrBuildNameExists))
	})
}

func TestTransientError(t *testing.T) {
	cause := errors.New("Error 1213: Deadlock found when trying to get lock")
	err := NewTransientError(cause)

	t.Run("wraps the cause", func(t *testing.T) {
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "transient store error")
	})

	t.Run("IsTransient helper", func(t *testing.T) {
		assert.True(t, IsTransient(err))
		assert.True(t, IsTransient(fmt.Errorf("running tx: %w", err)))
		assert.False(t, IsTransient(cause))
	})
}

func TestConstructors(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("widget")))
	assert.True(t, IsConflict(NewConflictError("widget", "already there")))
	assert.True(t, IsAuthorization(NewAuthorizationError("no")))
}
