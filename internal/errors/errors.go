package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents an error when an operation collides with existing
// state: a duplicate build name, a component still referenced by builds, or an
// attempt to like a build that cannot be liked.
type ConflictError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *ConflictError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s conflict: %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s conflict", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// TransientError wraps store connectivity/timeout failures that are safe to
// retry. The transaction helper retries these once before surfacing them.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient store error: %v", e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrComponentNotFound = &NotFoundError{Entity: "component"}
	ErrBuildNotFound     = &NotFoundError{Entity: "build"}
	ErrUserNotFound      = &NotFoundError{Entity: "user"}
)

// Conflict Errors
var (
	ErrBuildNameExists      = &ConflictError{Entity: "build", Context: "a build with this name already exists"}
	ErrComponentInUse       = &ConflictError{Entity: "component", Context: "component is referenced by existing builds"}
	ErrBuildNotLikeable     = &ConflictError{Entity: "build like", Context: "build is private and cannot be liked"}
	ErrUsernameExists       = &ConflictError{Entity: "user", Context: "a user with this username already exists"}
	ErrDuplicateComponent   = &ConflictError{Entity: "build component", Context: "component selected more than once"}
)

// Authorization Errors
var (
	ErrNotBuildOwner   = &AuthorizationError{Message: "caller is not the owner of this build"}
	ErrOwnLikeRejected = &AuthorizationError{Message: "users cannot like their own builds"}
	ErrAdminRequired   = &AuthorizationError{Message: "admin privileges required"}
	ErrBuildNotVisible = &AuthorizationError{Message: "build is private"}
)

// Validation Errors
var (
	ErrInvalidCategory     = &ValidationError{Field: "category", Message: "unknown component category"}
	ErrSelectionHasOwnRole = &ValidationError{Field: "selection", Message: "selection must not include the queried category"}
	ErrEmptySelections     = &ValidationError{Field: "selections", Message: "a build requires at least one component"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsTransient checks if an error is a TransientError
func IsTransient(err error) bool {
	var transientErr *TransientError
	return errors.As(err, &transientErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError
func NewConflictError(entity, context string) error {
	return &ConflictError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewTransientError wraps err as a TransientError
func NewTransientError(err error) error {
	return &TransientError{Err: err}
}
