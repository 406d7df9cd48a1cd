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

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this id"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a business-rule violation caught before any
// gateway call. No state change occurs when one is returned.
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

// PersistenceError represents a failure at the storage boundary: network,
// constraint violation or schema mismatch. The gateway performs no retry
// and no partial rollback; the caller owns recovery. The underlying cause
// is kept for errors.Is/As chains and the message is surfaced verbatim to
// the user.
type PersistenceError struct {
	Op      string // operation that failed, e.g. "create repair request"
	Message string
	Err     error
}

func (e *PersistenceError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("persistence error: %s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("persistence error: %s", e.Message)
}

// Unwrap exposes the underlying storage error
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrRequestNotFound    = &NotFoundError{Entity: "repair request"}
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
	ErrZonalNotFound      = &NotFoundError{Entity: "zonal"}
	ErrRoleNotFound       = &NotFoundError{Entity: "role"}
	ErrTechnicianNotFound = &NotFoundError{Entity: "technician"}
)

// Already Exists Errors
var (
	ErrRequestExists = &AlreadyExistsError{Entity: "repair request", Context: "with this id"}
	ErrUserExists    = &AlreadyExistsError{Entity: "user", Context: "with this id"}
)

// Business Logic Errors
var (
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidZone     = errors.New("invalid zonal")
	ErrBuiltinRole     = errors.New("built-in roles cannot be removed")
	ErrRoleInUse       = errors.New("role is referenced by at least one user")
	ErrStoreNotLoaded  = errors.New("store has not been loaded")
	ErrEmptyCollection = errors.New("no requests match the current filter")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var persistenceErr *PersistenceError
	return errors.As(err, &persistenceErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewPersistenceError wraps a storage-layer failure with the operation name
func NewPersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Message: err.Error(), Err: err}
}
