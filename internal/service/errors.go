package service

import (
	"errors"
	"fmt"
)

// Service errors. Store sentinels (store.ErrNotFound, store.ErrDuplicate)
// pass through unchanged inside a ServiceError so callers can still match
// them with errors.Is.
var (
	// ErrNilDependency is returned by constructors given a nil collaborator.
	ErrNilDependency = errors.New("required dependency is nil")

	// ErrInvalidImport indicates an import document that failed validation.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidImport = errors.New("invalid deck import")
)

// ServiceError records which service operation failed.
type ServiceError struct {
	Service   string
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, operation, message string, err error) *ServiceError {
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

func deckError(operation, message string, err error) *ServiceError {
	return NewServiceError("deck", operation, message, err)
}

func reviewError(operation, message string, err error) *ServiceError {
	return NewServiceError("review", operation, message, err)
}
