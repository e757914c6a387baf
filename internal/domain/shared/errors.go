package shared

import (
	"errors"
	"fmt"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes recognised across the billing domain.
const (
	CodeNotFound            = "NOT_FOUND"
	CodeAlreadyExists       = "ALREADY_EXISTS"
	CodeConflict            = "CONFLICT"
	CodeValidation          = "VALIDATION_ERROR"
	CodeReferenceInUse      = "REFERENCE_IN_USE"
	CodeConcurrencyConflict = "CONCURRENCY_CONFLICT"
	CodeInternal            = "INTERNAL_ERROR"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeInvalidState        = "INVALID_STATE"
)

// Common domain errors
var (
	ErrNotFound            = NewDomainError(CodeNotFound, "Resource not found")
	ErrAlreadyExists       = NewDomainError(CodeAlreadyExists, "Resource already exists")
	ErrInvalidInput        = NewDomainError(CodeValidation, "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError(CodeConcurrencyConflict, "Resource was modified by another process")
	ErrUnauthorized        = NewDomainError(CodeUnauthorized, "Not authorized to perform this action")
	ErrReferenceInUse      = NewDomainError(CodeReferenceInUse, "Record is referenced by other records")
)

// NewNotFoundError creates a NOT_FOUND error for a named resource
func NewNotFoundError(resource string) *DomainError {
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s not found", resource))
}

// NewConflictError creates a CONFLICT error with a formatted message
func NewConflictError(format string, args ...any) *DomainError {
	return NewDomainError(CodeConflict, fmt.Sprintf(format, args...))
}

// NewValidationError creates a VALIDATION_ERROR with a formatted message
func NewValidationError(format string, args ...any) *DomainError {
	return NewDomainError(CodeValidation, fmt.Sprintf(format, args...))
}

// NewAlreadyExistsError creates an ALREADY_EXISTS error with a formatted message
func NewAlreadyExistsError(format string, args ...any) *DomainError {
	return NewDomainError(CodeAlreadyExists, fmt.Sprintf(format, args...))
}

// ErrorCode extracts the domain error code from err, or CodeInternal when
// err is not a DomainError.
func ErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// NewReferenceInUseError creates a REFERENCE_IN_USE error for delete
// operations blocked by dependent rows elsewhere in the schema.
func NewReferenceInUseError(resource string) *DomainError {
	return NewDomainError(CodeReferenceInUse,
		fmt.Sprintf("Cannot delete this %s because it is referenced in other records", resource))
}

// NewInternalError wraps an unexpected failure, preserving the underlying
// cause in the message. Used when a write transaction rolls back.
func NewInternalError(op string, cause error) *DomainError {
	return NewDomainError(CodeInternal, fmt.Sprintf("%s: %v", op, cause))
}
