package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different types of errors in the system
type ErrorType string

const (
	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeValidation indicates a malformed generation request
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeInvalidGoal indicates an unrecognized goal token
	ErrorTypeInvalidGoal ErrorType = "INVALID_GOAL"

	// ErrorTypeHardStop indicates an absolute clinical contraindication
	// detected before supplement selection
	ErrorTypeHardStop ErrorType = "CLINICAL_HARD_STOP"

	// ErrorTypeSafetyBlock indicates a critical interaction found in the
	// assembled stack during the post-assembly safety check
	ErrorTypeSafetyBlock ErrorType = "SAFETY_HARD_BLOCK"

	// ErrorTypeConflict indicates a conflict with existing data
	ErrorTypeConflict ErrorType = "CONFLICT"

	// ErrorTypeInternal indicates an internal server error
	ErrorTypeInternal ErrorType = "INTERNAL"

	// ErrorTypeExternal indicates an error from external service
	ErrorTypeExternal ErrorType = "EXTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// NewInvalidGoalError creates an error for an unrecognized goal token
func NewInvalidGoalError(goal string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidGoal,
		Message: fmt.Sprintf("unrecognized goal %q", goal),
	}
}

// NewHardStopError creates an error for a pre-selection clinical hard stop
func NewHardStopError(reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeHardStop,
		Message: reason,
	}
}

// NewSafetyBlockError creates an error for a post-assembly safety hard block
func NewSafetyBlockError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeSafetyBlock,
		Message: message,
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeConflict,
		Message: message,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// NewExternalError creates a new external service error
func NewExternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeExternal,
		Message: message,
		Err:     err,
	}
}
