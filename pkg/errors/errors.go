package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Session errors
	ErrorTypeNoInstanceSelected    ErrorType = "NO_INSTANCE_SELECTED"
	ErrorTypeNoConstraintsProvided ErrorType = "NO_CONSTRAINTS_PROVIDED"
	ErrorTypeSchemaLoad            ErrorType = "SCHEMA_LOAD"
	ErrorTypeComputationFailed     ErrorType = "COMPUTATION_FAILED"
	ErrorTypeMalformedDocument     ErrorType = "MALFORMED_DOCUMENT"

	// General errors
	ErrorTypeValidation ErrorType = "VALIDATION"
	ErrorTypeNotFound   ErrorType = "NOT_FOUND"
	ErrorTypeInternal   ErrorType = "INTERNAL"
	ErrorTypeExternal   ErrorType = "EXTERNAL"
)

// AppError represents an application-specific error
type AppError struct {
	Type       ErrorType              `json:"type"`
	Message    string                 `json:"message"`
	Code       string                 `json:"code,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
	HTTPStatus int                    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCode adds an error code
func (e *AppError) WithCode(code string) *AppError {
	e.Code = code
	return e
}

// WithDetails adds error details
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// Constructor functions for common error types

// NewNoInstanceSelectedError signals a compute attempt without an active instance
func NewNoInstanceSelectedError() *AppError {
	return &AppError{
		Type:       ErrorTypeNoInstanceSelected,
		Message:    "no graph instance selected",
		HTTPStatus: http.StatusConflict,
	}
}

// NewNoConstraintsProvidedError signals a compute attempt with an empty constraint list
func NewNoConstraintsProvidedError() *AppError {
	return &AppError{
		Type:       ErrorTypeNoConstraintsProvided,
		Message:    "no constraints provided",
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewSchemaLoadError creates an error for a failed instance selection or schema fetch
func NewSchemaLoadError(instanceID string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeSchemaLoad,
		Message:    fmt.Sprintf("failed to load schema for instance '%s'", instanceID),
		Cause:      err,
		HTTPStatus: http.StatusBadGateway,
	}
}

// NewComputationFailedError creates an error for a failed measure computation
func NewComputationFailedError(message string) *AppError {
	if message == "" {
		message = "measure computation failed"
	}
	return &AppError{
		Type:       ErrorTypeComputationFailed,
		Message:    message,
		HTTPStatus: http.StatusBadGateway,
	}
}

// NewMalformedDocumentError creates an error for an unparseable constraint document
func NewMalformedDocumentError(message string) *AppError {
	if message == "" {
		message = "malformed constraint document"
	}
	return &AppError{
		Type:       ErrorTypeMalformedDocument,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewExternalError creates an external service error
func NewExternalError(service string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeExternal,
		Message:    fmt.Sprintf("external service '%s' error", service),
		Cause:      err,
		HTTPStatus: http.StatusBadGateway,
	}
}

// Helper functions

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from an error chain
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsNoInstanceSelected checks if an error is a missing-selection precondition failure
func IsNoInstanceSelected(err error) bool {
	return IsType(err, ErrorTypeNoInstanceSelected)
}

// IsNoConstraintsProvided checks if an error is an empty-constraints precondition failure
func IsNoConstraintsProvided(err error) bool {
	return IsType(err, ErrorTypeNoConstraintsProvided)
}

// IsSchemaLoad checks if an error is a schema load error
func IsSchemaLoad(err error) bool {
	return IsType(err, ErrorTypeSchemaLoad)
}

// IsComputationFailed checks if an error is a computation failure
func IsComputationFailed(err error) bool {
	return IsType(err, ErrorTypeComputationFailed)
}

// IsMalformedDocument checks if an error is a malformed document error
func IsMalformedDocument(err error) bool {
	return IsType(err, ErrorTypeMalformedDocument)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	// If it's already an AppError, add context to message
	if appErr := GetAppError(err); appErr != nil {
		appErr.Message = fmt.Sprintf("%s: %s", message, appErr.Message)
		return appErr
	}

	// Otherwise create a new internal error
	return NewInternalError(message).WithCause(err)
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}
