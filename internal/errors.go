package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
)

// AppError is the single error shape handlers and middleware return to
// clients. Message becomes the "error" field on the wire; Fields, when
// present, becomes the field-keyed "errors" object of a validation
// failure. Cause stays server-side and is only ever logged.
type AppError struct {
	Type       ErrorType
	Message    string
	Fields     map[string][]string
	StatusCode int
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// MarshalJSON renders the client-facing body: {"error": ..., "errors": {...}}.
// Type, StatusCode and Cause never leave the process.
func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Error  string              `json:"error"`
		Errors map[string][]string `json:"errors,omitempty"`
	}{
		Error:  e.Message,
		Errors: e.Fields,
	})
}

func NewValidationError(fields map[string][]string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    "Validation failed.",
		Fields:     fields,
		StatusCode: http.StatusBadRequest,
	}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewUnauthorizedError() *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Message:    "Unauthorized. Invalid or missing token.",
		StatusCode: http.StatusUnauthorized,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

func NewInternalError(cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    "Internal server error.",
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}
