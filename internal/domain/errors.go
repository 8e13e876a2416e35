package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Auth errors
	CodeDuplicateUser      ErrorCode = "DUPLICATE_USER"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"

	// Import errors
	CodeDuplicateQuestion ErrorCode = "DUPLICATE_QUESTION"

	// Validation errors
	CodeValidation        ErrorCode = "VALIDATION_ERROR"
	CodeInvalidSubmission ErrorCode = "INVALID_SUBMISSION"
	CodeMissingField      ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat     ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange        ErrorCode = "OUT_OF_RANGE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a DomainError carrying the same code, so the
// exported sentinels below work with errors.Is regardless of message or cause.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a key/value pair that the HTTP layer reports as details.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

var (
	ErrDuplicateUser      = NewError(CodeDuplicateUser, "User already exists!", nil)
	ErrInvalidCredentials = NewError(CodeInvalidCredentials, "Invalid credentials!", nil)
	ErrUnauthorized       = NewError(CodeUnauthorized, "Please login first.", nil)
	ErrInvalidSubmission  = NewError(CodeInvalidSubmission, "Invalid submission", nil)
	ErrNotFound           = NewError(CodeNotFound, "Resource not found", nil)
	ErrDuplicateQuestion  = NewError(CodeDuplicateQuestion, "Question already exists", nil)
)

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewUnauthorizedError(message string, cause error) *DomainError {
	return NewError(CodeUnauthorized, message, cause)
}

func NewInvalidSubmissionError(message string) *DomainError {
	return NewError(CodeInvalidSubmission, message, nil)
}

// ValidationError describes one invalid request field.
type ValidationError struct {
	Field   string    `json:"field"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors collects every field failure of a single request.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeMissingField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeInvalidFormat,
		Message: fmt.Sprintf("%s has an invalid format: %v", field, value),
	}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("%s must be between %d and %d, got %v", field, min, max, value),
	}
}

func NewInvalidValueError(field, message string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeValidation,
		Message: message,
	}
}
