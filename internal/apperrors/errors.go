package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the resource is in a state that does not allow the operation,
// e.g. reassigning items on a receipt that was already finalized.
var ErrConflict = errors.New("resource state conflict")

// ValidationCode identifies the reason an input was rejected.
type ValidationCode string

const (
	CodeInvalidAmount        ValidationCode = "invalid_amount"
	CodeMissingRequiredField ValidationCode = "missing_required_field"
	CodeSumMismatch          ValidationCode = "sum_mismatch"
	CodeNoParticipants       ValidationCode = "no_participants_selected"
	CodeInvalidTotal         ValidationCode = "invalid_total"
	CodeInvalidFrequency     ValidationCode = "invalid_frequency"
	CodeInvalidDueDay        ValidationCode = "invalid_due_day"
	CodeInvalidDate          ValidationCode = "invalid_date"
	CodeInvalidToken         ValidationCode = "invalid_pagination_token"
	CodeInvalidRequest       ValidationCode = "invalid_request"
)

// ValidationError carries a machine readable code alongside the message.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Code    ValidationCode
	Field   string
	Message string
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(code ValidationCode, field, message string) *ValidationError {
	return &ValidationError{Code: code, Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Field)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// AsValidationError extracts a ValidationError from an error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

// NewDuplicateError wraps ErrDuplicate with a description of the clashing resource.
func NewDuplicateError(what string) error {
	return fmt.Errorf("%s: %w", what, ErrDuplicate)
}

// NewConflictError wraps ErrConflict with a description of the blocked operation.
func NewConflictError(what string) error {
	return fmt.Errorf("%s: %w", what, ErrConflict)
}
