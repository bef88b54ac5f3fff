// Package errors provides application-level error types for the console.
// It defines the client-side validation errors raised before a request is
// issued, and the single request-failed error covering every network outcome.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation    ErrorType = "validation_error"
	ErrorTypeRequestFailed ErrorType = "request_failed"
)

// Reason narrows a validation error down to the input that caused it.
type Reason string

const (
	ReasonMissingTemplate      Reason = "missing_template"
	ReasonEmptyRecipients      Reason = "empty_recipients"
	ReasonInvalidVariablesJSON Reason = "invalid_variables_json"
	ReasonInvalidDraft         Reason = "invalid_draft"
	ReasonSubmitInFlight       Reason = "submit_in_flight"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Reason  Reason    `json:"reason,omitempty"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	Err     error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	switch {
	case e.Details != "":
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new validation error
func NewValidationError(reason Reason, message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeValidation,
		Reason:  reason,
		Message: message,
		Details: detail,
	}
}

// NewRequestFailedError creates a new request-failed error wrapping the
// transport or HTTP-status cause.
func NewRequestFailedError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeRequestFailed,
		Message: message,
		Err:     err,
	}
}

// IsValidation reports whether err is a client-side validation error.
func IsValidation(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeValidation
}

// IsRequestFailed reports whether err is a request-failed error.
func IsRequestFailed(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeRequestFailed
}

// HasReason reports whether err is a validation error with the given reason.
func HasReason(err error, reason Reason) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Reason == reason
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
