// Package errors provides the standardized error taxonomy for membership submissions.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeRequestBuildFailed  ErrorCode = "REQUEST_BUILD_FAILED"
	ErrCodeTransportFailed     ErrorCode = "TRANSPORT_FAILED"
	ErrCodeResponseParseFailed ErrorCode = "RESPONSE_PARSE_FAILED"
	ErrCodeServerRejected      ErrorCode = "SERVER_REJECTED"

	ErrCodeInvalidPayload   ErrorCode = "INVALID_PAYLOAD"
	ErrCodeMissingField     ErrorCode = "MISSING_REQUIRED_FIELD"
	ErrCodeDuplicateMember  ErrorCode = "DUPLICATE_APPLICATION"
	ErrCodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Fallback texts used when an error carries no usable message.
const (
	DefaultSubmitFailureMessage = "Failed to submit application"
	UnknownErrorMessage         = "An unknown error occurred"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`

	cause error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// WithMetadata attaches a key/value pair and returns the receiver.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// ==========================
// 2. Client-side constructors
// ==========================

// NewRequestBuildFailedError covers marshal and request construction failures.
func NewRequestBuildFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequestBuildFailed,
		Message:   messageOf(err),
		Details:   "could not build membership request",
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewTransportFailedError wraps a network-level failure. Message is the
// underlying error text so callers can surface it verbatim.
func NewTransportFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTransportFailed,
		Message:   messageOf(err),
		Details:   "membership API unreachable",
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewResponseParseFailedError wraps a read or JSON decode failure of the response body.
func NewResponseParseFailedError(statusCode int, err error) *StandardError {
	return (&StandardError{
		Code:      ErrCodeResponseParseFailed,
		Message:   messageOf(err),
		Details:   "membership API returned a non-JSON body",
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}).WithMetadata("statusCode", statusCode)
}

// NewServerRejectedError is a non-2xx answer. serverMessage is used verbatim
// when present, otherwise the generic submit failure text.
func NewServerRejectedError(statusCode int, serverMessage string) *StandardError {
	msg := serverMessage
	if msg == "" {
		msg = DefaultSubmitFailureMessage
	}
	return (&StandardError{
		Code:      ErrCodeServerRejected,
		Message:   msg,
		Details:   fmt.Sprintf("status %d", statusCode),
		Retryable: statusCode >= 500,
		Timestamp: time.Now().UTC(),
	}).WithMetadata("statusCode", statusCode)
}

// ==========================
// 3. Stub API constructors
// ==========================

func NewInvalidPayloadError(message string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidPayload,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewMissingFieldError(field string) *StandardError {
	return (&StandardError{
		Code:      ErrCodeMissingField,
		Message:   fmt.Sprintf("Missing required field: %s", field),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}).WithMetadata("field", field)
}

func NewDuplicateMemberError(email string) *StandardError {
	return (&StandardError{
		Code:      ErrCodeDuplicateMember,
		Message:   "An application for this email already exists",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}).WithMetadata("email", email)
}

func NewStoreUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreUnavailable,
		Message:   "Internal server error while storing member data",
		Details:   messageOf(err),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// ==========================
// 4. Utility Functions
// ==========================

// IsCode reports whether err, or anything it wraps, is a StandardError with code.
func IsCode(err error, code ErrorCode) bool {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Code == code
	}
	return false
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeTransportFailed, ErrCodeResponseParseFailed, ErrCodeRequestBuildFailed:
		return "TRANSPORT"
	case ErrCodeServerRejected:
		return "SERVER"
	case ErrCodeInvalidPayload, ErrCodeMissingField, ErrCodeDuplicateMember:
		return "VALIDATION"
	case ErrCodeStoreUnavailable:
		return "STORAGE"
	default:
		return "UNKNOWN"
	}
}

func messageOf(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
