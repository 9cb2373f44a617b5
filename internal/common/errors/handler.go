package errors

import (
	stderrors "errors"
	"time"
)

// Normalize ensures we always have a StandardError.
func Normalize(err error) *StandardError {
	if err == nil {
		return nil
	}
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// UserMessage returns display text for err. An error that carries no text
// falls back to UnknownErrorMessage.
func UserMessage(err error) string {
	stdErr := Normalize(err)
	if stdErr == nil || stdErr.Message == "" {
		return UnknownErrorMessage
	}
	return stdErr.Message
}
