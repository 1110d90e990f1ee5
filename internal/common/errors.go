// Package common provides shared utilities used across all features
package common

import (
	"fmt"
	"net/http"
)

// HttpError is an error with the HTTP status and machine-readable code it
// should be reported with. Cause, when set, is reachable through errors.Is.
type HttpError struct {
	StatusCode int
	Code       string
	Message    string
	Cause      error
}

func (e *HttpError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%d %s: %s: %v", e.StatusCode, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
}

func (e *HttpError) Unwrap() error {
	return e.Cause
}

// WithCause attaches the underlying error.
func (e *HttpError) WithCause(err error) *HttpError {
	e.Cause = err
	return e
}

func messageOrDefault(msg string, defaultMsg string) string {
	if msg != "" {
		return msg
	}
	return defaultMsg
}

// HTTP Error constructors

func HTTPErrorBadRequest(msg string) *HttpError {
	return &HttpError{
		StatusCode: http.StatusBadRequest,
		Code:       "BAD_REQUEST",
		Message:    messageOrDefault(msg, "Bad request"),
	}
}

func HTTPErrorNotFound(msg string) *HttpError {
	return &HttpError{
		StatusCode: http.StatusNotFound,
		Code:       "NOT_FOUND",
		Message:    messageOrDefault(msg, "Not found"),
	}
}

func HTTPErrorInternalError(msg string) *HttpError {
	return &HttpError{
		StatusCode: http.StatusInternalServerError,
		Code:       "INTERNAL_SERVER_ERROR",
		Message:    messageOrDefault(msg, "Internal server error"),
	}
}

func HTTPErrorTooManyRequests(msg string) *HttpError {
	return &HttpError{
		StatusCode: http.StatusTooManyRequests,
		Code:       "RATE_LIMITED",
		Message:    messageOrDefault(msg, "Rate limit exceeded"),
	}
}
