package common

import (
	"errors"
	"net/http"
	"testing"
)

func TestHTTPErrorConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     *HttpError
		status  int
		code    string
		message string
	}{
		{name: "bad request default", err: HTTPErrorBadRequest(""), status: http.StatusBadRequest, code: "BAD_REQUEST", message: "Bad request"},
		{name: "bad request custom", err: HTTPErrorBadRequest("amount is empty"), status: http.StatusBadRequest, code: "BAD_REQUEST", message: "amount is empty"},
		{name: "not found", err: HTTPErrorNotFound(""), status: http.StatusNotFound, code: "NOT_FOUND", message: "Not found"},
		{name: "internal", err: HTTPErrorInternalError(""), status: http.StatusInternalServerError, code: "INTERNAL_SERVER_ERROR", message: "Internal server error"},
		{name: "rate limited", err: HTTPErrorTooManyRequests(""), status: http.StatusTooManyRequests, code: "RATE_LIMITED", message: "Rate limit exceeded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.StatusCode != tt.status || tt.err.Code != tt.code || tt.err.Message != tt.message {
				t.Errorf("got %+v", *tt.err)
			}
			if tt.err.Error() == "" {
				t.Errorf("empty Error()")
			}
		})
	}
}

func TestHttpErrorCause(t *testing.T) {
	cause := errors.New("amount exceeds 256 bits")
	err := HTTPErrorBadRequest(cause.Error()).WithCause(cause)

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is lost the cause")
	}
	if HTTPErrorBadRequest("").Unwrap() != nil {
		t.Errorf("expected nil cause")
	}
}
