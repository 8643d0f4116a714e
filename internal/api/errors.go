package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is a non-2xx backend response. Detail carries the backend's
// human-readable message when the body had one.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %s (HTTP %d)", e.Detail, e.Status)
	}
	return fmt.Sprintf("api: HTTP %d", e.Status)
}

// IsAuth reports whether the error means the credential is missing,
// invalid, or expired.
func (e *Error) IsAuth() bool {
	return e.Status == http.StatusUnauthorized
}

// newError builds an *Error from a failed response, pulling the detail
// field the backend uses for error messages.
func newError(status int, body []byte) *Error {
	var payload struct {
		Detail string `json:"detail"`
	}
	_ = json.Unmarshal(body, &payload)
	return &Error{Status: status, Detail: payload.Detail}
}
