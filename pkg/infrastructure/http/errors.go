// Package httputil provides HTTP response and error mapping utilities.
package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/auth"
	"github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/domain/workout"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError pairs a status code with the client-facing message.
type HTTPError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (status %d): %v", e.Message, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// Client-facing messages.
const (
	MsgMissingAPIKey = "Missing API key"
	MsgInvalidAPIKey = "Invalid API key"
	MsgServerConfig  = "Server config error"
	MsgMissingFields = "Missing required fields"
	MsgDuplicate     = "Duplicate workout entry"
	MsgNotFound      = "Workout not found"
	MsgForbidden     = "Unauthorized"
	MsgInvalidBody   = "Invalid request body"
	MsgInvalidQuery  = "Invalid query parameters"
	MsgInternal      = "Internal server error"
)

// Classify maps err onto the error taxonomy. Unknown errors become a 500.
func Classify(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status, msg := http.StatusInternalServerError, MsgInternal
	switch {
	case errors.Is(err, auth.ErrMissingCredential):
		status, msg = http.StatusUnauthorized, MsgMissingAPIKey
	case errors.Is(err, auth.ErrInvalidCredential):
		status, msg = http.StatusUnauthorized, MsgInvalidAPIKey
	case errors.Is(err, auth.ErrConfiguration):
		status, msg = http.StatusInternalServerError, MsgServerConfig
	case errors.Is(err, workout.ErrValidation):
		status, msg = http.StatusBadRequest, MsgMissingFields
	case errors.Is(err, workout.ErrDuplicate):
		status, msg = http.StatusBadRequest, MsgDuplicate
	case errors.Is(err, workout.ErrNotFound):
		status, msg = http.StatusNotFound, MsgNotFound
	case errors.Is(err, workout.ErrForbidden):
		status, msg = http.StatusForbidden, MsgForbidden
	}
	return &HTTPError{StatusCode: status, Message: msg, Err: err}
}

// BadRequest wraps err as a 400 with msg.
func BadRequest(msg string, err error) *HTTPError {
	return &HTTPError{StatusCode: http.StatusBadRequest, Message: msg, Err: err}
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// WriteError writes {"error": msg} with the given status.
func WriteError(w http.ResponseWriter, status int, msg string) error {
	return WriteJSON(w, status, ErrorResponse{Error: msg})
}
