package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// StatusNetwork marks a failure where no HTTP response was received.
	StatusNetwork = 0

	networkFailedMessage    = "Network request failed. Check connectivity and try again."
	requestCancelledMessage = "Request was cancelled."
	unexpectedErrorMessage  = "Unexpected API error occurred."
	unreadableBodyMessage   = "Response body could not be parsed."
)

// APIError is the single error kind of the request layer.
type APIError struct {
	Status  int
	Message string
	// Err is the underlying cause, if any (transport error, ctx error).
	Err error
}

func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// StatusOf returns the status of err if it is (or wraps) an *APIError.
func StatusOf(err error) (int, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status, true
	}
	return 0, false
}

func hasStatus(err error, status int) bool {
	s, ok := StatusOf(err)
	return ok && s == status
}

func IsUnauthorized(err error) bool { return hasStatus(err, http.StatusUnauthorized) }
func IsNotFound(err error) bool     { return hasStatus(err, http.StatusNotFound) }
func IsNetwork(err error) bool      { return hasStatus(err, StatusNetwork) }

var fallbackMessages = map[int]string{
	http.StatusUnauthorized:        "Unauthorized request. Please login again.",
	http.StatusForbidden:           "Forbidden request.",
	http.StatusNotFound:            "Requested resource not found.",
	http.StatusInternalServerError: "Server error. Please try again later.",
}

// errorMessage prefers a non-blank string "message" from the payload and
// falls back to a fixed text per status.
func errorMessage(status int, payload any) string {
	if obj, ok := payload.(map[string]any); ok {
		if msg, ok := obj["message"].(string); ok && !isBlank(msg) {
			return msg
		}
	}
	if msg, ok := fallbackMessages[status]; ok {
		return msg
	}
	return unexpectedErrorMessage
}
