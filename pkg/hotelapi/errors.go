package hotelapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// Fixed messages surfaced through the Result envelope.
const (
	msgNoServerMessage = "No error message provided"
	msgNoResponse      = "No response received from server. Please try again later"
	msgRefreshFailed   = "Failed to refresh JWT. Please log in again."
	msgNotLoggedIn     = "Not authenticated. Please log in."
)

// HTTPError carries a non-2xx response through the normalization path.
// Message holds the server-supplied error body text when one was present.
type HTTPError struct {
	StatusCode int
	StatusText string
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d %s: %s", e.StatusCode, e.StatusText, e.Message)
	}
	return fmt.Sprintf("HTTP %d %s", e.StatusCode, e.StatusText)
}

// newHTTPError builds an HTTPError from a response status and the parsed
// server error body.
func newHTTPError(statusCode int, serverMessage string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		StatusText: http.StatusText(statusCode),
		Message:    serverMessage,
	}
}

// normalizeError converts any failure from a network call into a failure
// envelope with exactly one human-readable message:
//
//  1. a structured server response: the server message (or a fixed
//     placeholder) plus the status code and text
//  2. the request was sent but no response arrived: a fixed retry-later
//     message
//  3. anything else: the raw error text
//
// It never panics and always returns a value.
func normalizeError[T any](err error) Result[T] {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		msg := httpErr.Message
		if msg == "" {
			msg = msgNoServerMessage
		}
		return failResult[T](fmt.Sprintf("%s - %d %s", msg, httpErr.StatusCode, httpErr.StatusText))
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return failResult[T](msgNoResponse)
	}

	return failResult[T](err.Error())
}
