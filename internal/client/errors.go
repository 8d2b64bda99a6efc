package client

import (
	"errors"
	"fmt"
)

// Generic fallback messages, used when the transport gives no usable detail.
// These mirror what the remote service reports for each operation.
const (
	fallbackList   = "failed to fetch blogs"
	fallbackCreate = "failed to create blog"
	fallbackUpdate = "failed to update blog"
	fallbackDelete = "failed to delete blog"
)

// TransportError is the single error kind for all network and HTTP failures:
// connection failures, non-2xx responses, and malformed response bodies.
// The client does not distinguish finer-grained causes beyond carrying a
// human-readable message; callers decide presentation and retry policy.
type TransportError struct {
	// Op is the failed operation: "list", "create", "update" or "delete".
	Op string

	// StatusCode is the HTTP status code, or 0 if the request never
	// produced a response.
	StatusCode int

	// Message is a human-readable description derived from the response
	// body, falling back to a generic per-operation message.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: HTTP %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As chains.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// AsTransportError extracts a *TransportError from an error chain.
// Returns nil if the chain contains none.
func AsTransportError(err error) *TransportError {
	var te *TransportError
	if errors.As(err, &te) {
		return te
	}
	return nil
}
