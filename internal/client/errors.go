package client

import (
	"errors"
	"fmt"
)

// ErrInvalidBaseURL is returned by New for an unusable API URL.
var ErrInvalidBaseURL = errors.New("invalid API base URL")

// NetworkError reports a request that could not be completed, or that the
// server answered with a non-success status while loading session data.
type NetworkError struct {
	Op     string
	URL    string
	Status int // 0 when no response was received
	Err    error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s %s: unexpected status %d: %v", e.Op, e.URL, e.Status, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RemoteError is a non-success response carrying the server's message.
type RemoteError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.Status)
	}
	return e.Message
}
