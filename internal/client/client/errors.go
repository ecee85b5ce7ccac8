package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrNotFound    = errors.New("contact not found")
	ErrRejected    = errors.New("payload rejected")
	ErrMalformed   = errors.New("malformed response")
)

// TransportError describes a failed call to the remote service. Err is one
// of the sentinels above or the underlying network error, so callers can use
// errors.Is(err, ErrNotFound) and friends.
type TransportError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("%s: %s (status %d): %s", e.Op, e.Err, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Err, e.StatusCode)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
