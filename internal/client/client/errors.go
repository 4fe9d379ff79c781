package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotAuthenticated is returned without any network call when no
	// credential is stored.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrUnauthorized means the backend refused the credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnavailable means the backend could not be reached.
	ErrUnavailable = errors.New("server unavailable")
)

// RejectedError is a non-success HTTP status returned by the backend.
// Reason holds the human-readable "msg" of the response body, if any.
type RejectedError struct {
	Status int
	Reason string
}

func (e *RejectedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("request rejected: status=%d", e.Status)
	}
	return fmt.Sprintf("request rejected: status=%d: %s", e.Status, e.Reason)
}

// Unwrap lets errors.Is match ErrUnauthorized and ErrUnavailable by status.
func (e *RejectedError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrUnavailable
	default:
		return nil
	}
}

// Reason extracts the backend-supplied reason from err, if any.
func Reason(err error) string {
	var re *RejectedError
	if errors.As(err, &re) {
		return re.Reason
	}
	return ""
}
