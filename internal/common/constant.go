// Package common contains small helpers and constants shared by the
// medreminder packages.
package common

const (
	// AuthorizationHeaderName carries the bearer credential.
	AuthorizationHeaderName = "Authorization"
	// RequestIDHeaderName carries a per-request correlation ID.
	RequestIDHeaderName = "X-Request-ID"
)
