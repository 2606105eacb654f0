// Package common defines shared constants and sentinel errors used across
// server and client layers of gatekeeper. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal       = errors.New("internal error")
	ErrorUnauthorized   = errors.New("unauthorized")
	ErrConflict         = errors.New("username already exists")
	ErrValidation       = errors.New("validation error")
	ErrStoreUnavailable = errors.New("store unavailable")

	// Authorization gate.
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")

	// Logout input.
	ErrMalformedHeader = errors.New("malformed authorization header")

	// ErrInvalidSession is the umbrella for every token validation failure.
	// Transports report it without saying which check failed.
	ErrInvalidSession = errors.New("invalid session")

	// Token validation failures, each wrapping ErrInvalidSession.
	ErrInvalidToken    = fmt.Errorf("%w: invalid token", ErrInvalidSession)
	ErrTokenExpired    = fmt.Errorf("%w: token expired", ErrInvalidSession)
	ErrTokenRevoked    = fmt.Errorf("%w: token revoked", ErrInvalidSession)
	ErrSubjectMismatch = fmt.Errorf("%w: subject mismatch", ErrInvalidSession)
)
