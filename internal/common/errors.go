// Package common defines shared constants and sentinel errors used across
// client and server layers of the weekly journal. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal      = errors.New("internal error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrInvalidArgument = errors.New("invalid argument")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// Envelope errors. A wrong passphrase and a corrupted blob must stay
	// distinguishable so the user can be told which one happened.
	ErrInvalidPassphrase  = errors.New("invalid passphrase")
	ErrMalformedEnvelope  = errors.New("malformed envelope")
	ErrWeakPassphrase     = errors.New("passphrase must be at least 8 characters long")
	ErrPassphraseMismatch = errors.New("passphrases do not match")

	// Week/lock errors.
	ErrWeekLocked       = errors.New("week is locked")
	ErrUnknownTimezone  = errors.New("unknown timezone")
	ErrInvalidWeekStart = errors.New("invalid week start date")

	// ErrIncompleteReflection rejects marking a week completed while some
	// answers are still blank.
	ErrIncompleteReflection = errors.New("all questions must be answered to complete the reflection")

	// ErrStorageFailure wraps any error coming from the storage collaborator.
	ErrStorageFailure = errors.New("storage failure")
)
