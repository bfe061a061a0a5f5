// Package common defines shared constants and sentinel errors used across
// the Focusboard server layers. Callers match these values with errors.Is;
// repositories and services wrap them with context where useful.
package common

import "errors"

var (
	// Repository-level errors. ErrorNotFound deliberately covers both
	// "no such row" and "row owned by another user": the two conditions
	// must stay indistinguishable all the way to the wire.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")
	ErrorConflict     = errors.New("already exists")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
