// Package common defines shared constants and sentinel errors used across
// client and server layers of gophauth. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound     = errors.New("not found")
	ErrDuplicateEmail = errors.New("duplicate email")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrInvalidInput = errors.New("invalid input")

	// Registration errors.
	ErrWeakPassword = errors.New("password must be at least 6 characters long")
	ErrEmailTaken   = errors.New("user with this email already exists")

	// Login errors.
	ErrUnknownEmail  = errors.New("email is not registered")
	ErrAccountLocked = errors.New("account has been locked due to multiple failed login attempts")
	ErrWrongPassword = errors.New("wrong password")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
