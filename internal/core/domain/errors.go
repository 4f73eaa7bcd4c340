package domain

import (
	"errors"
	"time"
)

var ErrInvalidInput = errors.New("email and password are required")
var ErrWeakPassword = errors.New("password must be at least 8 characters long")
var ErrEmailTaken = errors.New("user with this email already exists")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrUserNotFound = errors.New("user not found")
var ErrTooManyAttempts = errors.New("too many failed login attempts")

// ThrottledError wraps ErrTooManyAttempts with the wait hint surfaced in
// the Retry-After header.
type ThrottledError struct {
	RetryAfter time.Duration
}

func (e *ThrottledError) Error() string { return ErrTooManyAttempts.Error() }

func (e *ThrottledError) Unwrap() error { return ErrTooManyAttempts }
