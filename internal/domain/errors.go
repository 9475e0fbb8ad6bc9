package domain

import "errors"

var (
	// auth errors
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnauthorized       = errors.New("unauthorized")

	// lookup errors
	ErrUserNotFound = errors.New("user not found")

	// ErrTaskNotFound deliberately covers both "does not exist" and
	// "belongs to another user" so existence never leaks to non-owners.
	ErrTaskNotFound = errors.New("task not found or access denied")
)
