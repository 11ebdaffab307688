// Package repository defines the MySQL-backed stores and the sentinel
// errors shared between them. Handlers translate these into HTTP codes.
package repository

import "errors"

// ErrUserNotFound is returned when no user record matches an external
// identity. Handlers answer it with a "complete profile" response.
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidMatch is returned for an empty or malformed match id.
var ErrInvalidMatch = errors.New("invalid match id")
