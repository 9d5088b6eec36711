// Package repository holds what every storage implementation shares: the
// sentinel errors the application layer maps to client-facing errors.
package repository

import "errors"

var (
	// ErrNotFound is returned by Update and Delete when the record is missing.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicate is returned when a unique field collides.
	ErrDuplicate = errors.New("repository: duplicate key")
)
