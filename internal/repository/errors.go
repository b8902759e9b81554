package repository

import "errors"

var (
	// ErrNotFound is returned by lookups when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned by inserts that violate a uniqueness constraint.
	ErrDuplicate = errors.New("already exists")
)
