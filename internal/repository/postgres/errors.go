// Package postgres holds the sentinel errors shared by the repositories.
package postgres

import "github.com/pkg/errors"

var (
	// ErrNotFound is returned when the requested row does not exist or is
	// no longer active.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned on invariant violations: a duplicate
	// day record, a repeated check-in or a repeated check-out.
	ErrAlreadyExists = errors.New("record already exists")
)
