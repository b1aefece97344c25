package domain

import "errors"

var (
	// ErrNotFound reports that the upstream has no data for the requested identity.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput reports a malformed request identity (bad id, date or season).
	ErrInvalidInput = errors.New("invalid input")
)
