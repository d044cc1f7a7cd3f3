package store

import "errors"

// Sentinel errors returned by entity operations. Services translate these to
// domain errors; handlers never see them directly.
var (
	// ErrNotFound is returned when the requested key does not exist.
	ErrNotFound = errors.New("record not found")
)
