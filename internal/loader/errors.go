package loader

import "errors"

// Loader errors.
//
// Design decision: We use a package-level sentinel error so callers can
// classify a missing or unreadable input with errors.Is() while the
// wrapped error still carries the path and the underlying cause.
var (
	// ErrNotFound is returned when the input file does not exist or
	// cannot be opened for reading.
	ErrNotFound = errors.New("input file not found or not readable")
)
