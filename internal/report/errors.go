package report

import "errors"

// Report output errors.
var (
	// ErrOutput is returned when a report destination cannot be opened or
	// written. Callers can classify output failures with errors.Is() while
	// the wrapped error still carries the path and the underlying cause.
	ErrOutput = errors.New("report output failed")
)
