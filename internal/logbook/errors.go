package logbook

import "errors"

// Domain-specific errors for the logbook package.
var (
	ErrUnknownKind  = errors.New("unknown entry kind")
	ErrInvalidRange = errors.New("invalid date range")
)
