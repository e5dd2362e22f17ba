package demod

import "errors"

// Common errors returned by the demodulator.
var (
	// ErrInvalidConfig indicates a missing or out-of-range configuration value.
	ErrInvalidConfig = errors.New("invalid demodulator configuration")

	// ErrUnknownEncoding indicates a sample encoding name or value that is not supported.
	ErrUnknownEncoding = errors.New("unknown sample encoding")
)
