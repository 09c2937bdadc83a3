package gain

import "errors"

var (
	// ErrNoInputs indicates a mixer was requested with fewer than one input.
	ErrNoInputs = errors.New("gain: mixer needs at least one input")

	// ErrInputCount indicates the number of sources does not match the
	// mixer's configured input count.
	ErrInputCount = errors.New("gain: source count mismatch")

	// ErrLengthMismatch indicates source and destination blocks differ
	// in length.
	ErrLengthMismatch = errors.New("gain: block length mismatch")

	// ErrInputRange indicates an input index outside the configured range.
	ErrInputRange = errors.New("gain: input index out of range")
)
