package resample

import "errors"

var (
	// ErrInvalidFactor indicates a conversion factor below 1.
	ErrInvalidFactor = errors.New("resample: factor must be >= 1")

	// ErrShortOutput indicates the destination cannot hold the samples
	// the input block would produce.
	ErrShortOutput = errors.New("resample: output buffer too short")
)
