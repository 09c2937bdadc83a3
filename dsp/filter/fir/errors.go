package fir

import "errors"

var (
	// ErrNoCoefficients is returned when a filter is constructed from
	// an empty coefficient set.
	ErrNoCoefficients = errors.New("fir: coefficient set must not be empty")
	// ErrCoefficientLength is returned by SetCoefficients when the new
	// set does not match the tap count the filter was built with.
	ErrCoefficientLength = errors.New("fir: coefficient length mismatch")
)
