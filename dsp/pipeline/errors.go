package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrSealed indicates an attempt to add a stage after Seal.
	ErrSealed = errors.New("pipeline: sealed")

	// ErrFull indicates the pipeline has reached its stage capacity.
	ErrFull = errors.New("pipeline: stage capacity reached")

	// ErrNotSealed indicates processing was attempted before Seal.
	ErrNotSealed = errors.New("pipeline: not sealed")

	// ErrInvalidCapacity indicates a stage capacity below 1.
	ErrInvalidCapacity = errors.New("pipeline: capacity must be >= 1")
)

// StageError wraps a failure from one stage with its position in the
// chain.
type StageError struct {
	Stage int
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline: stage %d: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
