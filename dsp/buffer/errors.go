package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrFull is returned by Linear.Push once the buffer holds
	// capacity samples.
	ErrFull = errors.New("buffer: full")
	// ErrOutOfRange is returned for reads outside the current logical
	// length.
	ErrOutOfRange = errors.New("buffer: index out of range")
)

func validateCapacity(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("buffer: capacity must be > 0: %d", capacity)
	}
	return nil
}
