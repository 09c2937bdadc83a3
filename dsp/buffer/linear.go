package buffer

import "github.com/cwbudde/algo-dspkit/dsp/core"

// Linear is a fixed-capacity append-only buffer. Capacity is a hard
// ceiling: Push fails with ErrFull once the buffer is full, leaving the
// contents unchanged.
type Linear[S core.Value] struct {
	data []S
	size int
}

// NewLinear returns an empty linear buffer with the given fixed capacity.
func NewLinear[S core.Value](capacity int) (*Linear[S], error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	return &Linear[S]{data: make([]S, capacity)}, nil
}

// Push appends a sample. Once Len() == Cap() it returns ErrFull and the
// buffer is not modified.
func (l *Linear[S]) Push(v S) error {
	if l.size >= len(l.data) {
		return ErrFull
	}
	l.data[l.size] = v
	l.size++
	return nil
}

// At returns the sample at index i within the current logical length.
func (l *Linear[S]) At(i int) (S, error) {
	if i < 0 || i >= l.size {
		var zero S
		return zero, ErrOutOfRange
	}
	return l.data[i], nil
}

// Samples returns a view of the filled portion of the buffer. The view
// is invalidated by Clear; callers must not grow it.
func (l *Linear[S]) Samples() []S {
	return l.data[:l.size]
}

// Len returns the current logical length.
func (l *Linear[S]) Len() int { return l.size }

// Cap returns the fixed capacity.
func (l *Linear[S]) Cap() int { return len(l.data) }

// Clear resets the logical length without releasing storage.
func (l *Linear[S]) Clear() {
	core.Zero(l.data)
	l.size = 0
}
