package buffer

import "github.com/cwbudde/algo-dspkit/dsp/core"

// Ring is a fixed-capacity circular buffer. Writes never fail: once the
// buffer is full the oldest sample is overwritten. The logical length
// grows from 0 to capacity and then stays there.
//
// A Ring is single-writer; concurrent use from multiple goroutines or
// interrupt levels must be serialized by the host.
type Ring[S core.Value] struct {
	data []S
	head int // next write position
	size int // logical length, always <= len(data)
}

// NewRing returns an empty ring buffer with the given fixed capacity.
func NewRing[S core.Value](capacity int) (*Ring[S], error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	return &Ring[S]{data: make([]S, capacity)}, nil
}

// PushOverwrite appends a sample, overwriting the oldest one once the
// buffer is full.
func (r *Ring[S]) PushOverwrite(v S) {
	r.data[r.head] = v
	r.head++
	if r.head >= len(r.data) {
		r.head = 0
	}
	if r.size < len(r.data) {
		r.size++
	}
}

// At returns the sample at logical index i, where index 0 is the oldest
// retained sample.
func (r *Ring[S]) At(i int) (S, error) {
	if i < 0 || i >= r.size {
		var zero S
		return zero, ErrOutOfRange
	}
	pos := r.head - r.size + i
	if pos < 0 {
		pos += len(r.data)
	}
	return r.data[pos], nil
}

// Newest returns the sample written delay pushes ago; Newest(0) is the
// most recent sample.
func (r *Ring[S]) Newest(delay int) (S, error) {
	return r.At(r.size - 1 - delay)
}

// Len returns the current logical length.
func (r *Ring[S]) Len() int { return r.size }

// Cap returns the fixed capacity.
func (r *Ring[S]) Cap() int { return len(r.data) }

// Clear resets the logical length and cursor without releasing storage.
func (r *Ring[S]) Clear() {
	core.Zero(r.data)
	r.head = 0
	r.size = 0
}
