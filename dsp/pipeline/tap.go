package pipeline

import (
	"github.com/cwbudde/algo-dspkit/dsp/buffer"
	"github.com/cwbudde/algo-dspkit/dsp/core"
)

// Tap is a pass-through stage that copies every sample into a
// fixed-capacity sink. Once the sink is full the tap fails, which
// surfaces as a StageError from the owning pipeline.
type Tap[S core.Value] struct {
	sink *buffer.Linear[S]
}

// NewTap creates a tap writing into sink.
func NewTap[S core.Value](sink *buffer.Linear[S]) *Tap[S] {
	return &Tap[S]{sink: sink}
}

// ProcessSample records x and passes it through unchanged.
func (t *Tap[S]) ProcessSample(x S) (S, error) {
	if err := t.sink.Push(x); err != nil {
		return x, err
	}

	return x, nil
}

// Reset clears the sink.
func (t *Tap[S]) Reset() {
	t.sink.Clear()
}

// Sink returns the capture buffer.
func (t *Tap[S]) Sink() *buffer.Linear[S] {
	return t.sink
}
