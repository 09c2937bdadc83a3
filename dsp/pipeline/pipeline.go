package pipeline

import (
	"github.com/cwbudde/algo-dspkit/dsp/core"
)

// SampleProcessor is the contract concrete components satisfy: one
// sample in, one sample out, no failure modes.
type SampleProcessor[S core.Value] interface {
	ProcessSample(S) S
	Reset()
}

// Stage is one link of a pipeline. Stages that cannot fail are usually
// lifted from a SampleProcessor.
type Stage[S core.Value] interface {
	ProcessSample(S) (S, error)
	Reset()
}

// Pipeline runs samples through a fixed sequence of stages. The stage
// list has a fixed capacity chosen at construction; once Seal is
// called the topology cannot change.
type Pipeline[S core.Value] struct {
	stages []Stage[S]
	sealed bool
}

// New creates a pipeline that can hold up to capacity stages.
func New[S core.Value](capacity int) (*Pipeline[S], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	return &Pipeline[S]{stages: make([]Stage[S], 0, capacity)}, nil
}

// Push appends a stage. It fails once the pipeline is sealed or the
// capacity is reached.
func (p *Pipeline[S]) Push(s Stage[S]) error {
	if p.sealed {
		return ErrSealed
	}

	if len(p.stages) == cap(p.stages) {
		return ErrFull
	}

	p.stages = append(p.stages, s)

	return nil
}

// Seal freezes the topology. Processing is only allowed on a sealed
// pipeline.
func (p *Pipeline[S]) Seal() {
	p.sealed = true
}

// Sealed reports whether the topology is frozen.
func (p *Pipeline[S]) Sealed() bool {
	return p.sealed
}

// Len returns the number of stages.
func (p *Pipeline[S]) Len() int {
	return len(p.stages)
}

// Cap returns the stage capacity.
func (p *Pipeline[S]) Cap() int {
	return cap(p.stages)
}

// ProcessSample runs one sample through every stage in order. A stage
// failure aborts the chain and is returned as a StageError carrying the
// stage index; the sample value accumulated so far is returned with it.
func (p *Pipeline[S]) ProcessSample(x S) (S, error) {
	if !p.sealed {
		return x, ErrNotSealed
	}

	for i, s := range p.stages {
		y, err := s.ProcessSample(x)
		if err != nil {
			return x, &StageError{Stage: i, Err: err}
		}
		x = y
	}

	return x, nil
}

// ProcessBlock runs a block through the chain in-place. On a stage
// failure the samples before the failing one hold processed values,
// the rest keep their input values.
func (p *Pipeline[S]) ProcessBlock(buf []S) error {
	if !p.sealed {
		return ErrNotSealed
	}

	for i, x := range buf {
		y, err := p.ProcessSample(x)
		if err != nil {
			return err
		}
		buf[i] = y
	}

	return nil
}

// Reset resets every stage. The topology and seal state are kept.
func (p *Pipeline[S]) Reset() {
	for _, s := range p.stages {
		s.Reset()
	}
}

// Lift adapts an infallible component to the Stage interface.
func Lift[S core.Value](proc SampleProcessor[S]) Stage[S] {
	return lifted[S]{proc}
}

type lifted[S core.Value] struct {
	proc SampleProcessor[S]
}

func (l lifted[S]) ProcessSample(x S) (S, error) {
	return l.proc.ProcessSample(x), nil
}

func (l lifted[S]) Reset() {
	l.proc.Reset()
}
