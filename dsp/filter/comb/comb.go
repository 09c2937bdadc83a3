// Package comb provides a feedback comb filter with a wet/dry mix, the
// building block of Schroeder-style reverberators.
package comb

import (
	"fmt"

	"github.com/cwbudde/algo-dspkit/dsp/delay"
)

// Filter is a feedback comb filter:
//
//	wet[n] = x[n] + feedback * wet[n-D]
//	y[n]   = mix * wet[n] + (1-mix) * x[n]
//
// where D is the delay length in samples.
type Filter struct {
	line     *delay.Line
	feedback float64
	mix      float64
}

// New creates a comb filter with delay length size (samples), feedback
// and wet mix both in [0, 1].
func New(size int, feedback, mix float64) (*Filter, error) {
	line, err := delay.New(size)
	if err != nil {
		return nil, err
	}

	if err := validateUnit("feedback", feedback); err != nil {
		return nil, err
	}

	if err := validateUnit("mix", mix); err != nil {
		return nil, err
	}

	return &Filter{line: line, feedback: feedback, mix: mix}, nil
}

// ProcessSample filters one input sample.
func (f *Filter) ProcessSample(x float64) float64 {
	delayed := f.line.Read(f.line.Len())
	wet := x + delayed*f.feedback
	f.line.Write(wet)

	return wet*f.mix + (1-f.mix)*x
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Reset clears the delay line.
func (f *Filter) Reset() {
	f.line.Reset()
}

// SetFeedback updates the feedback coefficient.
func (f *Filter) SetFeedback(feedback float64) error {
	if err := validateUnit("feedback", feedback); err != nil {
		return err
	}
	f.feedback = feedback
	return nil
}

// SetMix updates the wet mix.
func (f *Filter) SetMix(mix float64) error {
	if err := validateUnit("mix", mix); err != nil {
		return err
	}
	f.mix = mix
	return nil
}

// DelayLen returns the delay length in samples.
func (f *Filter) DelayLen() int {
	return f.line.Len()
}

func validateUnit(name string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("comb: %s must be in [0,1]: %f", name, v)
	}
	return nil
}
