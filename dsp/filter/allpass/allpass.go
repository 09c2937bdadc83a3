// Package allpass provides a Schroeder allpass filter: flat magnitude
// response, frequency-dependent phase, used for diffusion stages.
package allpass

import (
	"fmt"

	"github.com/cwbudde/algo-dspkit/dsp/delay"
)

// Filter is a Schroeder allpass section over a fixed delay:
//
//	v[n] = x[n] + g * v[n-D]
//	y[n] = v[n-D] - g * v[n]
type Filter struct {
	line     *delay.Line
	feedback float64
}

// New creates an allpass filter with delay length size (samples) and
// feedback coefficient in [0, 1).
func New(size int, feedback float64) (*Filter, error) {
	line, err := delay.New(size)
	if err != nil {
		return nil, err
	}

	if feedback < 0 || feedback >= 1 {
		return nil, fmt.Errorf("allpass: feedback must be in [0,1): %f", feedback)
	}

	return &Filter{line: line, feedback: feedback}, nil
}

// ProcessSample filters one input sample.
func (f *Filter) ProcessSample(x float64) float64 {
	delayed := f.line.Read(f.line.Len())
	v := x + delayed*f.feedback
	f.line.Write(v)

	return delayed - v*f.feedback
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
	if feedback < 0 || feedback >= 1 {
		return fmt.Errorf("allpass: feedback must be in [0,1): %f", feedback)
	}
	f.feedback = feedback
	return nil
}

// DelayLen returns the delay length in samples.
func (f *Filter) DelayLen() int {
	return f.line.Len()
}
