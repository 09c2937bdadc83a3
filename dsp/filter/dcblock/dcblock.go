// Package dcblock provides a one-pole DC blocking filter for removing
// slowly drifting offsets from sensor or audio streams.
package dcblock

import (
	"fmt"

	"github.com/cwbudde/algo-dspkit/dsp/core"
)

// Filter implements the classic DC blocker:
//
//	y[n] = x[n] - x[n-1] + g * y[n-1]
//
// with g derived from the sample rate as 1 - 10/sampleRate, placing the
// cutoff a few hertz above DC.
type Filter struct {
	gain       float64
	lastInput  float64
	lastOutput float64
}

// New creates a DC blocker configured for the sample rate in opts
// (default 48 kHz).
func New(opts ...core.ProcessorOption) *Filter {
	cfg := core.ApplyProcessorOptions(opts...)
	return &Filter{gain: gainFor(cfg.SampleRate)}
}

// ProcessSample filters one input sample.
func (f *Filter) ProcessSample(x float64) float64 {
	y := x - f.lastInput + f.gain*f.lastOutput
	f.lastInput = x
	f.lastOutput = core.FlushDenormals(y)

	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Reset clears the filter state.
func (f *Filter) Reset() {
	f.lastInput = 0
	f.lastOutput = 0
}

// SetSampleRate rebinds the pole position to a new sample rate without
// clearing state.
func (f *Filter) SetSampleRate(sampleRate float64) error {
	if sampleRate <= 0 {
		return fmt.Errorf("dcblock: sample rate must be > 0: %f", sampleRate)
	}
	f.gain = gainFor(sampleRate)
	return nil
}

// Gain returns the current feedback gain.
func (f *Filter) Gain() float64 {
	return f.gain
}

func gainFor(sampleRate float64) float64 {
	return 1 - 10/sampleRate
}
