package gain

import (
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dspkit/dsp/core"
)

// Mixer sums a fixed number of input streams, each through its own
// linear gain, into a single output. All gains default to 1.
type Mixer[S core.Value, P core.Policy[S]] struct {
	policy  P
	gains   []float64
	scratch []S
}

// NewMixer creates a mixer for numInputs input streams.
func NewMixer[S core.Value, P core.Policy[S]](numInputs int, policy P) (*Mixer[S, P], error) {
	if numInputs < 1 {
		return nil, ErrNoInputs
	}

	gains := make([]float64, numInputs)
	for i := range gains {
		gains[i] = 1
	}

	return &Mixer[S, P]{policy: policy, gains: gains}, nil
}

// NumInputs returns the configured input count.
func (m *Mixer[S, P]) NumInputs() int {
	return len(m.gains)
}

// Gain returns the linear gain for the given input.
func (m *Mixer[S, P]) Gain(input int) (float64, error) {
	if input < 0 || input >= len(m.gains) {
		return 0, ErrInputRange
	}
	return m.gains[input], nil
}

// SetGain updates the linear gain for the given input.
func (m *Mixer[S, P]) SetGain(input int, factor float64) error {
	if input < 0 || input >= len(m.gains) {
		return ErrInputRange
	}
	m.gains[input] = factor
	return nil
}

// MixSample mixes one sample from each input. len(xs) must equal
// NumInputs.
func (m *Mixer[S, P]) MixSample(xs ...S) (S, error) {
	var acc S
	if len(xs) != len(m.gains) {
		return acc, ErrInputCount
	}

	for i, x := range xs {
		acc = m.policy.Add(acc, m.policy.Scale(x, m.gains[i]))
	}

	return acc, nil
}

// MixTo mixes one block from each source into dst. All sources and dst
// must share the same length, and len(srcs) must equal NumInputs.
func (m *Mixer[S, P]) MixTo(dst []S, srcs ...[]S) error {
	if len(srcs) != len(m.gains) {
		return ErrInputCount
	}

	for _, src := range srcs {
		if len(src) != len(dst) {
			return ErrLengthMismatch
		}
	}

	if d, ok := any(dst).([]float64); ok {
		m.mixFloat64(d, srcs)
		return nil
	}

	for i := range dst {
		var acc S
		for k, src := range srcs {
			acc = m.policy.Add(acc, m.policy.Scale(src[i], m.gains[k]))
		}
		dst[i] = acc
	}

	return nil
}

func (m *Mixer[S, P]) mixFloat64(dst []float64, srcs [][]S) {
	if cap(m.scratch) < len(dst) {
		m.scratch = make([]S, len(dst))
	}
	scratch := any(m.scratch[:len(dst)]).([]float64)

	vecmath.ScaleBlock(dst, any(srcs[0]).([]float64), m.gains[0])

	for k := 1; k < len(srcs); k++ {
		src := any(srcs[k]).([]float64)
		if m.gains[k] == 1 {
			vecmath.AddBlockInPlace(dst, src)
			continue
		}
		vecmath.ScaleBlock(scratch, src, m.gains[k])
		vecmath.AddBlockInPlace(dst, scratch)
	}
}

// Reset is a no-op; a mixer carries no sample state.
func (m *Mixer[S, P]) Reset() {}

// Mixer64 is a mixer over float64 samples.
type Mixer64 = Mixer[float64, core.Float64]

// NewMixer64 creates a float64 mixer.
func NewMixer64(numInputs int) (*Mixer64, error) {
	return NewMixer[float64](numInputs, core.Float64{})
}
