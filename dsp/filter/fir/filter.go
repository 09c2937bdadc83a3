package fir

import "github.com/cwbudde/algo-dspkit/dsp/core"

// Filter implements a direct-form FIR filter using a circular-buffer
// delay line. The delay line capacity equals the tap count; the
// coefficient set is copied at construction and immutable except
// through SetCoefficients.
//
// A Filter is single-writer: calling SetCoefficients concurrently with
// ProcessSample on the same instance is undefined behavior.
type Filter[S core.Value, P core.Policy[S]] struct {
	policy P
	coeffs []S
	delay  []S
	pos    int
}

// New creates a FIR filter from the given coefficient slice and numeric
// policy. The coefficients are copied. The filter order is
// len(coeffs)-1.
func New[S core.Value, P core.Policy[S]](coeffs []S, policy P) (*Filter[S, P], error) {
	if len(coeffs) == 0 {
		return nil, ErrNoCoefficients
	}

	c := make([]S, len(coeffs))
	copy(c, coeffs)
	return &Filter[S, P]{
		policy: policy,
		coeffs: c,
		delay:  make([]S, len(coeffs)),
	}, nil
}

// ProcessSample filters one input sample using direct convolution with
// the circular delay line.
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
//
// Multiply and accumulate follow the policy, so fixed-point builds
// saturate instead of wrapping.
func (f *Filter[S, P]) ProcessSample(x S) S {
	f.delay[f.pos] = x
	var y S
	n := len(f.coeffs)
	p := f.pos
	for k := range n {
		y = f.policy.Add(y, f.policy.Mul(f.coeffs[k], f.delay[p]))
		p--
		if p < 0 {
			p = n - 1
		}
	}
	f.pos++
	if f.pos >= n {
		f.pos = 0
	}
	return y
}

// ProcessBlock filters a block of samples in-place. The result is
// identical to calling ProcessSample over the block in order.
func (f *Filter[S, P]) ProcessBlock(buf []S) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter[S, P]) ProcessBlockTo(dst, src []S) {
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// SetCoefficients atomically replaces the coefficient set. The new set
// must match the existing tap count; on mismatch the filter keeps its
// prior coefficients and delay-line state and returns
// ErrCoefficientLength. The delay line is preserved on success, so a
// re-bind does not glitch the stream.
func (f *Filter[S, P]) SetCoefficients(coeffs []S) error {
	if len(coeffs) != len(f.coeffs) {
		return ErrCoefficientLength
	}
	copy(f.coeffs, coeffs)
	return nil
}

// Reset clears the delay line to zero without reallocating.
func (f *Filter[S, P]) Reset() {
	core.Zero(f.delay)
	f.pos = 0
}

// Order returns the filter order (len(coeffs) - 1).
func (f *Filter[S, P]) Order() int {
	return len(f.coeffs) - 1
}

// TapCount returns the number of taps.
func (f *Filter[S, P]) TapCount() int {
	return len(f.coeffs)
}

// Coefficients returns a copy of the filter coefficients.
func (f *Filter[S, P]) Coefficients() []S {
	c := make([]S, len(f.coeffs))
	copy(c, f.coeffs)
	return c
}

// Filter64 is the float64 instantiation of Filter.
type Filter64 = Filter[float64, core.Float64]

// New64 creates a float64 FIR filter.
func New64(coeffs []float64) (*Filter64, error) {
	return New(coeffs, core.Float64{})
}
