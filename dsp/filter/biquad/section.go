package biquad

import "github.com/cwbudde/algo-dspkit/dsp/core"

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients[S core.Value] struct {
	B0, B1, B2 S // feedforward (numerator)
	A1, A2     S // feedback (denominator)
}

// Identity returns the pass-through coefficient set (b0 = 1, rest 0).
func Identity[S core.Value, P core.Policy[S]](policy P) Coefficients[S] {
	return Coefficients[S]{B0: policy.FromFloat(1)}
}

// CoefficientsFromFloat converts a float64 coefficient set through the
// policy, rounding each value to the target representation.
func CoefficientsFromFloat[S core.Value, P core.Policy[S]](c Coefficients[float64], policy P) Coefficients[S] {
	return Coefficients[S]{
		B0: policy.FromFloat(c.B0),
		B1: policy.FromFloat(c.B1),
		B2: policy.FromFloat(c.B2),
		A1: policy.FromFloat(c.A1),
		A2: policy.FromFloat(c.A2),
	}
}

// Section is a single biquad filter with coefficients and internal
// state, implementing Direct Form II Transposed processing under the
// numeric policy.
//
// Precondition: poles inside the unit circle (see package doc).
type Section[S core.Value, P core.Policy[S]] struct {
	Coefficients[S]

	policy P
	d0, d1 S
}

// NewSection returns a Section initialized with the given coefficients
// and zero state.
func NewSection[S core.Value, P core.Policy[S]](c Coefficients[S], policy P) *Section[S, P] {
	return &Section[S, P]{Coefficients: c, policy: policy}
}

// ProcessSample filters one input sample and returns the output.
func (s *Section[S, P]) ProcessSample(x S) S {
	p := s.policy
	y := p.Add(p.Mul(s.B0, x), s.d0)
	s.d0 = p.Add(p.Sub(p.Mul(s.B1, x), p.Mul(s.A1, y)), s.d1)
	s.d1 = p.Sub(p.Mul(s.B2, x), p.Mul(s.A2, y))

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc;
// equivalent to per-sample calls.
func (s *Section[S, P]) ProcessBlock(buf []S) {
	p := s.policy
	d0, d1 := s.d0, s.d1

	for i, x := range buf {
		y := p.Add(p.Mul(s.B0, x), d0)
		d0 = p.Add(p.Sub(p.Mul(s.B1, x), p.Mul(s.A1, y)), d1)
		d1 = p.Sub(p.Mul(s.B2, x), p.Mul(s.A2, y))
		buf[i] = y
	}

	s.d0, s.d1 = d0, d1
}

// ProcessBlockTo filters src into dst. Both slices must have the same
// length. Zero-alloc.
func (s *Section[S, P]) ProcessBlockTo(dst, src []S) {
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = s.ProcessSample(x)
	}
}

// Reset clears the delay registers to zero.
func (s *Section[S, P]) Reset() {
	var zero S
	s.d0 = zero
	s.d1 = zero
}

// State returns the current delay-register state [d0, d1].
func (s *Section[S, P]) State() [2]S {
	return [2]S{s.d0, s.d1}
}

// SetState restores a previously saved delay-register state.
func (s *Section[S, P]) SetState(state [2]S) {
	s.d0 = state[0]
	s.d1 = state[1]
}

// Section64 is the float64 instantiation of Section.
type Section64 = Section[float64, core.Float64]

// NewSection64 returns a float64 biquad section.
func NewSection64(c Coefficients[float64]) *Section64 {
	return NewSection(c, core.Float64{})
}
