package biquad

import "github.com/cwbudde/algo-dspkit/dsp/core"

// Chain is an ordered cascade of biquad sections processed in series.
// It is used for higher-order filters where each second-order section
// feeds into the next. Each section advances its own state from the
// previous section's output.
type Chain[S core.Value, P core.Policy[S]] struct {
	policy   P
	sections []Section[S, P]
	gain     float64
}

// chainConfig holds options for NewChain.
type chainConfig struct {
	gain float64
}

// ChainOption configures a Chain.
type ChainOption func(*chainConfig)

// WithGain sets an overall gain applied to the input before cascading.
// Default is 1.0 (unity gain).
func WithGain(g float64) ChainOption {
	return func(cfg *chainConfig) { cfg.gain = g }
}

// NewChain creates a cascade from one or more coefficient sets.
// Each Coefficients value becomes one Section in the cascade.
func NewChain[S core.Value, P core.Policy[S]](coeffs []Coefficients[S], policy P, opts ...ChainOption) (*Chain[S, P], error) {
	if len(coeffs) == 0 {
		return nil, ErrNoSections
	}

	cfg := chainConfig{gain: 1}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	c := &Chain[S, P]{
		policy:   policy,
		sections: make([]Section[S, P], len(coeffs)),
		gain:     cfg.gain,
	}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
		c.sections[i].policy = policy
	}

	return c, nil
}

// ProcessSample cascades input through all sections in order.
// If gain != 1, the input is scaled before the first section.
func (c *Chain[S, P]) ProcessSample(x S) S {
	if c.gain != 1 {
		x = c.policy.Scale(x, c.gain)
	}
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Chain[S, P]) ProcessBlock(buf []S) {
	if c.gain != 1 {
		for i, x := range buf {
			buf[i] = c.policy.Scale(x, c.gain)
		}
	}

	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears all section states.
func (c *Chain[S, P]) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Order returns the total filter order (2 per section).
func (c *Chain[S, P]) Order() int {
	return 2 * len(c.sections)
}

// NumSections returns the number of biquad sections.
func (c *Chain[S, P]) NumSections() int {
	return len(c.sections)
}

// Gain returns the current input gain applied before cascading.
func (c *Chain[S, P]) Gain() float64 { return c.gain }

// SetGain updates the input gain applied before cascading.
func (c *Chain[S, P]) SetGain(g float64) { c.gain = g }

// UpdateCoefficients replaces the filter coefficients and gain.
// An empty list is rejected with ErrNoSections, leaving the prior
// configuration and state untouched. If the section count is unchanged
// the delay-register state of each section is preserved, avoiding the
// output discontinuity a fresh zero-state chain would produce. If the
// section count changes, the sections are replaced and state is reset.
func (c *Chain[S, P]) UpdateCoefficients(coeffs []Coefficients[S], gain float64) error {
	if len(coeffs) == 0 {
		return ErrNoSections
	}

	c.gain = gain

	if len(coeffs) == len(c.sections) {
		for i := range c.sections {
			c.sections[i].Coefficients = coeffs[i]
		}

		return nil
	}

	c.sections = make([]Section[S, P], len(coeffs))
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
		c.sections[i].policy = c.policy
	}

	return nil
}

// Section returns a pointer to the i-th section for inspection.
func (c *Chain[S, P]) Section(i int) *Section[S, P] {
	return &c.sections[i]
}

// Chain64 is the float64 instantiation of Chain.
type Chain64 = Chain[float64, core.Float64]

// NewChain64 creates a float64 biquad cascade.
func NewChain64(coeffs []Coefficients[float64], opts ...ChainOption) (*Chain64, error) {
	return NewChain(coeffs, core.Float64{}, opts...)
}
