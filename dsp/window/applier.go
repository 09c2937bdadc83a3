package window

// Applier is a block processor that multiplies fixed-size frames by a
// precomputed window. The coefficients are generated once, so framing
// loops pay no trig per block.
type Applier struct {
	coeffs []float64
}

// NewApplier creates an applier for frames of the given size.
func NewApplier(t Type, size int, opts ...Option) (*Applier, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	return &Applier{coeffs: Generate(t, size, opts...)}, nil
}

// Size returns the frame size the applier was built for.
func (a *Applier) Size() int {
	return len(a.coeffs)
}

// Coefficients returns the window coefficients. The slice is shared;
// callers must not modify it.
func (a *Applier) Coefficients() []float64 {
	return a.coeffs
}

// ProcessBlock windows one frame in-place. The frame length must match
// Size.
func (a *Applier) ProcessBlock(buf []float64) error {
	return ApplyInPlace(buf, a.coeffs)
}

// ProcessBlockTo windows src into dst. Both lengths must match Size.
func (a *Applier) ProcessBlockTo(dst, src []float64) error {
	return ApplyTo(dst, src, a.coeffs)
}

// Reset is a no-op; an applier carries no state.
func (a *Applier) Reset() {}
