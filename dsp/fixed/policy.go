package fixed

import (
	"math"

	"github.com/cwbudde/algo-dspkit/dsp/core"
)

// Policy implements core.Policy[Q15] with saturating arithmetic.
//
// The zero-value semantics are silent saturation. With diagnostics
// enabled, any operation that clamps sets a sticky flag readable via
// [Policy.Saturated]; the flag survives until [Policy.ClearStatus].
//
// A Policy is single-writer like every component in the kit: sharing one
// instance across concurrently processed chains is undefined behavior.
type Policy struct {
	diag      bool
	saturated bool
}

// PolicyOption configures a Policy.
type PolicyOption func(*Policy)

// WithDiagnostics enables sticky saturation tracking.
func WithDiagnostics() PolicyOption {
	return func(p *Policy) {
		p.diag = true
	}
}

// NewPolicy returns a Q15 numeric policy.
func NewPolicy(opts ...PolicyOption) *Policy {
	p := &Policy{}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Saturated reports whether any operation clamped since the last
// ClearStatus. Always false unless diagnostics are enabled.
func (p *Policy) Saturated() bool {
	return p.saturated
}

// ClearStatus resets the sticky saturation flag.
func (p *Policy) ClearStatus() {
	p.saturated = false
}

func (p *Policy) note(v int32) Q15 {
	if p.diag && saturates(v) {
		p.saturated = true
	}
	return sat32(v)
}

// Add returns a+b with saturation.
func (p *Policy) Add(a, b Q15) Q15 {
	return p.note(int32(a) + int32(b))
}

// Sub returns a-b with saturation.
func (p *Policy) Sub(a, b Q15) Q15 {
	return p.note(int32(a) - int32(b))
}

// Mul returns the rounded, saturated Q15 product of a and b.
func (p *Policy) Mul(a, b Q15) Q15 {
	return p.note((int32(a)*int32(b) + half) >> 15)
}

// Scale scales a by the real factor k.
func (p *Policy) Scale(a Q15, k float64) Q15 {
	return p.Saturate(a.Float() * k)
}

// Saturate converts a real value to Q15, clamping to full scale.
func (p *Policy) Saturate(v float64) Q15 {
	r := math.Round(v * one)
	if r > float64(MaxQ15) || r < float64(MinQ15) {
		if p.diag {
			p.saturated = true
		}
	}
	return FromFloat(v)
}

// FromFloat converts a real value to Q15 (round to nearest, clamped).
func (p *Policy) FromFloat(f float64) Q15 {
	return FromFloat(f)
}

// ToFloat converts a back to a real value.
func (p *Policy) ToFloat(a Q15) float64 {
	return a.Float()
}

var _ core.Policy[Q15] = (*Policy)(nil)
