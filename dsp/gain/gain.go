package gain

import (
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dspkit/dsp/core"
)

// Gain applies a constant linear gain to a sample stream.
type Gain[S core.Value, P core.Policy[S]] struct {
	policy P
	factor float64
}

// New creates a gain stage with the given linear factor.
func New[S core.Value, P core.Policy[S]](factor float64, policy P) *Gain[S, P] {
	return &Gain[S, P]{policy: policy, factor: factor}
}

// ProcessSample scales one sample.
func (g *Gain[S, P]) ProcessSample(x S) S {
	return g.policy.Scale(x, g.factor)
}

// ProcessBlock scales a block of samples in-place.
func (g *Gain[S, P]) ProcessBlock(buf []S) {
	g.ProcessBlockTo(buf, buf)
}

// ProcessBlockTo scales src into dst. The slices may alias. dst must be
// at least as long as src.
func (g *Gain[S, P]) ProcessBlockTo(dst, src []S) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1] // bounds check hint

	if d, ok := any(dst).([]float64); ok {
		vecmath.ScaleBlock(d[:len(src)], any(src).([]float64), g.factor)
		return
	}

	for i, x := range src {
		dst[i] = g.policy.Scale(x, g.factor)
	}
}

// Reset is a no-op; a gain stage carries no state.
func (g *Gain[S, P]) Reset() {}

// Factor returns the current linear gain factor.
func (g *Gain[S, P]) Factor() float64 {
	return g.factor
}

// SetFactor updates the linear gain factor.
func (g *Gain[S, P]) SetFactor(factor float64) {
	g.factor = factor
}

// SetDB sets the gain from a decibel value.
func (g *Gain[S, P]) SetDB(db float64) {
	g.factor = core.DBToLinear(db)
}

// DB returns the current gain in decibels.
func (g *Gain[S, P]) DB() float64 {
	return core.LinearToDB(g.factor)
}

// Gain64 is a gain stage over float64 samples.
type Gain64 = Gain[float64, core.Float64]

// New64 creates a float64 gain stage.
func New64(factor float64) *Gain64 {
	return New[float64](factor, core.Float64{})
}
