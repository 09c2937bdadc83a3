package resample

import (
	"github.com/cwbudde/algo-dspkit/dsp/filter/fir"
)

// Interpolator raises the sample rate by an integer factor using
// zero-stuffing. Input samples are scaled by the factor so the signal
// level survives the inserted zeros, then everything runs through the
// image-rejection filter (when one is configured).
type Interpolator struct {
	factor int
	filter *fir.Filter64
}

// NewInterpolator creates an interpolator for the given factor. coeffs
// are the image-rejection FIR taps; pass nil to zero-stuff without
// filtering.
func NewInterpolator(factor int, coeffs []float64) (*Interpolator, error) {
	if factor < 1 {
		return nil, ErrInvalidFactor
	}

	u := &Interpolator{factor: factor}

	if len(coeffs) > 0 {
		f, err := fir.New64(coeffs)
		if err != nil {
			return nil, err
		}
		u.filter = f
	}

	return u, nil
}

// Factor returns the interpolation factor.
func (u *Interpolator) Factor() int {
	return u.factor
}

// OutputLen returns the number of output samples n input samples
// produce.
func (u *Interpolator) OutputLen(n int) int {
	if n <= 0 {
		return 0
	}
	return n * u.factor
}

// ProcessBlockTo interpolates src into dst and returns the number of
// output samples written. dst must hold at least OutputLen(len(src))
// samples; on ErrShortOutput no state is consumed.
func (u *Interpolator) ProcessBlockTo(dst, src []float64) (int, error) {
	need := u.OutputLen(len(src))
	if len(dst) < need {
		return 0, ErrShortOutput
	}

	gain := float64(u.factor)

	out := 0
	for _, x := range src {
		dst[out] = u.emit(x * gain)
		out++

		for range u.factor - 1 {
			dst[out] = u.emit(0)
			out++
		}
	}

	return out, nil
}

func (u *Interpolator) emit(x float64) float64 {
	if u.filter == nil {
		return x
	}
	return u.filter.ProcessSample(x)
}

// Reset clears the filter state.
func (u *Interpolator) Reset() {
	if u.filter != nil {
		u.filter.Reset()
	}
}
