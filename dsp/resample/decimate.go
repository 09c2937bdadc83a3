package resample

import (
	"github.com/cwbudde/algo-dspkit/dsp/filter/fir"
)

// Decimator reduces the sample rate by an integer factor. Every input
// sample runs through the anti-alias filter (when one is configured);
// every factor-th filtered sample is emitted.
type Decimator struct {
	factor int
	filter *fir.Filter64
	phase  int
}

// NewDecimator creates a decimator for the given factor. coeffs are the
// anti-alias FIR taps; pass nil to decimate without filtering.
func NewDecimator(factor int, coeffs []float64) (*Decimator, error) {
	if factor < 1 {
		return nil, ErrInvalidFactor
	}

	d := &Decimator{factor: factor}

	if len(coeffs) > 0 {
		f, err := fir.New64(coeffs)
		if err != nil {
			return nil, err
		}
		d.filter = f
	}

	return d, nil
}

// Factor returns the decimation factor.
func (d *Decimator) Factor() int {
	return d.factor
}

// OutputLen returns the number of output samples the next n input
// samples will produce, given the current phase.
func (d *Decimator) OutputLen(n int) int {
	if n <= 0 {
		return 0
	}

	// Input index of the next emitted sample.
	first := (d.factor - d.phase) % d.factor
	if n <= first {
		return 0
	}

	return (n-first-1)/d.factor + 1
}

// ProcessBlockTo decimates src into dst and returns the number of
// output samples written. dst must hold at least OutputLen(len(src))
// samples; on ErrShortOutput no state is consumed.
func (d *Decimator) ProcessBlockTo(dst, src []float64) (int, error) {
	need := d.OutputLen(len(src))
	if len(dst) < need {
		return 0, ErrShortOutput
	}

	out := 0
	for _, x := range src {
		y := x
		if d.filter != nil {
			y = d.filter.ProcessSample(x)
		}

		if d.phase == 0 {
			dst[out] = y
			out++
		}

		d.phase++
		if d.phase == d.factor {
			d.phase = 0
		}
	}

	return out, nil
}

// Reset clears the filter state and the decimation phase.
func (d *Decimator) Reset() {
	d.phase = 0
	if d.filter != nil {
		d.filter.Reset()
	}
}
