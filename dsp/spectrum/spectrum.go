package spectrum

import (
	"math"
	"math/cmplx"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	MagnitudeTo(out, in)

	return out
}

// MagnitudeTo computes |X[k]| into dst, which must be at least as long
// as in.
func MagnitudeTo(dst []float64, in []complex128) {
	if len(in) == 0 {
		return
	}

	_ = dst[len(in)-1] // bounds check hint

	re, im := splitParts(in)
	vecmath.Magnitude(dst[:len(in)], re, im)
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	PowerTo(out, in)

	return out
}

// PowerTo computes |X[k]|^2 into dst, which must be at least as long
// as in.
func PowerTo(dst []float64, in []complex128) {
	if len(in) == 0 {
		return
	}

	_ = dst[len(in)-1] // bounds check hint

	re, im := splitParts(in)
	vecmath.Power(dst[:len(in)], re, im)
}

// splitParts unpacks complex bins into separate real and imaginary
// slices backed by one allocation.
func splitParts(in []complex128) (re, im []float64) {
	scratch := make([]float64, 2*len(in))
	re = scratch[:len(in)]
	im = scratch[len(in):]

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	return re, im
}

// Phase returns arg(X[k]) for each complex spectrum bin in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}

	return out
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities
// removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}

	out := make([]float64, len(phase))
	out[0] = phase[0]

	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}

	return out
}
