package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// FIRResponse returns the complex frequency response of an FIR filter
// evaluated at fftSize uniformly spaced points around the unit circle.
// Only the non-redundant half is returned: fftSize/2+1 bins from DC to
// Nyquist.
//
// fftSize must be a power of two no smaller than the coefficient count.
func FIRResponse(coeffs []float64, fftSize int) ([]complex128, error) {
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("spectrum: no coefficients")
	}

	if fftSize < len(coeffs) || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("spectrum: fft size must be a power of two >= %d: %d", len(coeffs), fftSize)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, c := range coeffs {
		in[i] = complex(c, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: fft forward: %w", err)
	}

	return out[:fftSize/2+1], nil
}

// FIRMagnitudeResponse returns |H(f)| of an FIR filter from DC to
// Nyquist at fftSize/2+1 points.
func FIRMagnitudeResponse(coeffs []float64, fftSize int) ([]float64, error) {
	bins, err := FIRResponse(coeffs, fftSize)
	if err != nil {
		return nil, err
	}

	return Magnitude(bins), nil
}
