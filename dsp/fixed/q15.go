package fixed

import "math"

// Q15 is a signed Q1.15 fixed-point sample: 1 sign bit, 15 fractional
// bits. Full scale is [-1.0, 1.0); the value 1.0 itself is not
// representable and saturates to MaxQ15.
type Q15 int16

const (
	// MaxQ15 is the largest representable Q15 value (just below +1.0).
	MaxQ15 Q15 = math.MaxInt16
	// MinQ15 is the smallest representable Q15 value (-1.0).
	MinQ15 Q15 = math.MinInt16

	// one is the fixed-point scaling factor 2^15.
	one = 1 << 15
	// half is the rounding offset for Q15 multiplication.
	half = 1 << 14
)

// FromFloat converts f to Q15 with round-to-nearest and saturation.
func FromFloat(f float64) Q15 {
	v := math.Round(f * one)
	if v > float64(MaxQ15) {
		return MaxQ15
	}
	if v < float64(MinQ15) {
		return MinQ15
	}
	return Q15(v)
}

// Float converts q back to a real value in [-1.0, 1.0).
func (q Q15) Float() float64 {
	return float64(q) / one
}

// SatAdd returns a+b, saturated to the Q15 range.
func SatAdd(a, b Q15) Q15 {
	return sat32(int32(a) + int32(b))
}

// SatSub returns a-b, saturated to the Q15 range.
func SatSub(a, b Q15) Q15 {
	return sat32(int32(a) - int32(b))
}

// MulQ15 returns the Q15 product of a and b: the 32-bit intermediate is
// rounded at bit 14 and shifted back down to 15 fractional bits, then
// saturated. The only saturating case is MinQ15*MinQ15 (-1 * -1).
func MulQ15(a, b Q15) Q15 {
	return sat32((int32(a)*int32(b) + half) >> 15)
}

// ScaleQ15 scales a by the real factor k through double precision,
// rounding and saturating the result.
func ScaleQ15(a Q15, k float64) Q15 {
	return FromFloat(a.Float() * k)
}

// Quantize converts a float64 coefficient set to Q15, saturating values
// outside [-1.0, 1.0). The input is not modified.
func Quantize(coeffs []float64) []Q15 {
	out := make([]Q15, len(coeffs))
	for i, c := range coeffs {
		out[i] = FromFloat(c)
	}
	return out
}

// sat32 clamps a 32-bit intermediate to the Q15 range.
func sat32(v int32) Q15 {
	if v > int32(MaxQ15) {
		return MaxQ15
	}
	if v < int32(MinQ15) {
		return MinQ15
	}
	return Q15(v)
}

// saturates reports whether clamping v would lose information.
func saturates(v int32) bool {
	return v > int32(MaxQ15) || v < int32(MinQ15)
}
