package core

// Value is the set of sample representations a numeric policy may govern:
// IEEE floating point or signed fixed-point stored in an integer type.
type Value interface {
	~float32 | ~float64 | ~int16 | ~int32
}

// Policy defines the arithmetic semantics of one sample representation.
//
// Implementations must be deterministic and allocation-free; every method
// is called from per-sample hot paths. Fixed-point policies promote to a
// wider intermediate internally and saturate at the representable range
// instead of wrapping. Floating-point policies perform plain IEEE
// arithmetic; they never alter results at runtime.
type Policy[S Value] interface {
	// Add returns a+b under the policy's overflow semantics.
	Add(a, b S) S
	// Sub returns a-b under the policy's overflow semantics.
	Sub(a, b S) S
	// Mul returns a*b, rounded back to the native width.
	Mul(a, b S) S
	// Scale returns a scaled by the real factor k.
	Scale(a S, k float64) S
	// Saturate converts a real value to the representation, clamping
	// to the representable range.
	Saturate(v float64) S
	// FromFloat converts a real value to the representation.
	FromFloat(f float64) S
	// ToFloat converts a sample back to a real value.
	ToFloat(a S) float64
}

// Float64 is the numeric policy for float64 samples.
// Arithmetic is plain IEEE double precision; Saturate clamps to the
// nominal full-scale range [-1, 1] only when explicitly invoked.
type Float64 struct{}

// Add returns a+b.
func (Float64) Add(a, b float64) float64 { return a + b }

// Sub returns a-b.
func (Float64) Sub(a, b float64) float64 { return a - b }

// Mul returns a*b.
func (Float64) Mul(a, b float64) float64 { return a * b }

// Scale returns a*k.
func (Float64) Scale(a, k float64) float64 { return a * k }

// Saturate clamps v to [-1, 1].
func (Float64) Saturate(v float64) float64 { return Clamp(v, -1, 1) }

// FromFloat returns f unchanged.
func (Float64) FromFloat(f float64) float64 { return f }

// ToFloat returns a unchanged.
func (Float64) ToFloat(a float64) float64 { return a }

// Float32 is the numeric policy for float32 samples.
type Float32 struct{}

// Add returns a+b.
func (Float32) Add(a, b float32) float32 { return a + b }

// Sub returns a-b.
func (Float32) Sub(a, b float32) float32 { return a - b }

// Mul returns a*b.
func (Float32) Mul(a, b float32) float32 { return a * b }

// Scale returns a*k in single precision.
func (Float32) Scale(a float32, k float64) float32 { return float32(float64(a) * k) }

// Saturate clamps v to [-1, 1].
func (Float32) Saturate(v float64) float32 { return float32(Clamp(v, -1, 1)) }

// FromFloat converts f to single precision.
func (Float32) FromFloat(f float64) float32 { return float32(f) }

// ToFloat widens a to double precision.
func (Float32) ToFloat(a float32) float64 { return float64(a) }

var (
	_ Policy[float64] = Float64{}
	_ Policy[float32] = Float32{}
)
