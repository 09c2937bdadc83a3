// Package core defines the sample representations and numeric policies
// shared by every processing component in the kit.
//
// A [Policy] describes the arithmetic of one sample representation:
// how samples add, multiply, scale and saturate. Components take the
// policy as a type parameter, so a fixed-point build and a floating-point
// build of the same filter share identical logic and test suites while
// compiling down to monomorphic code with no interface dispatch in the
// hot path.
//
// Nothing in this package (or any dsp package) allocates during
// processing; all storage is sized at construction time.
package core
