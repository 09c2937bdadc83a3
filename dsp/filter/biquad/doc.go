// Package biquad provides second-order IIR filter sections and cascades
// in Direct Form II Transposed, generic over the numeric policy.
//
// Stability is the caller's responsibility: a section is stable only if
// the poles of its transfer function lie inside the unit circle. The
// runtime performs no per-sample stability check; supplying an unstable
// coefficient set is a precondition violation, not a runtime error.
// Fixed-point policies additionally require every coefficient magnitude
// to be below full scale; higher-order responses should be normalized
// into cascaded sections before quantization.
package biquad
