// Package fixed implements saturating Q1.15 fixed-point arithmetic and
// the numeric policy that lets the generic components run on int16
// samples.
//
// All operations promote to a wider intermediate, round, and clamp to
// the representable range; results never wrap. Saturation is silent by
// default. A policy constructed with [WithDiagnostics] records clipping
// in a sticky flag that the host can poll between invocations, matching
// the usual embedded DSP split between release and bring-up builds.
package fixed
