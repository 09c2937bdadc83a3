// Package fir provides a direct-form FIR filter runtime.
//
// A [Filter] applies a set of pre-computed coefficients to an input
// stream using a circular-buffer delay line sized to the tap count. The
// filter is generic over the numeric policy, so the same runtime serves
// float and saturating fixed-point builds.
//
// This package provides the processing runtime only. Coefficient design
// (windowed-sinc, equiripple, etc.) is a separate concern; the host
// hands the filter a plain in-memory coefficient set.
package fir
