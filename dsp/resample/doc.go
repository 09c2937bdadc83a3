// Package resample provides integer-factor sample rate conversion:
// decimation with an optional anti-alias filter and interpolation by
// zero-stuffing with an optional image-rejection filter.
//
// Both converters are allocation-free in their processing paths and
// keep their phase across block boundaries, so a stream may be fed in
// blocks of any size.
package resample
