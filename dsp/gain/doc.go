// Package gain provides sample and block gain staging plus a
// multi-input mixer.
//
// Gain factors are kept as float64 regardless of the sample type; the
// numeric policy performs the scale, so fixed-point samples saturate
// instead of wrapping. Float64 blocks take a vectorized fast path.
package gain
