// Package interp provides fractional-sample interpolation kernels used
// by delay lines and modulation components.
package interp
