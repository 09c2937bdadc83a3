// Package spectrum provides frequency-domain analysis helpers: filter
// frequency responses via FFT, bin magnitude and power conversion, and
// single-bin Goertzel tone analysis.
package spectrum
