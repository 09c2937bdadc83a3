// Package pipeline composes processing stages into a fixed-topology
// chain. A pipeline is assembled once, sealed, then driven on the hot
// path; failures carry the index of the stage that produced them.
//
// Infallible components (filters, gain stages) join a pipeline through
// Lift; stages with failure modes (taps, rate changers) implement
// Stage directly.
package pipeline
