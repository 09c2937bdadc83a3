package biquad

import "errors"

// ErrNoSections is returned when a chain is constructed from, or
// re-bound to, an empty coefficient list.
var ErrNoSections = errors.New("biquad: coefficient list must not be empty")
