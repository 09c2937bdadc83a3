// Package buffer provides fixed-capacity sample containers for block
// staging and inter-component hand-off.
//
// [Ring] overwrites the oldest sample once full and never fails; it is
// the sliding-window/delay-line shape. [Linear] treats capacity as a
// hard ceiling and rejects writes once full. Both reserve all storage at
// construction and never grow.
package buffer
