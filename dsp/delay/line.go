// Package delay provides a circular delay line, the hot-path variant of
// the ring buffer used inside feedback components. Reads are unchecked
// for speed; delays are clamped to the line size.
package delay

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dspkit/dsp/interp"
)

// Line is a fixed-size circular delay line.
type Line struct {
	buffer   []float64
	writePos int
}

// New returns a delay line of fixed size.
func New(size int) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay: size must be > 0: %d", size)
	}
	return &Line{buffer: make([]float64, size)}, nil
}

// Len returns the internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// Write writes one sample and advances the cursor.
func (d *Line) Write(sample float64) {
	d.buffer[d.writePos] = sample
	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
}

// Read reads an integer delay in samples. Read(1) is the most recently
// written sample; Read(Len()) is the oldest, the slot the next Write
// will overwrite.
func (d *Line) Read(delay int) float64 {
	size := len(d.buffer)
	readPos := (d.writePos - delay + size) % size
	if readPos < 0 {
		readPos += size
	}
	return d.buffer[readPos]
}

// ReadFractional reads with cubic Hermite interpolation.
func (d *Line) ReadFractional(delay float64) float64 {
	size := len(d.buffer)
	if delay < 1 {
		delay = 1
	}
	maxDelay := float64(size - 2)
	if delay > maxDelay {
		delay = maxDelay
	}

	p := int(math.Floor(delay))
	t := delay - float64(p)

	xm1 := d.Read(maxInt(1, p-1))
	x0 := d.Read(p)
	x1 := d.Read(p + 1)
	x2 := d.Read(p + 2)
	return interp.Hermite4(t, xm1, x0, x1, x2)
}

// Reset clears the line state.
func (d *Line) Reset() {
	for i := range d.buffer {
		d.buffer[i] = 0
	}
	d.writePos = 0
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
