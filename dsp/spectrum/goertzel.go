package spectrum

import (
	"fmt"
	"math"
)

// Goertzel evaluates a single DFT bin recursively, without computing a
// full transform. It suits tone detection where only a handful of
// frequencies matter.
//
// The analyzer is stateful: Power and Magnitude reflect every sample
// processed since the last Reset. Frequency resolution follows the
// block length; leakage from off-bin tones can be reduced by windowing
// the input first.
type Goertzel struct {
	frequency  float64
	sampleRate float64
	coeff      float64
	s0, s1     float64
}

// NewGoertzel creates an analyzer for the target frequency. frequency
// must lie in [0, sampleRate/2].
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("goertzel: sample rate must be > 0: %v", sampleRate)
	}

	g := &Goertzel{sampleRate: sampleRate}
	if err := g.SetFrequency(frequency); err != nil {
		return nil, err
	}

	return g, nil
}

// SetFrequency retunes the analyzer. State is kept; call Reset when
// starting a new measurement.
func (g *Goertzel) SetFrequency(frequency float64) error {
	if frequency < 0 || frequency > g.sampleRate/2 || math.IsNaN(frequency) || math.IsInf(frequency, 0) {
		return fmt.Errorf("goertzel: frequency must be between 0 and sampleRate/2: %v", frequency)
	}

	g.frequency = frequency
	g.coeff = 2 * math.Cos(2*math.Pi*frequency/g.sampleRate)

	return nil
}

// Frequency returns the target frequency.
func (g *Goertzel) Frequency() float64 { return g.frequency }

// SampleRate returns the sample rate.
func (g *Goertzel) SampleRate() float64 { return g.sampleRate }

// ProcessSample feeds one sample into the recursion.
func (g *Goertzel) ProcessSample(x float64) {
	s := x + g.coeff*g.s0 - g.s1
	g.s1 = g.s0
	g.s0 = s
}

// ProcessBlock feeds a block of samples into the recursion.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1
	coeff := g.coeff

	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	g.s0, g.s1 = s0, s1
}

// Power returns |X[k]|^2 for the accumulated samples.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns |X[k]| for the accumulated samples.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}

	return math.Sqrt(p)
}

// Reset clears the accumulated state.
func (g *Goertzel) Reset() {
	g.s0 = 0
	g.s1 = 0
}

// AnalyzeBlock computes the Goertzel power of one block at a single
// frequency in one shot.
func AnalyzeBlock(input []float64, frequency, sampleRate float64) (float64, error) {
	g, err := NewGoertzel(frequency, sampleRate)
	if err != nil {
		return 0, err
	}

	g.ProcessBlock(input)

	return g.Power(), nil
}
