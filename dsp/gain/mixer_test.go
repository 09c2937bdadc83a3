package gain

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-dspkit/dsp/fixed"
)

func TestNewMixerValidation(t *testing.T) {
	if _, err := NewMixer64(0); !errors.Is(err, ErrNoInputs) {
		t.Errorf("err = %v, want ErrNoInputs", err)
	}
}

func TestMixSample(t *testing.T) {
	m, err := NewMixer64(3)
	if err != nil {
		t.Fatalf("NewMixer64: %v", err)
	}

	got, err := m.MixSample(0.1, 0.2, 0.3)
	if err != nil {
		t.Fatalf("MixSample: %v", err)
	}
	if math.Abs(got-0.6) > 1e-15 {
		t.Errorf("got %v, want 0.6", got)
	}

	if _, err := m.MixSample(0.1, 0.2); !errors.Is(err, ErrInputCount) {
		t.Errorf("err = %v, want ErrInputCount", err)
	}
}

func TestMixSampleWithGains(t *testing.T) {
	m, _ := NewMixer64(2)
	if err := m.SetGain(0, 0.5); err != nil {
		t.Fatalf("SetGain: %v", err)
	}
	if err := m.SetGain(1, 2); err != nil {
		t.Fatalf("SetGain: %v", err)
	}

	got, err := m.MixSample(1, 0.25)
	if err != nil {
		t.Fatalf("MixSample: %v", err)
	}
	if math.Abs(got-1) > 1e-15 {
		t.Errorf("got %v, want 1", got)
	}
}

func TestMixTo(t *testing.T) {
	m, _ := NewMixer64(2)
	m.SetGain(1, 0.5)

	a := []float64{1, 2, 3, 4}
	b := []float64{2, 2, 2, 2}
	dst := make([]float64, 4)

	if err := m.MixTo(dst, a, b); err != nil {
		t.Fatalf("MixTo: %v", err)
	}

	want := []float64{2, 3, 4, 5}
	for i := range want {
		if math.Abs(dst[i]-want[i]) > 1e-15 {
			t.Errorf("sample %d: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestMixToErrors(t *testing.T) {
	m, _ := NewMixer64(2)

	dst := make([]float64, 4)
	a := make([]float64, 4)
	short := make([]float64, 3)

	if err := m.MixTo(dst, a); !errors.Is(err, ErrInputCount) {
		t.Errorf("err = %v, want ErrInputCount", err)
	}

	if err := m.MixTo(dst, a, short); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestMixToMatchesMixSample(t *testing.T) {
	m, _ := NewMixer64(3)
	m.SetGain(0, 0.3)
	m.SetGain(2, 1.7)

	a := []float64{1, -0.5, 0.25, 0.7}
	b := []float64{0.2, 0.4, -0.6, 0.8}
	c := []float64{-1, 0.1, 0.9, -0.3}

	dst := make([]float64, 4)
	if err := m.MixTo(dst, a, b, c); err != nil {
		t.Fatalf("MixTo: %v", err)
	}

	for i := range dst {
		want, _ := m.MixSample(a[i], b[i], c[i])
		if math.Abs(dst[i]-want) > 1e-12 {
			t.Errorf("sample %d: block=%v, sample=%v", i, dst[i], want)
		}
	}
}

func TestMixerQ15Saturates(t *testing.T) {
	p := fixed.NewPolicy(fixed.WithDiagnostics())
	m, err := NewMixer[fixed.Q15](2, p)
	if err != nil {
		t.Fatalf("NewMixer: %v", err)
	}

	got, err := m.MixSample(30000, 30000)
	if err != nil {
		t.Fatalf("MixSample: %v", err)
	}

	if got != fixed.MaxQ15 {
		t.Errorf("got %d, want clamp at %d", got, fixed.MaxQ15)
	}

	if !p.Saturated() {
		t.Error("saturation flag not set")
	}
}

func TestGainOutOfRange(t *testing.T) {
	m, _ := NewMixer64(2)

	if err := m.SetGain(2, 1); !errors.Is(err, ErrInputRange) {
		t.Errorf("err = %v, want ErrInputRange", err)
	}

	if _, err := m.Gain(-1); !errors.Is(err, ErrInputRange) {
		t.Errorf("err = %v, want ErrInputRange", err)
	}
}
