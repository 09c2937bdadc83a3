package window

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestGenerateLength(t *testing.T) {
	if got := Generate(TypeHann, 0); got != nil {
		t.Errorf("Generate length 0 = %v, want nil", got)
	}

	if got := Generate(TypeHann, 8); len(got) != 8 {
		t.Errorf("len = %d, want 8", len(got))
	}
}

func TestRectangular(t *testing.T) {
	for _, c := range Generate(TypeRectangular, 16) {
		if c != 1 {
			t.Fatalf("rectangular coefficient = %v, want 1", c)
		}
	}
}

func TestHannSymmetric(t *testing.T) {
	w := Generate(TypeHann, 9)

	// Symmetric form: zero endpoints, unity peak at the center.
	if !almostEqual(w[0], 0, 1e-15) || !almostEqual(w[8], 0, 1e-15) {
		t.Errorf("endpoints = %v, %v, want 0", w[0], w[8])
	}

	if !almostEqual(w[4], 1, 1e-15) {
		t.Errorf("center = %v, want 1", w[4])
	}

	for i := range 4 {
		if !almostEqual(w[i], w[8-i], 1e-15) {
			t.Errorf("asymmetry at %d: %v vs %v", i, w[i], w[8-i])
		}
	}
}

func TestHannPeriodic(t *testing.T) {
	// Periodic form of length N matches the first N samples of a
	// symmetric window of length N+1.
	p := Generate(TypeHann, 8, WithPeriodic())
	s := Generate(TypeHann, 9)

	for i := range p {
		if !almostEqual(p[i], s[i], 1e-15) {
			t.Errorf("sample %d: periodic=%v, symmetric=%v", i, p[i], s[i])
		}
	}
}

func TestHammingEndpoints(t *testing.T) {
	w := Generate(TypeHamming, 11)

	// Hamming: 0.54 - 0.46 = 0.08 at the edges.
	if !almostEqual(w[0], 0.08, 1e-12) {
		t.Errorf("edge = %v, want 0.08", w[0])
	}

	if !almostEqual(w[5], 1, 1e-12) {
		t.Errorf("center = %v, want 1", w[5])
	}
}

func TestBlackmanCenter(t *testing.T) {
	w := Generate(TypeBlackman, 9)

	// 0.42 + 0.5 + 0.08 = 1 at the center.
	if !almostEqual(w[4], 1, 1e-12) {
		t.Errorf("center = %v, want 1", w[4])
	}

	// 0.42 - 0.5 + 0.08 = 0 at the edges.
	if !almostEqual(w[0], 0, 1e-12) {
		t.Errorf("edge = %v, want 0", w[0])
	}
}

func TestKaiserShape(t *testing.T) {
	w, err := Kaiser(9, 8)
	if err != nil {
		t.Fatalf("Kaiser: %v", err)
	}

	if !almostEqual(w[4], 1, 1e-12) {
		t.Errorf("center = %v, want 1", w[4])
	}

	// Beta 8 pushes the edges well below the center.
	if w[0] >= 0.01 {
		t.Errorf("edge = %v, want < 0.01", w[0])
	}

	// Beta 0 degenerates to rectangular.
	flat, _ := Kaiser(5, 0)
	for i, c := range flat {
		if c != 1 {
			t.Errorf("beta 0 sample %d = %v, want 1", i, c)
		}
	}
}

func TestTriangle(t *testing.T) {
	w := Generate(TypeTriangle, 5)
	want := []float64{0, 0.5, 1, 0.5, 0}
	for i := range want {
		if !almostEqual(w[i], want[i], 1e-15) {
			t.Errorf("triangle sample %d = %v, want %v", i, w[i], want[i])
		}
	}
}

func TestWelch(t *testing.T) {
	w := Generate(TypeWelch, 9)

	if !almostEqual(w[4], 1, 1e-15) {
		t.Errorf("center = %v, want 1", w[4])
	}

	if !almostEqual(w[0], 0, 1e-15) || !almostEqual(w[8], 0, 1e-15) {
		t.Errorf("endpoints = %v, %v, want 0", w[0], w[8])
	}

	if !almostEqual(w[2], 0.75, 1e-15) {
		t.Errorf("quarter point = %v, want 0.75", w[2])
	}
}

func TestConstructorsValidate(t *testing.T) {
	if _, err := Hann(0); err == nil {
		t.Error("Hann(0): expected error")
	}

	if _, err := Kaiser(8, -1); err == nil {
		t.Error("Kaiser beta -1: expected error")
	}
}

func TestEquivalentNoiseBandwidth(t *testing.T) {
	// Rectangular window: ENBW is exactly 1 bin.
	enbw, err := EquivalentNoiseBandwidth(Generate(TypeRectangular, 64))
	if err != nil {
		t.Fatalf("EquivalentNoiseBandwidth: %v", err)
	}
	if !almostEqual(enbw, 1, 1e-12) {
		t.Errorf("rectangular ENBW = %v, want 1", enbw)
	}

	// Periodic Hann: ENBW is exactly 1.5 bins.
	enbw, _ = EquivalentNoiseBandwidth(Generate(TypeHann, 64, WithPeriodic()))
	if !almostEqual(enbw, 1.5, 1e-9) {
		t.Errorf("hann ENBW = %v, want 1.5", enbw)
	}

	if _, err := EquivalentNoiseBandwidth(nil); err == nil {
		t.Error("empty coefficients: expected error")
	}
}

func TestCoherentGain(t *testing.T) {
	// Periodic Hann: coherent gain is exactly 0.5.
	cg, err := CoherentGain(Generate(TypeHann, 64, WithPeriodic()))
	if err != nil {
		t.Fatalf("CoherentGain: %v", err)
	}
	if !almostEqual(cg, 0.5, 1e-12) {
		t.Errorf("hann coherent gain = %v, want 0.5", cg)
	}
}

func TestApplyVariants(t *testing.T) {
	samples := []float64{1, 2, 3, 4}
	coeffs := []float64{0.5, 0.5, 0.5, 0.5}

	out, err := Apply(samples, coeffs)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	want := []float64{0.5, 1, 1.5, 2}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("Apply sample %d = %v, want %v", i, out[i], want[i])
		}
	}

	if samples[0] != 1 {
		t.Error("Apply mutated its input")
	}

	dst := make([]float64, 4)
	if err := ApplyTo(dst, samples, coeffs); err != nil {
		t.Fatalf("ApplyTo: %v", err)
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("ApplyTo sample %d = %v, want %v", i, dst[i], want[i])
		}
	}

	if err := ApplyInPlace(samples, coeffs); err != nil {
		t.Fatalf("ApplyInPlace: %v", err)
	}
	for i := range want {
		if samples[i] != want[i] {
			t.Errorf("ApplyInPlace sample %d = %v, want %v", i, samples[i], want[i])
		}
	}

	if _, err := Apply(samples, coeffs[:3]); err == nil {
		t.Error("length mismatch: expected error")
	}
}
