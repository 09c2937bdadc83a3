package biquad

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-dspkit/dsp/core"
)

func TestNewChainRejectsEmpty(t *testing.T) {
	if _, err := NewChain64(nil); !errors.Is(err, ErrNoSections) {
		t.Errorf("err = %v, want ErrNoSections", err)
	}
}

func TestChainMatchesSequentialSections(t *testing.T) {
	c1 := Coefficients[float64]{B0: 0.3, B1: 0.2, A1: -0.4}
	c2 := Coefficients[float64]{B0: 0.5, B2: 0.1, A2: 0.2}

	chain, err := NewChain64([]Coefficients[float64]{c1, c2})
	if err != nil {
		t.Fatalf("NewChain64: %v", err)
	}

	s1 := NewSection64(c1)
	s2 := NewSection64(c2)

	input := []float64{1, 0.5, -0.3, 0.7, 0, -1}
	for i, x := range input {
		want := s2.ProcessSample(s1.ProcessSample(x))
		if got := chain.ProcessSample(x); !almostEqual(got, want, eps) {
			t.Errorf("sample %d: got %v, want %v", i, got, want)
		}
	}
}

func TestChainGain(t *testing.T) {
	id := Identity[float64](core.Float64{})

	chain, _ := NewChain64([]Coefficients[float64]{id}, WithGain(0.5))
	if got := chain.ProcessSample(1); got != 0.5 {
		t.Errorf("gained identity: got %v, want 0.5", got)
	}

	chain.SetGain(2)
	if got := chain.ProcessSample(1); got != 2 {
		t.Errorf("after SetGain: got %v, want 2", got)
	}
}

func TestChainBlockMatchesSample(t *testing.T) {
	coeffs := []Coefficients[float64]{
		{B0: 0.3, B1: 0.2, A1: -0.4},
		{B0: 0.6, B1: -0.1, A1: 0.1},
	}

	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.4}

	c1, _ := NewChain64(coeffs, WithGain(0.8))
	ref := make([]float64, len(input))
	for i, x := range input {
		ref[i] = c1.ProcessSample(x)
	}

	c2, _ := NewChain64(coeffs, WithGain(0.8))
	block := make([]float64, len(input))
	copy(block, input)
	c2.ProcessBlock(block)

	for i := range block {
		if !almostEqual(block[i], ref[i], eps) {
			t.Errorf("sample %d: block=%v, ref=%v", i, block[i], ref[i])
		}
	}
}

func TestUpdateCoefficientsPreservesState(t *testing.T) {
	c := Coefficients[float64]{B0: 0.3, B1: 0.2, A1: -0.4}
	chain, _ := NewChain64([]Coefficients[float64]{c})
	chain.ProcessSample(1)

	saved := chain.Section(0).State()

	if err := chain.UpdateCoefficients([]Coefficients[float64]{{B0: 0.5}}, 1); err != nil {
		t.Fatalf("UpdateCoefficients: %v", err)
	}

	if got := chain.Section(0).State(); got != saved {
		t.Errorf("state after same-count update = %v, want %v", got, saved)
	}

	if chain.Section(0).B0 != 0.5 {
		t.Errorf("coefficients not updated: B0 = %v", chain.Section(0).B0)
	}
}

func TestUpdateCoefficientsRejectsEmpty(t *testing.T) {
	c := Coefficients[float64]{B0: 0.3}
	chain, _ := NewChain64([]Coefficients[float64]{c})

	if err := chain.UpdateCoefficients(nil, 2); !errors.Is(err, ErrNoSections) {
		t.Fatalf("err = %v, want ErrNoSections", err)
	}

	// Prior configuration remains in effect.
	if chain.Gain() != 1 {
		t.Errorf("gain mutated by failed update: %v", chain.Gain())
	}

	if chain.NumSections() != 1 || chain.Section(0).B0 != 0.3 {
		t.Error("sections mutated by failed update")
	}
}

func TestChainOrderAndSections(t *testing.T) {
	coeffs := []Coefficients[float64]{{B0: 1}, {B0: 1}, {B0: 1}}
	chain, _ := NewChain64(coeffs)

	if chain.NumSections() != 3 {
		t.Errorf("NumSections = %d, want 3", chain.NumSections())
	}

	if chain.Order() != 6 {
		t.Errorf("Order = %d, want 6", chain.Order())
	}
}
