package fixed

import "testing"

func TestPolicySilentByDefault(t *testing.T) {
	p := NewPolicy()

	if got := p.Add(FromFloat(0.9), FromFloat(0.9)); got != MaxQ15 {
		t.Errorf("Add = %d, want MaxQ15", got)
	}

	if p.Saturated() {
		t.Error("default policy reported saturation")
	}
}

func TestPolicyDiagnosticsSticky(t *testing.T) {
	p := NewPolicy(WithDiagnostics())

	p.Add(8192, 8192)
	if p.Saturated() {
		t.Error("non-clipping add set the flag")
	}

	p.Add(FromFloat(0.9), FromFloat(0.9))
	if !p.Saturated() {
		t.Error("clipping add did not set the flag")
	}

	// Sticky across further clean operations.
	p.Mul(8192, 8192)
	if !p.Saturated() {
		t.Error("flag cleared by a clean operation")
	}

	p.ClearStatus()
	if p.Saturated() {
		t.Error("ClearStatus did not clear the flag")
	}
}

func TestPolicyMulMatchesPrimitive(t *testing.T) {
	p := NewPolicy()

	pairs := [][2]Q15{{16384, 16384}, {MinQ15, MinQ15}, {-8192, 8192}, {MaxQ15, MaxQ15}}
	for _, pr := range pairs {
		if got, want := p.Mul(pr[0], pr[1]), MulQ15(pr[0], pr[1]); got != want {
			t.Errorf("Mul(%d, %d) = %d, want %d", pr[0], pr[1], got, want)
		}
	}
}

func TestPolicySaturateFlags(t *testing.T) {
	p := NewPolicy(WithDiagnostics())

	if got := p.Saturate(0.5); got != 16384 {
		t.Errorf("Saturate(0.5) = %d, want 16384", got)
	}

	if p.Saturated() {
		t.Error("in-range Saturate set the flag")
	}

	if got := p.Saturate(1.5); got != MaxQ15 {
		t.Errorf("Saturate(1.5) = %d, want MaxQ15", got)
	}

	if !p.Saturated() {
		t.Error("clamping Saturate did not set the flag")
	}
}

func TestPolicyScale(t *testing.T) {
	p := NewPolicy()

	if got := p.Scale(16384, 0.5); got != 8192 {
		t.Errorf("Scale = %d, want 8192", got)
	}
}
