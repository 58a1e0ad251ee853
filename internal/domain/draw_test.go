package domain

import (
	"math"
	"testing"
)

func TestNewPrincipleDrawClampsStrength(t *testing.T) {
	tests := []struct {
		name     string
		strength float64
		want     float64
	}{
		{"in range", 0.7, 0.7},
		{"below zero", -0.4, 0},
		{"above one", 1.8, 1},
		{"zero", 0, 0},
		{"one", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPrincipleDraw("composable", tt.strength, EvidenceEmpirical, nil)
			if p.Strength != tt.want {
				t.Errorf("Strength = %v, want %v", p.Strength, tt.want)
			}
		})
	}
}

func TestDecayPermanentTypesAreIdentity(t *testing.T) {
	for _, e := range []EvidenceType{EvidenceCategorical, EvidenceSomatic} {
		p := NewPrincipleDraw("well-typed", 0.9, e, []string{"review-1"})
		for _, days := range []float64{0, 1, 30, 3650} {
			if got := p.Decay(days).Strength; got != p.Strength {
				t.Errorf("%s Decay(%v).Strength = %v, want %v", e, days, got, p.Strength)
			}
		}
	}
}

func TestDecayIsMonotoneWithFloor(t *testing.T) {
	p := NewPrincipleDraw("benchmarked", 0.9, EvidenceEmpirical, nil)

	prev := p.Strength
	for _, days := range []float64{1, 5, 30, 90, 365, 10000} {
		got := p.Decay(days).Strength
		if got > prev {
			t.Errorf("Decay(%v).Strength = %v, rose above %v", days, got, prev)
		}
		if got < DrawStrengthFloor {
			t.Errorf("Decay(%v).Strength = %v, below floor %v", days, got, DrawStrengthFloor)
		}
		prev = got
	}

	// After enough time every decaying draw sits exactly on the floor
	if got := p.Decay(100000).Strength; got != DrawStrengthFloor {
		t.Errorf("long decay strength = %v, want floor %v", got, DrawStrengthFloor)
	}
}

func TestDecayMatchesGeometricRate(t *testing.T) {
	p := NewPrincipleDraw("observed", 0.8, EvidenceAesthetic, nil)
	days := 7.0
	want := 0.8 * math.Pow(1-EvidenceAesthetic.DailyDecayRate(), days)

	if got := p.Decay(days).Strength; math.Abs(got-want) > 1e-12 {
		t.Errorf("Decay(%v).Strength = %v, want %v", days, got, want)
	}
}

func TestDecayDoesNotMutateReceiver(t *testing.T) {
	p := NewPrincipleDraw("immutable", 0.8, EvidenceEmpirical, nil)
	_ = p.Decay(30)
	if p.Strength != 0.8 {
		t.Errorf("receiver strength changed to %v", p.Strength)
	}
}

func TestIsCategorical(t *testing.T) {
	if !NewPrincipleDraw("p", 1, EvidenceCategorical, nil).IsCategorical() {
		t.Error("categorical draw should report IsCategorical")
	}
	if NewPrincipleDraw("p", 1, EvidenceSomatic, nil).IsCategorical() {
		t.Error("somatic draw should not report IsCategorical")
	}
}
