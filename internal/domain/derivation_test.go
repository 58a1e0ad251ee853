package domain

import (
	"math"
	"testing"
)

func TestTotalConfidence(t *testing.T) {
	tests := []struct {
		name       string
		tier       Tier
		inherited  float64
		empirical  float64
		stigmergic float64
		want       float64
	}{
		{"inherited only", TierFunctor, 0.9, 0, 0, 0.9},
		{"empirical boost under cap", TierFunctor, 0.5, 0.5, 0, 0.65},
		{"empirical boost capped", TierFunctor, 0.5, 0.9, 0, 0.7},
		{"stigmergic weighted", TierFunctor, 0.5, 0, 0.75, 0.575},
		{"ceiling binds", TierFunctor, 1.0, 0.9, 0.75, 0.98},
		{"app ceiling binds", TierApp, 0.98, 0, 0, 0.75},
		{"all zero", TierApp, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Derivation{
				Name:                 "entity",
				Tier:                 tt.tier,
				InheritedConfidence:  tt.inherited,
				EmpiricalConfidence:  tt.empirical,
				StigmergicConfidence: tt.stigmergic,
			}
			if got := d.TotalConfidence(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("TotalConfidence() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTotalConfidenceNeverExceedsCeiling(t *testing.T) {
	for _, tier := range AllTiers() {
		d := Derivation{
			Tier:                 tier,
			InheritedConfidence:  1.0,
			EmpiricalConfidence:  1.0,
			StigmergicConfidence: 0.95,
		}
		if got := d.TotalConfidence(); got > tier.Ceiling() {
			t.Errorf("%s: TotalConfidence() = %v exceeds ceiling %v", tier, got, tier.Ceiling())
		}
	}
}

func TestWithEvidence(t *testing.T) {
	d := Derivation{
		Name:                 "entity",
		Tier:                 TierOperad,
		InheritedConfidence:  0.8,
		EmpiricalConfidence:  0.2,
		StigmergicConfidence: 0.1,
	}

	emp := 0.9
	updated := d.WithEvidence(&emp, nil)
	if updated.EmpiricalConfidence != 0.9 {
		t.Errorf("EmpiricalConfidence = %v, want 0.9", updated.EmpiricalConfidence)
	}
	if updated.StigmergicConfidence != 0.1 {
		t.Errorf("StigmergicConfidence = %v, want unchanged 0.1", updated.StigmergicConfidence)
	}
	if d.EmpiricalConfidence != 0.2 {
		t.Errorf("receiver mutated: EmpiricalConfidence = %v", d.EmpiricalConfidence)
	}

	stig := 0.5
	updated = d.WithEvidence(nil, &stig)
	if updated.EmpiricalConfidence != 0.2 {
		t.Errorf("EmpiricalConfidence = %v, want unchanged 0.2", updated.EmpiricalConfidence)
	}
	if updated.StigmergicConfidence != 0.5 {
		t.Errorf("StigmergicConfidence = %v, want 0.5", updated.StigmergicConfidence)
	}
}

func TestDecayEvidenceDecaysDrawsOnly(t *testing.T) {
	d := Derivation{
		Name: "entity",
		Tier: TierJewel,
		Draws: []PrincipleDraw{
			NewPrincipleDraw("tested", 0.9, EvidenceEmpirical, nil),
			NewPrincipleDraw("well-typed", 0.9, EvidenceCategorical, nil),
		},
		InheritedConfidence:  0.8,
		EmpiricalConfidence:  0.4,
		StigmergicConfidence: 0.3,
	}

	decayed := d.DecayEvidence(30)

	if decayed.Draws[0].Strength >= 0.9 {
		t.Errorf("empirical draw did not decay: %v", decayed.Draws[0].Strength)
	}
	if decayed.Draws[1].Strength != 0.9 {
		t.Errorf("categorical draw changed: %v", decayed.Draws[1].Strength)
	}
	// Top-level components only move through registry operations
	if decayed.InheritedConfidence != 0.8 || decayed.EmpiricalConfidence != 0.4 || decayed.StigmergicConfidence != 0.3 {
		t.Error("confidence components changed during draw decay")
	}
	if d.Draws[0].Strength != 0.9 {
		t.Errorf("receiver draws mutated: %v", d.Draws[0].Strength)
	}
}

func TestIsIndefeasible(t *testing.T) {
	tests := []struct {
		tier Tier
		want bool
	}{
		{TierAxiom, true},
		{TierBootstrap, true},
		{TierFunctor, false},
		{TierApp, false},
	}
	for _, tt := range tests {
		d := Derivation{Tier: tt.tier}
		if got := d.IsIndefeasible(); got != tt.want {
			t.Errorf("%s: IsIndefeasible() = %v, want %v", tt.tier, got, tt.want)
		}
	}
}
