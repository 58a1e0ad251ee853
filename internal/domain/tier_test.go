package domain

import "testing"

func TestTierLadder(t *testing.T) {
	tests := []struct {
		tier    Tier
		ceiling float64
		rank    int
	}{
		{TierAxiom, 1.00, -1},
		{TierBootstrap, 1.00, 0},
		{TierFunctor, 0.98, 1},
		{TierPolynomial, 0.95, 2},
		{TierOperad, 0.92, 3},
		{TierJewel, 0.85, 4},
		{TierApp, 0.75, 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			if got := tt.tier.Ceiling(); got != tt.ceiling {
				t.Errorf("Ceiling() = %v, want %v", got, tt.ceiling)
			}
			if got := tt.tier.Rank(); got != tt.rank {
				t.Errorf("Rank() = %v, want %v", got, tt.rank)
			}
		})
	}
}

func TestTierCeilingsDecreaseWithRank(t *testing.T) {
	ladder := AllTiers()
	for i := 1; i < len(ladder); i++ {
		prev, cur := ladder[i-1].Profile(), ladder[i].Profile()
		if cur.Rank <= prev.Rank {
			t.Errorf("rank not increasing: %s (%d) after %s (%d)", cur.Tier, cur.Rank, prev.Tier, prev.Rank)
		}
		// Ceilings strictly decrease above the bootstrap tier
		if cur.Rank > 0 && cur.Ceiling >= prev.Ceiling {
			t.Errorf("ceiling not decreasing: %s (%v) after %s (%v)", cur.Tier, cur.Ceiling, prev.Tier, prev.Ceiling)
		}
	}
}

func TestTierIndefeasible(t *testing.T) {
	for _, tier := range AllTiers() {
		want := tier == TierAxiom || tier == TierBootstrap
		if got := tier.Indefeasible(); got != want {
			t.Errorf("%s.Indefeasible() = %v, want %v", tier, got, want)
		}
	}
}

func TestTierUnknownGetsMostRestrictiveProfile(t *testing.T) {
	p := Tier("galaxy").Profile()
	if p.Ceiling != TierApp.Ceiling() {
		t.Errorf("unknown tier ceiling = %v, want %v", p.Ceiling, TierApp.Ceiling())
	}
}

func TestValidTier(t *testing.T) {
	for _, tier := range AllTiers() {
		if !ValidTier(string(tier)) {
			t.Errorf("expected %q to be valid", tier)
		}
	}
	for _, s := range []string{"", "AXIOM", "unknown", "functor "} {
		if ValidTier(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestEvidenceDecayRates(t *testing.T) {
	permanent := []EvidenceType{EvidenceCategorical, EvidenceSomatic}
	for _, e := range permanent {
		if !e.Permanent() {
			t.Errorf("%s should be permanent", e)
		}
		if e.DailyDecayRate() != 0 {
			t.Errorf("%s decay rate = %v, want 0", e, e.DailyDecayRate())
		}
	}

	decaying := []EvidenceType{EvidenceEmpirical, EvidenceAesthetic, EvidenceGenealogical}
	for _, e := range decaying {
		if e.Permanent() {
			t.Errorf("%s should decay", e)
		}
		if rate := e.DailyDecayRate(); rate <= 0 || rate >= 1 {
			t.Errorf("%s decay rate = %v, want in (0,1)", e, rate)
		}
	}
}

func TestValidEvidenceType(t *testing.T) {
	validCases := []string{"categorical", "empirical", "aesthetic", "genealogical", "somatic"}
	for _, v := range validCases {
		if !ValidEvidenceType(v) {
			t.Errorf("expected %q to be valid", v)
		}
	}
	for _, v := range []string{"", "CATEGORICAL", "vibes"} {
		if ValidEvidenceType(v) {
			t.Errorf("expected %q to be invalid", v)
		}
	}
}
