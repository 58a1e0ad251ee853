package domain

type Tier string

const (
	TierAxiom      Tier = "axiom"
	TierBootstrap  Tier = "bootstrap"
	TierFunctor    Tier = "functor"
	TierPolynomial Tier = "polynomial"
	TierOperad     Tier = "operad"
	TierJewel      Tier = "jewel"
	TierApp        Tier = "app"
)

// TierProfile attaches the two structural constants to a tier: the hard
// ceiling on total confidence and the rank used for monotonicity checks.
// Lower rank = more foundational; ceilings strictly decrease as rank grows.
type TierProfile struct {
	Tier    Tier    `json:"tier"`
	Ceiling float64 `json:"ceiling"`
	Rank    int     `json:"rank"`
}

var TierProfiles = map[Tier]TierProfile{
	TierAxiom:      {Tier: TierAxiom, Ceiling: 1.00, Rank: -1},
	TierBootstrap:  {Tier: TierBootstrap, Ceiling: 1.00, Rank: 0},
	TierFunctor:    {Tier: TierFunctor, Ceiling: 0.98, Rank: 1},
	TierPolynomial: {Tier: TierPolynomial, Ceiling: 0.95, Rank: 2},
	TierOperad:     {Tier: TierOperad, Ceiling: 0.92, Rank: 3},
	TierJewel:      {Tier: TierJewel, Ceiling: 0.85, Rank: 4},
	TierApp:        {Tier: TierApp, Ceiling: 0.75, Rank: 5},
}

// Profile returns the tier's constants. Unknown tiers get the most
// restrictive profile so a bad string can never inflate trust.
func (t Tier) Profile() TierProfile {
	if p, ok := TierProfiles[t]; ok {
		return p
	}
	return TierProfiles[TierApp]
}

func (t Tier) Ceiling() float64 {
	return t.Profile().Ceiling
}

func (t Tier) Rank() int {
	return t.Profile().Rank
}

// Indefeasible reports whether derivations at this tier are immune to
// evidence updates and decay. Only the axiomatic root and the bootstrap
// tier qualify.
func (t Tier) Indefeasible() bool {
	return t.Rank() <= 0
}

func ValidTier(s string) bool {
	_, ok := TierProfiles[Tier(s)]
	return ok
}

// AllTiers returns the ladder from most to least foundational.
func AllTiers() []Tier {
	return []Tier{TierAxiom, TierBootstrap, TierFunctor, TierPolynomial, TierOperad, TierJewel, TierApp}
}
