package domain

import "time"

const (
	// EmpiricalWeight scales the empirical score before the boost cap so
	// direct test evidence alone can never dominate inherited trust.
	EmpiricalWeight = 0.3
	// EmpiricalBoostCap bounds the contribution of empirical evidence.
	EmpiricalBoostCap = 0.2
	// StigmergicWeight scales usage-earned confidence in the total.
	StigmergicWeight = 0.1
)

// Derivation is an immutable trust record for one entity: its lineage,
// tier, principle draws, and the three confidence components. Updates
// produce replacement values; nothing mutates in place.
type Derivation struct {
	Name                 string          `json:"name"`
	Tier                 Tier            `json:"tier"`
	DerivesFrom          []string        `json:"derives_from,omitempty"`
	Draws                []PrincipleDraw `json:"draws,omitempty"`
	InheritedConfidence  float64         `json:"inherited_confidence"`
	EmpiricalConfidence  float64         `json:"empirical_confidence"`
	StigmergicConfidence float64         `json:"stigmergic_confidence"`
	RegisteredAt         time.Time       `json:"registered_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// TotalConfidence blends the three components under the tier ceiling:
// inherited trust, a capped empirical boost, and down-weighted usage
// evidence. The ceiling always wins.
func (d Derivation) TotalConfidence() float64 {
	boost := d.EmpiricalConfidence * EmpiricalWeight
	if boost > EmpiricalBoostCap {
		boost = EmpiricalBoostCap
	}
	total := d.InheritedConfidence + boost + d.StigmergicConfidence*StigmergicWeight
	if ceiling := d.Tier.Ceiling(); total > ceiling {
		return ceiling
	}
	return total
}

// WithEvidence returns a copy with the given components replaced. Nil
// means "leave unchanged". Indefeasibility is not enforced here; the
// registry is the sole writer and owns that check.
func (d Derivation) WithEvidence(empirical, stigmergic *float64) Derivation {
	out := d
	if empirical != nil {
		out.EmpiricalConfidence = *empirical
	}
	if stigmergic != nil {
		out.StigmergicConfidence = *stigmergic
	}
	out.UpdatedAt = time.Now().UTC()
	return out
}

// WithInherited returns a copy with inherited confidence replaced.
func (d Derivation) WithInherited(inherited float64) Derivation {
	out := d
	out.InheritedConfidence = inherited
	out.UpdatedAt = time.Now().UTC()
	return out
}

// DecayEvidence returns a copy whose principle draws have each decayed
// for the elapsed days. The top-level confidence components are refreshed
// only through registry operations.
func (d Derivation) DecayEvidence(days float64) Derivation {
	if len(d.Draws) == 0 {
		return d
	}
	out := d
	out.Draws = make([]PrincipleDraw, len(d.Draws))
	for i, p := range d.Draws {
		out.Draws[i] = p.Decay(days)
	}
	out.UpdatedAt = time.Now().UTC()
	return out
}

// IsIndefeasible reports whether this derivation rejects all evidence
// updates and decay (axiomatic root and bootstrap tier only).
func (d Derivation) IsIndefeasible() bool {
	return d.Tier.Indefeasible()
}

func (d Derivation) IsBootstrap() bool {
	return d.Tier == TierBootstrap
}

// IsRoot reports whether this is the single axiomatic entity with no
// lineage of its own.
func (d Derivation) IsRoot() bool {
	return d.Tier == TierAxiom && len(d.DerivesFrom) == 0
}
