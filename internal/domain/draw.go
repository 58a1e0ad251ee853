package domain

import (
	"math"
	"time"
)

// DrawStrengthFloor is the lowest strength a decaying draw can reach.
// Evidence fades, it never vanishes.
const DrawStrengthFloor = 0.1

// PrincipleDraw is one immutable unit of evidence that an entity
// instantiates a named principle.
type PrincipleDraw struct {
	Principle      string       `json:"principle"`
	Strength       float64      `json:"strength"`
	EvidenceType   EvidenceType `json:"evidence_type"`
	Sources        []string     `json:"sources,omitempty"`
	LastVerifiedAt time.Time    `json:"last_verified_at"`
}

// NewPrincipleDraw builds a draw with strength clamped into [0,1].
// Construction never fails.
func NewPrincipleDraw(principle string, strength float64, evidenceType EvidenceType, sources []string) PrincipleDraw {
	if strength < 0 {
		strength = 0
	}
	if strength > 1 {
		strength = 1
	}
	return PrincipleDraw{
		Principle:      principle,
		Strength:       strength,
		EvidenceType:   evidenceType,
		Sources:        sources,
		LastVerifiedAt: time.Now().UTC(),
	}
}

// Decay returns a copy with strength reduced for the elapsed days.
// Permanent evidence types are identity under decay.
func (p PrincipleDraw) Decay(days float64) PrincipleDraw {
	if days <= 0 || p.EvidenceType.Permanent() {
		return p
	}
	decayed := p.Strength * math.Pow(1-p.EvidenceType.DailyDecayRate(), days)
	if decayed < DrawStrengthFloor {
		decayed = DrawStrengthFloor
	}
	out := p
	out.Strength = decayed
	return out
}

func (p PrincipleDraw) IsCategorical() bool {
	return p.EvidenceType == EvidenceCategorical
}
