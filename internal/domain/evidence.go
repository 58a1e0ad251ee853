package domain

type EvidenceType string

const (
	EvidenceCategorical  EvidenceType = "categorical"
	EvidenceEmpirical    EvidenceType = "empirical"
	EvidenceAesthetic    EvidenceType = "aesthetic"
	EvidenceGenealogical EvidenceType = "genealogical"
	EvidenceSomatic      EvidenceType = "somatic"
)

// EvidenceDecayRates maps each evidence type to its daily geometric decay
// rate. Categorical and somatic evidence is permanent.
var EvidenceDecayRates = map[EvidenceType]float64{
	EvidenceCategorical:  0,
	EvidenceEmpirical:    0.02,
	EvidenceAesthetic:    0.05,
	EvidenceGenealogical: 0.01,
	EvidenceSomatic:      0,
}

func (e EvidenceType) DailyDecayRate() float64 {
	return EvidenceDecayRates[e]
}

// Permanent reports whether draws of this evidence type are immune to decay.
func (e EvidenceType) Permanent() bool {
	return EvidenceDecayRates[e] == 0
}

func ValidEvidenceType(s string) bool {
	switch EvidenceType(s) {
	case EvidenceCategorical, EvidenceEmpirical, EvidenceAesthetic, EvidenceGenealogical, EvidenceSomatic:
		return true
	}
	return false
}
