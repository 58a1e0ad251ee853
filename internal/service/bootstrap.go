package service

import (
	"time"

	"github.com/Harshitk-cp/lineage/internal/domain"
	"go.uber.org/zap"
)

// AxiomRootName is the single entity with no lineage; every other
// derivation ultimately traces back to it.
const AxiomRootName = "axiom.root"

// BootstrapNames is the fixed set of entities seeded directly under the
// axiomatic root.
var BootstrapNames = []string{
	"bootstrap.kernel",
	"bootstrap.verifier",
	"bootstrap.chronicle",
}

// seed populates the registry with the axiomatic root and the bootstrap
// set, all indefeasible with every confidence component fixed at 1.0 and
// a single categorical draw. Runs once at construction, before any lock
// contention is possible.
func (s *RegistryService) seed() {
	now := time.Now().UTC()

	root := domain.Derivation{
		Name: AxiomRootName,
		Tier: domain.TierAxiom,
		Draws: []domain.PrincipleDraw{
			domain.NewPrincipleDraw("axiomatic-ground", 1.0, domain.EvidenceCategorical, []string{"seed"}),
		},
		InheritedConfidence:  1.0,
		EmpiricalConfidence:  1.0,
		StigmergicConfidence: 1.0,
		RegisteredAt:         now,
		UpdatedAt:            now,
	}
	s.byName[root.Name] = root
	s.graph.AddNode(root.Name)
	s.usage[root.Name] = 0

	for _, name := range BootstrapNames {
		b := domain.Derivation{
			Name:        name,
			Tier:        domain.TierBootstrap,
			DerivesFrom: []string{AxiomRootName},
			Draws: []domain.PrincipleDraw{
				domain.NewPrincipleDraw("bootstrap-integrity", 1.0, domain.EvidenceCategorical, []string{"seed"}),
			},
			InheritedConfidence:  1.0,
			EmpiricalConfidence:  1.0,
			StigmergicConfidence: 1.0,
			RegisteredAt:         now,
			UpdatedAt:            now,
		}
		s.byName[name] = b
		// Seed edges cannot cycle; the graph is root plus leaves.
		_ = s.graph.AddEdges(name, b.DerivesFrom)
		s.usage[name] = 0
	}

	s.logger.Info("registry seeded",
		zap.String("axiom_root", AxiomRootName),
		zap.Int("bootstrap_entities", len(BootstrapNames)))
}
