package service

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/Harshitk-cp/lineage/internal/domain"
	"go.uber.org/zap"
)

const (
	// InheritedFloor keeps inherited confidence from collapsing entirely
	// even under a weak ancestry product.
	InheritedFloor = 0.3
	// StigmergicCap bounds usage-earned confidence.
	StigmergicCap = 0.95
	// StigmergicLogScale converts log10(usage) into confidence.
	StigmergicLogScale = 0.25
	// UsageRecomputeStride is how many usage increments pass between
	// stigmergic recomputations.
	UsageRecomputeStride = 10
)

// RegistryService owns the only mutable state in the engine: the keyed
// map of derivations, the lineage graph, and per-entity usage counters.
// All mutations run under the write lock; reads see only fully committed
// immutable Derivation values.
type RegistryService struct {
	mu     sync.RWMutex
	byName map[string]domain.Derivation
	graph  *domain.DerivationGraph
	usage  map[string]int
	logger *zap.Logger
}

func NewRegistryService(logger *zap.Logger) *RegistryService {
	s := &RegistryService{
		byName: make(map[string]domain.Derivation),
		graph:  domain.NewDerivationGraph(),
		usage:  make(map[string]int),
		logger: logger,
	}
	s.seed()
	return s
}

// Register admits a new derivation. It validates the name is fresh, every
// parent exists, the tier is no more foundational than any parent, and
// the new edges keep the graph acyclic; any failure commits nothing.
func (s *RegistryService) Register(name string, derivesFrom []string, draws []domain.PrincipleDraw, tier domain.Tier) (domain.Derivation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[name]; exists {
		return domain.Derivation{}, fmt.Errorf("%w: %s", domain.ErrDuplicateName, name)
	}

	inherited := 1.0
	if len(derivesFrom) > 0 {
		product := 1.0
		for _, parentName := range derivesFrom {
			parent, ok := s.byName[parentName]
			if !ok {
				return domain.Derivation{}, fmt.Errorf("%w: %s", domain.ErrUnknownParent, parentName)
			}
			if tier.Rank() < parent.Tier.Rank() {
				return domain.Derivation{}, fmt.Errorf("%w: %s (%s, rank %d) cannot derive from %s (%s, rank %d)",
					domain.ErrMonotonicity, name, tier, tier.Rank(), parentName, parent.Tier, parent.Tier.Rank())
			}
			product *= parent.TotalConfidence()
		}
		inherited = math.Max(InheritedFloor, product)
	}

	if err := s.graph.AddEdges(name, derivesFrom); err != nil {
		return domain.Derivation{}, err
	}

	now := time.Now().UTC()
	d := domain.Derivation{
		Name:                name,
		Tier:                tier,
		DerivesFrom:         append([]string(nil), derivesFrom...),
		Draws:               append([]domain.PrincipleDraw(nil), draws...),
		InheritedConfidence: inherited,
		// Empirical and stigmergic confidence are earned, never granted.
		EmpiricalConfidence:  0,
		StigmergicConfidence: 0,
		RegisteredAt:         now,
		UpdatedAt:            now,
	}
	s.byName[name] = d
	s.usage[name] = 0

	s.logger.Info("derivation registered",
		zap.String("name", name),
		zap.String("tier", string(tier)),
		zap.Strings("derives_from", derivesFrom),
		zap.Float64("inherited_confidence", inherited),
		zap.Float64("total_confidence", d.TotalConfidence()))

	return d, nil
}

// UpdateEvidence overwrites empirical confidence (if ashcScore is given)
// and recomputes stigmergic confidence (if usageCount is given), then
// propagates inherited-confidence recomputation to every transitive
// dependent. Axiom and bootstrap entities reject all updates.
func (s *RegistryService) UpdateEvidence(name string, ashcScore *float64, usageCount *int) (domain.Derivation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.byName[name]
	if !ok {
		return domain.Derivation{}, fmt.Errorf("%w: %s", domain.ErrNotFound, name)
	}
	if d.IsIndefeasible() {
		return domain.Derivation{}, fmt.Errorf("%w: %s", domain.ErrIndefeasible, name)
	}

	var stigmergic *float64
	if usageCount != nil {
		s.usage[name] = *usageCount
		v := stigmergicFromUsage(*usageCount)
		stigmergic = &v
	}

	updated := d.WithEvidence(ashcScore, stigmergic)
	s.byName[name] = updated
	s.propagateFrom(name)

	fields := []zap.Field{
		zap.String("name", name),
		zap.Float64("total_confidence", updated.TotalConfidence()),
	}
	if ashcScore != nil {
		fields = append(fields, zap.Float64("empirical_confidence", *ashcScore))
	}
	if stigmergic != nil {
		fields = append(fields, zap.Float64("stigmergic_confidence", *stigmergic))
	}
	s.logger.Info("evidence updated", fields...)

	return updated, nil
}

// IncrementUsage bumps the entity's usage counter. Every tenth increment
// recomputes stigmergic confidence and propagates. Indefeasible entities
// still count usage but their confidence never moves.
func (s *RegistryService) IncrementUsage(name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrNotFound, name)
	}

	s.usage[name]++
	count := s.usage[name]

	if count%UsageRecomputeStride == 0 && !d.IsIndefeasible() {
		v := stigmergicFromUsage(count)
		s.byName[name] = d.WithEvidence(nil, &v)
		s.propagateFrom(name)

		s.logger.Debug("stigmergic confidence recomputed",
			zap.String("name", name),
			zap.Int("usage_count", count),
			zap.Float64("stigmergic_confidence", v))
	}

	return count, nil
}

// DecayAll replaces every non-indefeasible derivation with a copy whose
// principle draws have decayed for the elapsed days, and returns how many
// actually changed. Indefeasible entries are skipped, not errored.
func (s *RegistryService) DecayAll(days float64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := 0
	for name, d := range s.byName {
		if d.IsIndefeasible() {
			continue
		}
		decayed := d.DecayEvidence(days)
		if !drawsEqual(d.Draws, decayed.Draws) {
			s.byName[name] = decayed
			changed++
		}
	}

	if changed > 0 {
		s.logger.Info("decay cycle complete",
			zap.Float64("days", days),
			zap.Int("derivations_decayed", changed))
	}
	return changed
}

// Get returns the derivation for name.
func (s *RegistryService) Get(name string) (domain.Derivation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.byName[name]
	if !ok {
		return domain.Derivation{}, fmt.Errorf("%w: %s", domain.ErrNotFound, name)
	}
	return d, nil
}

// List returns every derivation sorted by name.
func (s *RegistryService) List() []domain.Derivation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Derivation, 0, len(s.byName))
	for _, d := range s.byName {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *RegistryService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byName)
}

// Ancestors returns the transitive parent closure of name.
func (s *RegistryService) Ancestors(name string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph.Ancestors(name)
}

// Dependents returns the transitive child closure of name.
func (s *RegistryService) Dependents(name string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph.Descendants(name)
}

// UsageCount returns the current usage counter for name.
func (s *RegistryService) UsageCount(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usage[name]
}

// propagateFrom recomputes inherited confidence for every dependent of
// name, revisiting dependents of recomputed nodes until the wave settles.
// Recomputation is idempotent over an acyclic graph, so revisits converge.
// Caller must hold the write lock.
func (s *RegistryService) propagateFrom(name string) {
	queue := append([]string(nil), s.graph.Children(name)...)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		d, ok := s.byName[current]
		if !ok {
			continue
		}

		product := 1.0
		for _, parentName := range d.DerivesFrom {
			if parent, ok := s.byName[parentName]; ok {
				product *= parent.TotalConfidence()
			}
		}
		inherited := math.Max(InheritedFloor, product)

		if inherited != d.InheritedConfidence {
			s.byName[current] = d.WithInherited(inherited)
			s.logger.Debug("inherited confidence propagated",
				zap.String("name", current),
				zap.Float64("inherited_confidence", inherited))
		}
		queue = append(queue, s.graph.Children(current)...)
	}
}

func stigmergicFromUsage(count int) float64 {
	if count < 1 {
		count = 1
	}
	v := StigmergicLogScale * math.Log10(float64(count))
	if v > StigmergicCap {
		v = StigmergicCap
	}
	return v
}

func drawsEqual(a, b []domain.PrincipleDraw) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Strength != b[i].Strength {
			return false
		}
	}
	return true
}
