package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Harshitk-cp/lineage/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LedgerService wraps the registry with an append-only journal. The
// registry itself performs no I/O; every successful mutation is recorded
// here so the in-memory state can be rebuilt on restart by replaying the
// journal over a freshly seeded registry.
type LedgerService struct {
	registry *RegistryService
	journal  domain.JournalStore
	logger   *zap.Logger
}

// NewLedgerService builds the ledger. A nil journal means memory-only
// operation: mutations apply but nothing is recorded.
func NewLedgerService(registry *RegistryService, journal domain.JournalStore, logger *zap.Logger) *LedgerService {
	return &LedgerService{registry: registry, journal: journal, logger: logger}
}

type registerPayload struct {
	Tier        domain.Tier            `json:"tier"`
	DerivesFrom []string               `json:"derives_from,omitempty"`
	Draws       []domain.PrincipleDraw `json:"draws,omitempty"`
}

type evidencePayload struct {
	AshcScore  *float64 `json:"ashc_score,omitempty"`
	UsageCount *int     `json:"usage_count,omitempty"`
}

type decayPayload struct {
	Days float64 `json:"days"`
}

func (s *LedgerService) Register(ctx context.Context, name string, derivesFrom []string, draws []domain.PrincipleDraw, tier domain.Tier) (domain.Derivation, error) {
	d, err := s.registry.Register(name, derivesFrom, draws, tier)
	if err != nil {
		return domain.Derivation{}, err
	}

	err = s.append(ctx, domain.JournalRegister, name, registerPayload{
		Tier:        tier,
		DerivesFrom: derivesFrom,
		Draws:       draws,
	})
	return d, err
}

func (s *LedgerService) UpdateEvidence(ctx context.Context, name string, ashcScore *float64, usageCount *int) (domain.Derivation, error) {
	d, err := s.registry.UpdateEvidence(name, ashcScore, usageCount)
	if err != nil {
		return domain.Derivation{}, err
	}

	err = s.append(ctx, domain.JournalEvidence, name, evidencePayload{
		AshcScore:  ashcScore,
		UsageCount: usageCount,
	})
	return d, err
}

func (s *LedgerService) IncrementUsage(ctx context.Context, name string) (int, error) {
	count, err := s.registry.IncrementUsage(name)
	if err != nil {
		return 0, err
	}

	err = s.append(ctx, domain.JournalUsage, name, nil)
	return count, err
}

func (s *LedgerService) RunDecay(ctx context.Context, days float64) (int, error) {
	changed := s.registry.DecayAll(days)
	if changed == 0 {
		return 0, nil
	}

	err := s.append(ctx, domain.JournalDecay, "", decayPayload{Days: days})
	return changed, err
}

// Restore replays the full journal into the registry. The registry must
// be freshly seeded; seeded entities are not journaled because the seed
// is deterministic.
func (s *LedgerService) Restore(ctx context.Context) error {
	if s.journal == nil {
		return nil
	}

	replayed := 0
	err := s.journal.Replay(ctx, func(entry domain.JournalEntry) error {
		if err := s.apply(entry); err != nil {
			return fmt.Errorf("journal entry %s (%s): %w", entry.ID, entry.Kind, err)
		}
		replayed++
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("registry restored from journal",
		zap.Int("entries_replayed", replayed),
		zap.Int("derivations", s.registry.Count()))
	return nil
}

func (s *LedgerService) apply(entry domain.JournalEntry) error {
	switch entry.Kind {
	case domain.JournalRegister:
		var p registerPayload
		if err := json.Unmarshal(entry.Payload, &p); err != nil {
			return err
		}
		_, err := s.registry.Register(entry.Entity, p.DerivesFrom, p.Draws, p.Tier)
		return err

	case domain.JournalEvidence:
		var p evidencePayload
		if err := json.Unmarshal(entry.Payload, &p); err != nil {
			return err
		}
		_, err := s.registry.UpdateEvidence(entry.Entity, p.AshcScore, p.UsageCount)
		return err

	case domain.JournalUsage:
		_, err := s.registry.IncrementUsage(entry.Entity)
		return err

	case domain.JournalDecay:
		var p decayPayload
		if err := json.Unmarshal(entry.Payload, &p); err != nil {
			return err
		}
		s.registry.DecayAll(p.Days)
		return nil

	default:
		return fmt.Errorf("unknown journal kind %q", entry.Kind)
	}
}

func (s *LedgerService) append(ctx context.Context, kind domain.JournalKind, entity string, payload any) error {
	if s.journal == nil {
		return nil
	}

	var raw []byte
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal journal payload: %w", err)
		}
	}

	entry := &domain.JournalEntry{
		ID:         uuid.New(),
		Kind:       kind,
		Entity:     entity,
		Payload:    raw,
		RecordedAt: time.Now().UTC(),
	}
	if err := s.journal.Append(ctx, entry); err != nil {
		s.logger.Error("journal append failed",
			zap.String("kind", string(kind)),
			zap.String("entity", entity),
			zap.Error(err))
		return err
	}
	return nil
}
