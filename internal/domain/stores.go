package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JournalKind tags one append-only journal record.
type JournalKind string

const (
	JournalRegister JournalKind = "register"
	JournalEvidence JournalKind = "evidence"
	JournalUsage    JournalKind = "usage"
	JournalDecay    JournalKind = "decay"
)

func ValidJournalKind(k string) bool {
	switch JournalKind(k) {
	case JournalRegister, JournalEvidence, JournalUsage, JournalDecay:
		return true
	}
	return false
}

// JournalEntry is one recorded registry mutation. The journal is the
// external source of truth the in-memory registry is rebuilt from on
// restart; entries are never updated or deleted.
type JournalEntry struct {
	ID         uuid.UUID   `json:"id"`
	Kind       JournalKind `json:"kind"`
	Entity     string      `json:"entity"`
	Payload    []byte      `json:"payload,omitempty"`
	RecordedAt time.Time   `json:"recorded_at"`
}

type JournalStore interface {
	Append(ctx context.Context, entry *JournalEntry) error
	// Replay streams all entries in commit order. The callback returning
	// an error aborts the replay.
	Replay(ctx context.Context, fn func(JournalEntry) error) error
	Count(ctx context.Context) (int64, error)
}
