package store

import (
	"context"
	"errors"

	"github.com/Harshitk-cp/lineage/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a lookup matches no rows.
var ErrNotFound = errors.New("not found")

// JournalStore persists registry mutations to Postgres. The table is
// strictly append-only; commit order is the bigserial seq column.
type JournalStore struct {
	db *pgxpool.Pool
}

func NewJournalStore(db *pgxpool.Pool) *JournalStore {
	return &JournalStore{db: db}
}

// EnsureSchema creates the journal table if it does not exist.
func (s *JournalStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS derivation_journal (
			seq         BIGSERIAL PRIMARY KEY,
			id          UUID NOT NULL UNIQUE,
			kind        TEXT NOT NULL,
			entity      TEXT NOT NULL DEFAULT '',
			payload     JSONB,
			recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}

func (s *JournalStore) Append(ctx context.Context, entry *domain.JournalEntry) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO derivation_journal (id, kind, entity, payload, recorded_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		entry.ID, entry.Kind, entry.Entity, entry.Payload, entry.RecordedAt,
	)
	return err
}

func (s *JournalStore) Replay(ctx context.Context, fn func(domain.JournalEntry) error) error {
	rows, err := s.db.Query(ctx,
		`SELECT id, kind, entity, payload, recorded_at
		 FROM derivation_journal
		 ORDER BY seq`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var entry domain.JournalEntry
		if err := rows.Scan(&entry.ID, &entry.Kind, &entry.Entity, &entry.Payload, &entry.RecordedAt); err != nil {
			return err
		}
		if err := fn(entry); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (s *JournalStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRow(ctx, `SELECT count(*) FROM derivation_journal`).Scan(&n)
	return n, err
}
