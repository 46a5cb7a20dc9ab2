package sqlite

import (
	"context"
	"database/sql"

	"github.com/akontos/protokolo/internal/registry/domain"
)

// counterStore implements domain.CounterStore using SQLite.
//
// Allocation is a single upsert with RETURNING, so the read of the current
// value, the increment and the write are one statement. SQLite serializes
// writers, which makes the statement atomic per key: two concurrent
// allocations on the same key can never observe the same current value.
type counterStore struct {
	db *sql.DB
}

// newCounterStore creates a new counterStore instance.
func newCounterStore(db *sql.DB) *counterStore {
	return &counterStore{db: db}
}

// Ensure counterStore implements domain.CounterStore.
var _ domain.CounterStore = (*counterStore)(nil)

// AllocateNext returns the next value for the given scope key, starting at
// start for a fresh scope. Failures surface as AllocationError with no
// counter state change visible to any caller.
func (s *counterStore) AllocateNext(ctx context.Context, key string, start int64) (int64, error) {
	var value int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO counters (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = value + 1
		 RETURNING value`,
		key, start,
	).Scan(&value)
	if err != nil {
		return 0, &domain.AllocationError{Key: key, Err: err}
	}
	return value, nil
}
