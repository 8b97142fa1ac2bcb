package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

const sequenceDDL = `CREATE TABLE IF NOT EXISTS global_sequence (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	next_val INTEGER NOT NULL DEFAULT 1
)`

// sequenceCounter hands out the global ordering number stamped onto every
// event row. Events of different kinds live in separate ent tables, and a
// per-table auto-increment cannot order a review event relative to a badge
// event, so a single shared counter assigns one increasing value across
// every kind. The log is append-only; a ReviewEvent's sequence position is
// also its review iteration order.
//
// The counter bypasses ent and issues raw SQL: ent has no notion of an
// atomic database counter. RETURNING makes the increment a single
// statement, and the mutex keeps concurrent in-process callers from
// interleaving on the same connection.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	if _, err := db.Exec(sequenceDDL); err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}
	// Seed the singleton row; a no-op on every open after the first.
	if _, err := db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &sequenceCounter{db: db}, nil
}

// Next returns the current sequence value and advances the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	row := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`)

	var n int64
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return n, nil
}
