package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter numbers rows across both event tables so an LLM call can
// be ordered against the writing attempt it produced. Row ids are per table
// and cannot do that.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

const (
	sequenceTableDDL = `CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`
	sequenceSeed = `INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`
	sequenceBump = `UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`
)

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	for _, stmt := range []string{sequenceTableDDL, sequenceSeed} {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("init global sequence: %w", err)
		}
	}
	return &sequenceCounter{db: db}, nil
}

// Next returns the current value and advances the counter. The first call
// on a fresh database returns 1.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var n int64
	if err := sc.db.QueryRowContext(ctx, sequenceBump).Scan(&n); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return n, nil
}

// applyQueryOpts narrows sel by sequence range, time range and limit.
func applyQueryOpts(sel *entsql.Selector, opts QueryOpts) *entsql.Selector {
	var where []*entsql.Predicate
	add := func(ok bool, p *entsql.Predicate) {
		if ok {
			where = append(where, p)
		}
	}
	add(opts.After > 0, entsql.GT(colSequence, opts.After))
	add(opts.Before > 0, entsql.LT(colSequence, opts.Before))
	add(!opts.From.IsZero(), entsql.GTE(colTimestamp, opts.From))
	add(!opts.To.IsZero(), entsql.LTE(colTimestamp, opts.To))

	if len(where) > 0 {
		sel = sel.Where(entsql.And(where...))
	}
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}
	return sel
}
