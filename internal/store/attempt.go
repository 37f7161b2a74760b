package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/tidwall/gjson"
)

var attemptColumns = []string{
	colID, colSequence, colTimestamp,
	"attempt_id", "task", "word_count", "essay",
	"feedback", "success", "error_message",
}

// attemptRepo implements AttemptRepo.
type attemptRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *attemptRepo) AppendAttempt(ctx context.Context, data WritingAttemptData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(attemptsTable).
		Columns(attemptColumns[1:]...).
		Values(
			seqNum, time.Now().UTC(),
			data.AttemptID, data.Task, data.WordCount, data.Essay,
			data.Feedback, data.Success, data.ErrorMessage,
		).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save writing attempt: %w", err)
	}
	return nil
}

// QueryAttempts returns attempts newest first. An empty task matches all tasks.
func (r *attemptRepo) QueryAttempts(ctx context.Context, task string, opts QueryOpts) ([]WritingAttemptRecord, error) {
	b := entsql.Dialect(dialect.SQLite)
	sel := b.Select(attemptColumns...).
		From(b.Table(attemptsTable)).
		OrderBy(entsql.Desc(colSequence))
	if task != "" {
		sel = sel.Where(entsql.EQ("task", task))
	}
	sel = applyQueryOpts(sel, opts)

	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query writing attempts: %w", err)
	}
	defer rows.Close()

	var records []WritingAttemptRecord
	for rows.Next() {
		var a WritingAttemptRecord
		if err := rows.Scan(
			&a.ID, &a.Sequence, &a.Timestamp,
			&a.AttemptID, &a.Task, &a.WordCount, &a.Essay,
			&a.Feedback, &a.Success, &a.ErrorMessage,
		); err != nil {
			return nil, fmt.Errorf("scan writing attempt: %w", err)
		}
		if a.Feedback != "" {
			a.OverallBand = gjson.Get(a.Feedback, "overallBand").Float()
		}
		records = append(records, a)
	}
	return records, rows.Err()
}
