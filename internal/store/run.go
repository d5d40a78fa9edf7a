package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// runRepo implements RunRepo.
type runRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

var runColumns = []string{
	"id", "sequence", "timestamp", "source", "texts", "accepted_texts",
	"questions_per_text", "difficulty", "records", "output_path", "model",
	"success", "error_message",
}

func (r *runRepo) AppendRun(ctx context.Context, data RunData) (string, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return "", fmt.Errorf("next sequence: %w", err)
	}

	id := uuid.NewString()
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(tableRuns).
		Columns(runColumns...).
		Values(
			id, seqNum, time.Now().UTC().UnixNano(), data.Source, data.Texts, data.AcceptedTexts,
			data.QuestionsPerText, data.Difficulty, data.Records, data.OutputPath, data.Model,
			data.Success, data.ErrorMessage,
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return "", fmt.Errorf("save run: %w", err)
	}
	return id, nil
}

func (r *runRepo) ListRuns(ctx context.Context, opts QueryOpts) ([]RunRecord, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(runColumns...).
		From(entsql.Table(tableRuns)).
		OrderBy(entsql.Desc("sequence"))
	applyQueryOpts(sel, opts)

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var ts int64
		if err := rows.Scan(
			&rec.ID, &rec.Sequence, &ts, &rec.Source, &rec.Texts, &rec.AcceptedTexts,
			&rec.QuestionsPerText, &rec.Difficulty, &rec.Records, &rec.OutputPath, &rec.Model,
			&rec.Success, &rec.ErrorMessage,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rec.Timestamp = time.Unix(0, ts).UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return records, nil
}
