package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/paddle-roster/internal/domain/syncrun"
	qb "github.com/riskibarqy/paddle-roster/internal/platform/querybuilder"
)

type SyncRunRepository struct {
	db *sqlx.DB
}

func NewSyncRunRepository(db *sqlx.DB) *SyncRunRepository {
	return &SyncRunRepository{db: db}
}

func (r *SyncRunRepository) Save(ctx context.Context, summary syncrun.Summary) error {
	encoded, err := encodeJSON(summary)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertModel("sync_runs", syncRunTableModel{
		RunID:     summary.RunID,
		Kind:      string(summary.Kind),
		Status:    string(summary.Status),
		StartedAt: summary.StartedAt.UTC(),
		Summary:   encoded,
	}, `ON CONFLICT (run_id)
DO UPDATE SET
    status = EXCLUDED.status,
    summary = EXCLUDED.summary,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build save sync run query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save sync run id=%s: %w", summary.RunID, err)
	}
	return nil
}

func (r *SyncRunRepository) Get(ctx context.Context, runID string) (syncrun.Summary, bool, error) {
	query, args, err := qb.Select(syncRunColumns...).From("sync_runs").
		Where(qb.Eq("run_id", runID)).
		ToSQL()
	if err != nil {
		return syncrun.Summary{}, false, fmt.Errorf("build get sync run query: %w", err)
	}
	return r.getOne(ctx, query, args)
}

func (r *SyncRunRepository) Latest(ctx context.Context, kind syncrun.Kind) (syncrun.Summary, bool, error) {
	query, args, err := qb.Select(syncRunColumns...).From("sync_runs").
		Where(qb.Eq("kind", string(kind))).
		OrderBy("started_at DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return syncrun.Summary{}, false, fmt.Errorf("build latest sync run query: %w", err)
	}
	return r.getOne(ctx, query, args)
}

func (r *SyncRunRepository) getOne(ctx context.Context, query string, args []any) (syncrun.Summary, bool, error) {
	var row syncRunTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return syncrun.Summary{}, false, nil
		}
		return syncrun.Summary{}, false, fmt.Errorf("get sync run: %w", err)
	}

	var summary syncrun.Summary
	if err := decodeJSON(row.Summary, &summary); err != nil {
		return syncrun.Summary{}, false, fmt.Errorf("sync run id=%s: %w", row.RunID, err)
	}
	return summary, true, nil
}
