package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/paddle-roster/internal/domain/ratinghistory"
	qb "github.com/riskibarqy/paddle-roster/internal/platform/querybuilder"
)

type RatingHistoryRepository struct {
	db *sqlx.DB
}

func NewRatingHistoryRepository(db *sqlx.DB) *RatingHistoryRepository {
	return &RatingHistoryRepository{db: db}
}

func (r *RatingHistoryRepository) Append(ctx context.Context, records []ratinghistory.Record) error {
	models := make([]any, 0, len(records))
	for _, item := range records {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("append rating history: %w", err)
		}
		models = append(models, ratingHistoryTableModel{
			NormalizedName: item.NormalizedName,
			Rating:         item.Rating,
			RecordedAt:     item.RecordedAt.UTC(),
		})
	}
	return insertChunked(ctx, r.db, "rating_history", models, "")
}

func (r *RatingHistoryRepository) ListByPlayer(ctx context.Context, normalizedName string) ([]ratinghistory.Record, error) {
	query, args, err := qb.Select(ratingHistoryColumns...).From("rating_history").
		Where(qb.Eq("normalized_name", normalizedName)).
		OrderBy("recorded_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select rating history query: %w", err)
	}

	var rows []ratingHistoryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select rating history player=%s: %w", normalizedName, err)
	}

	out := make([]ratinghistory.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, ratinghistory.Record{
			NormalizedName: row.NormalizedName,
			Rating:         row.Rating,
			RecordedAt:     row.RecordedAt,
		})
	}
	return out, nil
}
