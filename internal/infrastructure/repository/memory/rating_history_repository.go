package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/paddle-roster/internal/domain/ratinghistory"
)

// RatingHistoryRepository is append-only.
type RatingHistoryRepository struct {
	mu       sync.RWMutex
	byPlayer map[string][]ratinghistory.Record
}

func NewRatingHistoryRepository() *RatingHistoryRepository {
	return &RatingHistoryRepository{byPlayer: make(map[string][]ratinghistory.Record)}
}

func (r *RatingHistoryRepository) Append(_ context.Context, records []ratinghistory.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range records {
		if err := item.Validate(); err != nil {
			return err
		}
		r.byPlayer[item.NormalizedName] = append(r.byPlayer[item.NormalizedName], item)
	}
	return nil
}

func (r *RatingHistoryRepository) ListByPlayer(_ context.Context, normalizedName string) ([]ratinghistory.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.byPlayer[normalizedName]
	out := make([]ratinghistory.Record, 0, len(rows))
	out = append(out, rows...)
	return out, nil
}
