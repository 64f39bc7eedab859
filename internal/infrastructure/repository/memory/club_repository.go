package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/paddle-roster/internal/domain/club"
)

type ClubRepository struct {
	mu    sync.RWMutex
	order []string
	byKey map[string]club.Club
}

func NewClubRepository() *ClubRepository {
	return &ClubRepository{byKey: make(map[string]club.Club)}
}

func (r *ClubRepository) UpsertClubs(_ context.Context, items []club.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		if err := item.Validate(); err != nil {
			continue
		}
		key := item.Key()
		if _, exists := r.byKey[key]; !exists {
			r.order = append(r.order, key)
		}
		r.byKey[key] = item
	}
	return nil
}

func (r *ClubRepository) ListClubs(_ context.Context) ([]club.Club, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]club.Club, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.byKey[key])
	}
	return out, nil
}
