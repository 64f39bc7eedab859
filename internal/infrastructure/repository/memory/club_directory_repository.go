package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/riskibarqy/paddle-roster/internal/domain/clubdirectory"
)

type ClubDirectoryRepository struct {
	mu      sync.RWMutex
	entries []clubdirectory.Entry
}

func NewClubDirectoryRepository(entries []clubdirectory.Entry) *ClubDirectoryRepository {
	repo := &ClubDirectoryRepository{}
	_ = repo.UpsertEntries(context.Background(), entries)
	return repo
}

func (r *ClubDirectoryRepository) UpsertEntries(_ context.Context, entries []clubdirectory.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range entries {
		name := strings.TrimSpace(item.OfficialName)
		if name == "" {
			continue
		}
		item.OfficialName = name
		item.Aliases = append([]string(nil), item.Aliases...)

		updated := false
		for idx := range r.entries {
			if strings.EqualFold(r.entries[idx].OfficialName, name) {
				r.entries[idx] = item
				updated = true
				break
			}
		}
		if !updated {
			r.entries = append(r.entries, item)
		}
	}
	return nil
}

func (r *ClubDirectoryRepository) ListEntries(_ context.Context) ([]clubdirectory.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]clubdirectory.Entry, 0, len(r.entries))
	for _, item := range r.entries {
		item.Aliases = append([]string(nil), item.Aliases...)
		out = append(out, item)
	}
	return out, nil
}
