package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/paddle-roster/internal/domain/roster"
)

// RosterRepository builds each replacement outside the lock and swaps it in one step.
type RosterRepository struct {
	mu        sync.RWMutex
	raw       []roster.RawEntry
	canonical []roster.CanonicalRecord
	byName    map[string]int
}

func NewRosterRepository() *RosterRepository {
	return &RosterRepository{byName: make(map[string]int)}
}

func (r *RosterRepository) ReplaceRawEntries(_ context.Context, entries []roster.RawEntry) error {
	next := make([]roster.RawEntry, 0, len(entries))
	for _, item := range entries {
		next = append(next, copyRawEntry(item))
	}

	r.mu.Lock()
	r.raw = next
	r.mu.Unlock()
	return nil
}

func (r *RosterRepository) ListRawEntries(_ context.Context) ([]roster.RawEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.RawEntry, 0, len(r.raw))
	for _, item := range r.raw {
		out = append(out, copyRawEntry(item))
	}
	return out, nil
}

func (r *RosterRepository) ReplaceCanonical(_ context.Context, records []roster.CanonicalRecord) error {
	next := make([]roster.CanonicalRecord, 0, len(records))
	index := make(map[string]int, len(records))
	for _, item := range records {
		if _, dup := index[item.NormalizedName]; dup || item.NormalizedName == "" {
			continue
		}
		index[item.NormalizedName] = len(next)
		next = append(next, copyCanonical(item))
	}

	r.mu.Lock()
	r.canonical = next
	r.byName = index
	r.mu.Unlock()
	return nil
}

func (r *RosterRepository) ListCanonical(_ context.Context) ([]roster.CanonicalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.CanonicalRecord, 0, len(r.canonical))
	for _, item := range r.canonical {
		out = append(out, copyCanonical(item))
	}
	return out, nil
}

func (r *RosterRepository) GetCanonical(_ context.Context, normalizedName string) (roster.CanonicalRecord, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byName[normalizedName]
	if !ok {
		return roster.CanonicalRecord{}, false, nil
	}
	return copyCanonical(r.canonical[idx]), true, nil
}

func copyRawEntry(item roster.RawEntry) roster.RawEntry {
	item.Rating = copyFloat(item.Rating)
	return item
}

func copyCanonical(item roster.CanonicalRecord) roster.CanonicalRecord {
	item.Rating = copyFloat(item.Rating)
	item.Clubs = append([]string(nil), item.Clubs...)
	return item
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
