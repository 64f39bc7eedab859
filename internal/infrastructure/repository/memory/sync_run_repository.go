package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/paddle-roster/internal/domain/syncrun"
)

type SyncRunRepository struct {
	mu    sync.RWMutex
	order []string
	runs  map[string]syncrun.Summary
}

func NewSyncRunRepository() *SyncRunRepository {
	return &SyncRunRepository{runs: make(map[string]syncrun.Summary)}
}

func (r *SyncRunRepository) Save(_ context.Context, summary syncrun.Summary) error {
	summary.Units = append([]syncrun.UnitResult(nil), summary.Units...)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runs[summary.RunID]; !exists {
		r.order = append(r.order, summary.RunID)
	}
	r.runs[summary.RunID] = summary
	return nil
}

func (r *SyncRunRepository) Get(_ context.Context, runID string) (syncrun.Summary, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summary, ok := r.runs[runID]
	if !ok {
		return syncrun.Summary{}, false, nil
	}
	summary.Units = append([]syncrun.UnitResult(nil), summary.Units...)
	return summary, true, nil
}

// Latest returns the most recently started run of kind.
func (r *SyncRunRepository) Latest(_ context.Context, kind syncrun.Kind) (syncrun.Summary, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.order) - 1; i >= 0; i-- {
		summary := r.runs[r.order[i]]
		if summary.Kind == kind {
			summary.Units = append([]syncrun.UnitResult(nil), summary.Units...)
			return summary, true, nil
		}
	}
	return syncrun.Summary{}, false, nil
}
