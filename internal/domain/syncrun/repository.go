package syncrun

import "context"

// Repository keeps the run log; Save upserts by RunID.
type Repository interface {
	Save(ctx context.Context, summary Summary) error
	Get(ctx context.Context, runID string) (Summary, bool, error)
	Latest(ctx context.Context, kind Kind) (Summary, bool, error)
}
