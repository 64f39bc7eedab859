package club

import "context"

// Repository upserts clubs by (Name, League); re-scraping never duplicates a row.
type Repository interface {
	UpsertClubs(ctx context.Context, items []Club) error
	ListClubs(ctx context.Context) ([]Club, error)
}
