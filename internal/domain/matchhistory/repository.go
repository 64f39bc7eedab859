package matchhistory

import "context"

type Repository interface {
	Get(ctx context.Context, normalizedName string) (Document, bool, error)
	// Replace upserts the whole document for one player.
	Replace(ctx context.Context, doc Document) error
}
