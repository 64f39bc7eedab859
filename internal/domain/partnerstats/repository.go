package partnerstats

import "context"

type Repository interface {
	Get(ctx context.Context, normalizedName string) (Document, bool, error)
	Replace(ctx context.Context, doc Document) error
}
