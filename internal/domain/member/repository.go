package member

import "context"

// Repository is a read-only view of the registered member directory.
type Repository interface {
	ListMembers(ctx context.Context) ([]Member, error)
	ListByClub(ctx context.Context, club string) ([]Member, error)
	ListByNormalizedNames(ctx context.Context, normalizedNames []string) ([]Member, error)
}
