package roster

import "context"

// Repository stores the raw observation set and the canonical roster.
// Both Replace methods swap the whole collection at once; readers see either the old or the new set.
type Repository interface {
	ReplaceRawEntries(ctx context.Context, entries []RawEntry) error
	ListRawEntries(ctx context.Context) ([]RawEntry, error)

	ReplaceCanonical(ctx context.Context, records []CanonicalRecord) error
	ListCanonical(ctx context.Context) ([]CanonicalRecord, error)
	GetCanonical(ctx context.Context, normalizedName string) (CanonicalRecord, bool, error)
}
