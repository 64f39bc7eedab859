package clubdirectory

import "context"

// Repository persists the club directory. Entries are upserted by official name.
type Repository interface {
	UpsertEntries(ctx context.Context, entries []Entry) error
	ListEntries(ctx context.Context) ([]Entry, error)
}
