package cache

import (
	"context"

	"github.com/riskibarqy/paddle-roster/internal/domain/club"
	"github.com/riskibarqy/paddle-roster/internal/domain/roster"
	basecache "github.com/riskibarqy/paddle-roster/internal/platform/cache"
)

const (
	rosterKeyPrefix = "roster:"
	clubKeyPrefix   = "club:"
)

// RosterRepository caches canonical roster reads. Every replace drops the roster keys
// after the write so the next read observes the new roster.
type RosterRepository struct {
	next  roster.Repository
	cache *basecache.Store[any]
}

func NewRosterRepository(next roster.Repository, cache *basecache.Store[any]) *RosterRepository {
	return &RosterRepository{next: next, cache: cache}
}

func (r *RosterRepository) ReplaceRawEntries(ctx context.Context, entries []roster.RawEntry) error {
	return r.next.ReplaceRawEntries(ctx, entries)
}

func (r *RosterRepository) ListRawEntries(ctx context.Context) ([]roster.RawEntry, error) {
	return r.next.ListRawEntries(ctx)
}

func (r *RosterRepository) ReplaceCanonical(ctx context.Context, records []roster.CanonicalRecord) error {
	if err := r.next.ReplaceCanonical(ctx, records); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, rosterKeyPrefix)
	return nil
}

func (r *RosterRepository) ListCanonical(ctx context.Context) ([]roster.CanonicalRecord, error) {
	v, err := r.cache.GetOrLoad(ctx, rosterKeyPrefix+"canonical:list", func(ctx context.Context) (any, error) {
		items, err := r.next.ListCanonical(ctx)
		if err != nil {
			return nil, err
		}
		return copyRecords(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]roster.CanonicalRecord)
	return copyRecords(items), nil
}

func (r *RosterRepository) GetCanonical(ctx context.Context, normalizedName string) (roster.CanonicalRecord, bool, error) {
	key := rosterKeyPrefix + "canonical:name:" + normalizedName
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetCanonical(ctx, normalizedName)
		if err != nil {
			return nil, err
		}
		return cachedCanonical{value: item, exists: exists}, nil
	})
	if err != nil {
		return roster.CanonicalRecord{}, false, err
	}

	cached, _ := v.(cachedCanonical)
	return copyRecord(cached.value), cached.exists, nil
}

type cachedCanonical struct {
	value  roster.CanonicalRecord
	exists bool
}

func copyRecords(items []roster.CanonicalRecord) []roster.CanonicalRecord {
	out := make([]roster.CanonicalRecord, 0, len(items))
	for _, item := range items {
		out = append(out, copyRecord(item))
	}
	return out
}

func copyRecord(item roster.CanonicalRecord) roster.CanonicalRecord {
	if item.Rating != nil {
		rating := *item.Rating
		item.Rating = &rating
	}
	item.Clubs = append([]string(nil), item.Clubs...)
	return item
}

type ClubRepository struct {
	next  club.Repository
	cache *basecache.Store[any]
}

func NewClubRepository(next club.Repository, cache *basecache.Store[any]) *ClubRepository {
	return &ClubRepository{next: next, cache: cache}
}

func (r *ClubRepository) UpsertClubs(ctx context.Context, items []club.Club) error {
	if err := r.next.UpsertClubs(ctx, items); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, clubKeyPrefix)
	return nil
}

func (r *ClubRepository) ListClubs(ctx context.Context) ([]club.Club, error) {
	v, err := r.cache.GetOrLoad(ctx, clubKeyPrefix+"list", func(ctx context.Context) (any, error) {
		items, err := r.next.ListClubs(ctx)
		if err != nil {
			return nil, err
		}
		return append([]club.Club(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]club.Club)
	return append([]club.Club(nil), items...), nil
}
