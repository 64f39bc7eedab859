package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/paddle-roster/internal/domain/club"
	"github.com/riskibarqy/paddle-roster/internal/domain/roster"
	"github.com/riskibarqy/paddle-roster/internal/infrastructure/repository/memory"
	basecache "github.com/riskibarqy/paddle-roster/internal/platform/cache"
)

type countingRoster struct {
	*memory.RosterRepository
	listCalls int
}

func (r *countingRoster) ListCanonical(ctx context.Context) ([]roster.CanonicalRecord, error) {
	r.listCalls++
	return r.RosterRepository.ListCanonical(ctx)
}

func TestRosterRepository_ReplaceInvalidatesCachedList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := &countingRoster{RosterRepository: memory.NewRosterRepository()}
	repo := NewRosterRepository(next, basecache.NewStore[any](time.Minute))

	if err := repo.ReplaceCanonical(ctx, []roster.CanonicalRecord{{NormalizedName: "jane doe", DisplayName: "Jane Doe"}}); err != nil {
		t.Fatalf("replace canonical: %v", err)
	}
	for range 3 {
		items, err := repo.ListCanonical(ctx)
		if err != nil || len(items) != 1 {
			t.Fatalf("list canonical: items=%d err=%v", len(items), err)
		}
	}
	if next.listCalls != 1 {
		t.Fatalf("expected cached reads: got=%d want=1", next.listCalls)
	}

	if err := repo.ReplaceCanonical(ctx, []roster.CanonicalRecord{
		{NormalizedName: "jane doe", DisplayName: "Jane Doe"},
		{NormalizedName: "bob smith", DisplayName: "Bob Smith"},
	}); err != nil {
		t.Fatalf("replace canonical: %v", err)
	}
	items, err := repo.ListCanonical(ctx)
	if err != nil {
		t.Fatalf("list canonical: %v", err)
	}
	if len(items) != 2 || next.listCalls != 2 {
		t.Fatalf("replace must invalidate: items=%d calls=%d", len(items), next.listCalls)
	}

	got, ok, err := repo.GetCanonical(ctx, "bob smith")
	if err != nil || !ok || got.DisplayName != "Bob Smith" {
		t.Fatalf("get canonical: got=%+v ok=%v err=%v", got, ok, err)
	}
}

func TestClubRepository_UpsertInvalidatesCachedList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewClubRepository(memory.NewClubRepository(), basecache.NewStore[any](time.Minute))

	if items, err := repo.ListClubs(ctx); err != nil || len(items) != 0 {
		t.Fatalf("expected empty club list: items=%d err=%v", len(items), err)
	}
	if err := repo.UpsertClubs(ctx, []club.Club{{Name: "Winnetka 1", League: "APTA Chicago", RosterURL: "https://x/?team=1"}}); err != nil {
		t.Fatalf("upsert clubs: %v", err)
	}
	items, err := repo.ListClubs(ctx)
	if err != nil || len(items) != 1 {
		t.Fatalf("upsert must invalidate: items=%d err=%v", len(items), err)
	}
}
