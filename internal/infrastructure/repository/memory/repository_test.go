package memory

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/paddle-roster/internal/domain/club"
	"github.com/riskibarqy/paddle-roster/internal/domain/clubdirectory"
	"github.com/riskibarqy/paddle-roster/internal/domain/roster"
	"github.com/riskibarqy/paddle-roster/internal/domain/syncrun"
)

func TestClubRepository_UpsertByNameAndLeague(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewClubRepository()
	first := club.Club{Name: "Winnetka 1", League: "APTA Chicago", Division: "Division 1", RosterURL: "https://x/?team=1"}
	if err := repo.UpsertClubs(ctx, []club.Club{first}); err != nil {
		t.Fatalf("upsert clubs: %v", err)
	}

	moved := first
	moved.Division = "Division 2"
	moved.LastScrapedAt = time.Date(2025, 1, 6, 3, 0, 0, 0, time.UTC)
	other := first
	other.League = "APTA Chicago Women"
	if err := repo.UpsertClubs(ctx, []club.Club{moved, other}); err != nil {
		t.Fatalf("upsert clubs: %v", err)
	}

	got, err := repo.ListClubs(ctx)
	if err != nil {
		t.Fatalf("list clubs: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected club count: got=%d want=2", len(got))
	}
	if got[0].Division != "Division 2" || got[0].LastScrapedAt.IsZero() {
		t.Fatalf("upsert should update in place: %+v", got[0])
	}
}

func TestRosterRepository_ReplaceCanonicalSwapsWholeSet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewRosterRepository()
	rating := 40.0
	if err := repo.ReplaceCanonical(ctx, []roster.CanonicalRecord{
		{NormalizedName: "jane doe", DisplayName: "Jane Doe", Rating: &rating, Clubs: []string{"Winnetka"}},
		{NormalizedName: "bob smith", DisplayName: "Bob Smith"},
	}); err != nil {
		t.Fatalf("replace canonical: %v", err)
	}

	rating = 10
	got, ok, err := repo.GetCanonical(ctx, "jane doe")
	if err != nil || !ok {
		t.Fatalf("get canonical: ok=%v err=%v", ok, err)
	}
	if *got.Rating != 40 {
		t.Fatalf("stored record must not alias caller memory: %v", *got.Rating)
	}

	if err := repo.ReplaceCanonical(ctx, []roster.CanonicalRecord{{NormalizedName: "ann lee", DisplayName: "Ann Lee"}}); err != nil {
		t.Fatalf("replace canonical: %v", err)
	}
	all, err := repo.ListCanonical(ctx)
	if err != nil {
		t.Fatalf("list canonical: %v", err)
	}
	if len(all) != 1 || all[0].NormalizedName != "ann lee" {
		t.Fatalf("replace should drop absent players: %+v", all)
	}
	if _, ok, _ := repo.GetCanonical(ctx, "jane doe"); ok {
		t.Fatalf("index should follow the swapped set")
	}
}

func TestClubDirectoryRepository_UpsertByOfficialName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewClubDirectoryRepository(SeedClubDirectory())
	before, _ := repo.ListEntries(ctx)

	if err := repo.UpsertEntries(ctx, []clubdirectory.Entry{{OfficialName: "winnetka", Aliases: []string{"WCH"}}}); err != nil {
		t.Fatalf("upsert entries: %v", err)
	}
	after, _ := repo.ListEntries(ctx)
	if len(after) != len(before) {
		t.Fatalf("upsert must not duplicate: before=%d after=%d", len(before), len(after))
	}
}

func TestSyncRunRepository_Latest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewSyncRunRepository()
	_ = repo.Save(ctx, syncrun.Summary{RunID: "run_1", Kind: syncrun.KindRosterSync})
	_ = repo.Save(ctx, syncrun.Summary{RunID: "run_2", Kind: syncrun.KindRankingsSync})
	_ = repo.Save(ctx, syncrun.Summary{RunID: "run_3", Kind: syncrun.KindRosterSync})
	_ = repo.Save(ctx, syncrun.Summary{RunID: "run_1", Kind: syncrun.KindRosterSync, Status: syncrun.StatusSucceeded})

	got, ok, err := repo.Latest(ctx, syncrun.KindRosterSync)
	if err != nil || !ok {
		t.Fatalf("latest: ok=%v err=%v", ok, err)
	}
	if got.RunID != "run_3" {
		t.Fatalf("unexpected latest run: got=%s want=run_3", got.RunID)
	}

	first, ok, _ := repo.Get(ctx, "run_1")
	if !ok || first.Status != syncrun.StatusSucceeded {
		t.Fatalf("save should upsert by run id: %+v", first)
	}
}
