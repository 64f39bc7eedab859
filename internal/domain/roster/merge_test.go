package roster_test

import (
	"reflect"
	"testing"

	"github.com/riskibarqy/paddle-roster/internal/domain/clubdirectory"
	"github.com/riskibarqy/paddle-roster/internal/domain/roster"
)

func ptr(v float64) *float64 { return &v }

func testResolver() *clubdirectory.Resolver {
	return clubdirectory.NewResolver([]clubdirectory.Entry{
		{OfficialName: "Winnetka"},
		{OfficialName: "Lake Forest Country Club", Aliases: []string{"LFCC"}},
	})
}

func TestMerge_UnionInvariant(t *testing.T) {
	t.Parallel()

	raw := []roster.RawEntry{
		{PlayerName: "Jane Doe", Rating: ptr(40.1), ProfileURL: "https://x/p=1", ClubName: "Winnetka 1"},
		{PlayerName: "Bob Smith", Rating: nil, ClubName: "LFCC 2"},
		{PlayerName: "jane  DOE", Rating: ptr(39.5), ProfileURL: "https://x/p=2", ClubName: "LFCC 3"},
		{PlayerName: "Jane Doe", Rating: nil, ClubName: "Winnetka Gold"},
	}

	got := roster.Merge(raw, testResolver())
	if len(got) != 2 {
		t.Fatalf("unexpected canonical count: got=%d want=2", len(got))
	}

	jane := got[0]
	if jane.NormalizedName != "jane doe" || jane.DisplayName != "Jane Doe" {
		t.Fatalf("unexpected identity: %+v", jane)
	}
	if jane.Rating == nil || *jane.Rating != 39.5 {
		t.Fatalf("last non-nil rating should win: %+v", jane.Rating)
	}
	if jane.ProfileURL != "https://x/p=1" {
		t.Fatalf("first profile url should win: got=%q", jane.ProfileURL)
	}
	wantClubs := []string{"Winnetka", "Lake Forest Country Club"}
	if !reflect.DeepEqual(jane.Clubs, wantClubs) {
		t.Fatalf("unexpected clubs: got=%v want=%v", jane.Clubs, wantClubs)
	}

	bob := got[1]
	if bob.Rating != nil {
		t.Fatalf("unrated player must keep nil rating: %+v", bob.Rating)
	}
	if !reflect.DeepEqual(bob.Clubs, []string{"Lake Forest Country Club"}) {
		t.Fatalf("unexpected clubs: %v", bob.Clubs)
	}
}

func TestMerge_Idempotent(t *testing.T) {
	t.Parallel()

	raw := []roster.RawEntry{
		{PlayerName: "Ann Lee", Rating: ptr(50), ClubName: "Winnetka 2"},
		{PlayerName: "Ann Lee", Rating: ptr(49), ClubName: "LFCC"},
	}
	first := roster.Merge(raw, testResolver())
	second := roster.Merge(raw, testResolver())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("merge must be deterministic:\nfirst=%+v\nsecond=%+v", first, second)
	}
}

func TestMerge_NilResolverKeepsTrimmedClub(t *testing.T) {
	t.Parallel()

	got := roster.Merge([]roster.RawEntry{{PlayerName: "Ann Lee", ClubName: " Winnetka 2 "}}, nil)
	if len(got) != 1 || !reflect.DeepEqual(got[0].Clubs, []string{"Winnetka 2"}) {
		t.Fatalf("unexpected merge: %+v", got)
	}
}

func TestMerge_SkipsBlankNames(t *testing.T) {
	t.Parallel()

	got := roster.Merge([]roster.RawEntry{{PlayerName: "   ", ClubName: "Winnetka"}}, testResolver())
	if len(got) != 0 {
		t.Fatalf("blank names must be dropped: %+v", got)
	}
}
