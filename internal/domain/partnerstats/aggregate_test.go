package partnerstats

import (
	"testing"

	"github.com/riskibarqy/paddle-roster/internal/domain/matchhistory"
)

func played(partner string, result matchhistory.Result, before *float64) matchhistory.MatchRecord {
	return matchhistory.MatchRecord{
		Result:  result,
		Partner: &matchhistory.PlayerRating{Name: partner, Before: before},
	}
}

func f(v float64) *float64 { return &v }

func TestAggregate_WinRateArithmetic(t *testing.T) {
	t.Parallel()

	got := Aggregate([]matchhistory.MatchRecord{
		played("X", matchhistory.ResultWin, f(40)),
		played("X", matchhistory.ResultLoss, nil),
		played("X", matchhistory.ResultWin, f(41)),
	})
	if len(got) != 1 {
		t.Fatalf("unexpected partner count: got=%d want=1", len(got))
	}
	x := got[0]
	if x.MatchesPlayed != 3 || x.Wins != 2 || x.Losses != 1 {
		t.Fatalf("unexpected counts: %+v", x)
	}
	if x.WinRate != 66.7 {
		t.Fatalf("unexpected win rate: got=%v want=66.7", x.WinRate)
	}
	if x.AverageRating == nil || *x.AverageRating != 40.5 {
		t.Fatalf("unexpected average rating: %v", x.AverageRating)
	}
}

func TestAggregate_SortAndLiteralKeys(t *testing.T) {
	t.Parallel()

	got := Aggregate([]matchhistory.MatchRecord{
		played("Ann Lee", matchhistory.ResultWin, nil),
		played("ann lee", matchhistory.ResultLoss, nil),
		played("Bob Ray", matchhistory.ResultLoss, nil),
		played("Bob Ray", matchhistory.ResultLoss, nil),
		{Result: matchhistory.ResultWin},
	})
	if len(got) != 3 {
		t.Fatalf("spelling variants must stay separate: %+v", got)
	}
	if got[0].PartnerName != "Bob Ray" || got[1].PartnerName != "Ann Lee" || got[2].PartnerName != "ann lee" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[0].WinRate != 0 {
		t.Fatalf("unexpected win rate: %v", got[0].WinRate)
	}
	if got[1].AverageRating != nil {
		t.Fatalf("average rating must be nil without ratings: %v", *got[1].AverageRating)
	}
}

func TestAggregate_TiesKeepFirstSeenOrder(t *testing.T) {
	t.Parallel()

	got := Aggregate([]matchhistory.MatchRecord{
		played("Zed Park", matchhistory.ResultWin, nil),
		played("Amy Cole", matchhistory.ResultWin, nil),
	})
	if len(got) != 2 || got[0].PartnerName != "Zed Park" || got[1].PartnerName != "Amy Cole" {
		t.Fatalf("tied partners must keep first-seen order: %+v", got)
	}
}
