package matchhistory

import "testing"

func rating(v float64) *float64 { return &v }

func fourPlayerMatch() MatchRecord {
	return MatchRecord{
		HomeTeam: "Winnetka 2",
		AwayTeam: "Skokie Valley 1",
		Players: []PlayerRating{
			{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"},
		},
		TeamRatings: TeamRatings{
			Before: [2]*float64{rating(80), rating(82)},
			After:  [2]*float64{rating(79), rating(83)},
		},
	}
}

func playerNames(items []PlayerRating) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out
}

func TestAssignSides_HomeSubject(t *testing.T) {
	t.Parallel()

	got := AssignSides("B", fourPlayerMatch())
	if got.Side != SideHome {
		t.Fatalf("unexpected side: got=%s want=%s", got.Side, SideHome)
	}
	if got.Partner == nil || got.Partner.Name != "A" {
		t.Fatalf("unexpected partner: %+v", got.Partner)
	}
	if opp := playerNames(got.Opponent.Players); len(opp) != 2 || opp[0] != "C" || opp[1] != "D" {
		t.Fatalf("unexpected opponents: %v", opp)
	}
	if got.Opponent.TeamName != "Skokie Valley 1" {
		t.Fatalf("unexpected opponent team: %q", got.Opponent.TeamName)
	}
	if *got.TeamRatingBefore != 80 || *got.Opponent.RatingAfter != 83 {
		t.Fatalf("home team panel should apply: mine=%v theirs=%v", *got.TeamRatingBefore, *got.Opponent.RatingAfter)
	}
}

func TestAssignSides_AwaySubject(t *testing.T) {
	t.Parallel()

	got := AssignSides("D", fourPlayerMatch())
	if got.Side != SideAway {
		t.Fatalf("unexpected side: got=%s want=%s", got.Side, SideAway)
	}
	if got.Partner == nil || got.Partner.Name != "C" {
		t.Fatalf("unexpected partner: %+v", got.Partner)
	}
	if opp := playerNames(got.Opponent.Players); len(opp) != 2 || opp[0] != "A" || opp[1] != "B" {
		t.Fatalf("unexpected opponents: %v", opp)
	}
	if *got.TeamRatingAfter != 83 || *got.Opponent.RatingBefore != 80 {
		t.Fatalf("away team panel should apply")
	}
}

func TestAssignSides_LastNameFallback(t *testing.T) {
	t.Parallel()

	match := fourPlayerMatch()
	match.Players = []PlayerRating{{Name: "Tom Hill"}, {Name: "Kate Ruiz"}, {Name: "Robert Jones"}, {Name: "Al Park"}}

	got := AssignSides("Bob Jones", match)
	if got.Side != SideAway || got.Partner == nil || got.Partner.Name != "Al Park" {
		t.Fatalf("last name fallback failed: side=%s partner=%+v", got.Side, got.Partner)
	}
}

func TestAssignSides_SubjectMissing(t *testing.T) {
	t.Parallel()

	got := AssignSides("Zed Nobody", fourPlayerMatch())
	if got.Partner != nil {
		t.Fatalf("partner must be nil: %+v", got.Partner)
	}
	if got.Opponent.Players == nil || len(got.Opponent.Players) != 0 {
		t.Fatalf("opponents must be an empty list: %#v", got.Opponent.Players)
	}
	if got.Side != SideUnknown {
		t.Fatalf("unexpected side: %s", got.Side)
	}
}

func TestAssignSides_IgnoresPlayersPastFourth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		players []string
	}{
		{name: "subject is fifth anchor", players: []string{"A", "B", "C", "D", "E Subject"}},
		{name: "subject is sixth anchor", players: []string{"A", "B", "C", "D", "F", "E Subject"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := fourPlayerMatch()
			match.Players = nil
			for _, name := range tt.players {
				match.Players = append(match.Players, PlayerRating{Name: name})
			}

			got := AssignSides("E Subject", match)
			if got.Side != SideUnknown || got.Partner != nil || len(got.Opponent.Players) != 0 {
				t.Fatalf("expected unknown side: side=%s partner=%+v opponents=%v", got.Side, got.Partner, playerNames(got.Opponent.Players))
			}
		})
	}

	match := fourPlayerMatch()
	match.Players = append(match.Players, PlayerRating{Name: "Extra"})
	got := AssignSides("C", match)
	if got.Side != SideAway || got.Partner == nil || got.Partner.Name != "D" {
		t.Fatalf("subject within the first four must still resolve: side=%s partner=%+v", got.Side, got.Partner)
	}
}

func TestAssignSides_TooFewPlayers(t *testing.T) {
	t.Parallel()

	match := fourPlayerMatch()
	match.Players = match.Players[:3]
	if got := AssignSides("A", match); got.Side != SideUnknown || got.Partner != nil {
		t.Fatalf("expected unknown side with three players: side=%s partner=%+v", got.Side, got.Partner)
	}
}
