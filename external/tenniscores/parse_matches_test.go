package tenniscores

import (
	"testing"

	"github.com/riskibarqy/paddle-roster/internal/domain/matchhistory"
)

const matchPageFixture = `<html><body>
<div class="match_block">
  <div class="match_result">W</div>
  <div class="match_date">Jan 12, 2025 - Winter League</div>
  <div class="match_desc">Division 4 - Winnetka 2 vs Skokie Valley 1 - Line 2 @ Winnetka</div>
  <div class="match_rating"><span class="rating_before">41.2</span><span class="rating_after">40.8</span></div>
  <div class="match_detail">
    <div class="match_players"><a href="?p=1">Ann Lee</a><a href="?p=2">Jane Doe</a><a href="?p=3">Bob Ray</a><a href="?p=4">Kim Cho</a></div>
    <div class="match_scores">
      <span class="set_score">6</span><span class="set_score">3</span><span class="set_score">10</span>
      <span class="row_break"></span>
      <span class="set_score">4</span><span class="set_score">6</span><span class="set_score">8</span>
    </div>
    <div class="player_ratings"><span class="rating">39.0</span><span class="rating">41.2</span><span class="rating">44.1</span><span class="rating">45.0</span></div>
    <div class="player_ratings"><span class="rating">38.7</span><span class="rating">40.8</span><span class="rating">44.5</span><span class="rating">45.3</span></div>
    <div class="team_ratings"><span class="rating">80.2</span><span class="rating">89.1</span></div>
    <div class="team_ratings"><span class="rating">79.5</span><span class="rating">89.8</span></div>
  </div>
</div>
<div class="match_block loss">
  <div class="match_date">Jan 19, 2025</div>
  <div class="match_desc">Glenview 3 VS Winnetka 2</div>
  <div class="match_detail">
    <div class="match_players"><a>Tom Hill</a><a>Al Park</a><a>Sam Roe</a><a>Lee Fox</a></div>
  </div>
</div>
</body></html>`

func TestParseMatchHistory(t *testing.T) {
	t.Parallel()

	got, err := ParseMatchHistory(matchPageFixture, "jane doe")
	if err != nil {
		t.Fatalf("parse match history: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected match count: got=%d want=2", len(got))
	}

	first := got[0]
	if first.Result != matchhistory.ResultWin {
		t.Fatalf("unexpected result: %q", first.Result)
	}
	if first.Division != "Division 4" || first.HomeTeam != "Winnetka 2" || first.AwayTeam != "Skokie Valley 1" {
		t.Fatalf("unexpected description parts: %+v", first)
	}
	if first.Line != 2 || first.Venue != "Winnetka" {
		t.Fatalf("unexpected line/venue: line=%d venue=%q", first.Line, first.Venue)
	}
	if first.RatingBefore == nil || *first.RatingBefore != 41.2 || first.RatingAfter == nil || *first.RatingAfter != 40.8 {
		t.Fatalf("unexpected subject ratings")
	}
	if first.Side != matchhistory.SideHome {
		t.Fatalf("unexpected side: %s", first.Side)
	}
	if first.Partner == nil || first.Partner.Name != "Ann Lee" || *first.Partner.Before != 39.0 || *first.Partner.After != 38.7 {
		t.Fatalf("unexpected partner: %+v", first.Partner)
	}
	if len(first.Opponent.Players) != 2 || first.Opponent.Players[1].Name != "Kim Cho" || *first.Opponent.Players[1].After != 45.3 {
		t.Fatalf("unexpected opponents: %+v", first.Opponent.Players)
	}
	if first.Opponent.TeamName != "Skokie Valley 1" || *first.Opponent.RatingBefore != 89.1 {
		t.Fatalf("unexpected opponent team: %+v", first.Opponent)
	}
	if *first.TeamRatingBefore != 80.2 || *first.TeamRatingAfter != 79.5 {
		t.Fatalf("unexpected team ratings")
	}
	wantSets := []matchhistory.SetScore{{Home: 6, Away: 4}, {Home: 3, Away: 6}, {Home: 10, Away: 8}}
	if len(first.Sets) != len(wantSets) {
		t.Fatalf("unexpected sets: %+v", first.Sets)
	}
	for i := range wantSets {
		if first.Sets[i] != wantSets[i] {
			t.Fatalf("set %d: got=%+v want=%+v", i, first.Sets[i], wantSets[i])
		}
	}

	second := got[1]
	if second.Result != matchhistory.ResultLoss {
		t.Fatalf("result should fall back to block class: %q", second.Result)
	}
	if second.HomeTeam != "Glenview 3" || second.AwayTeam != "Winnetka 2" || second.Division != "" || second.Line != 0 {
		t.Fatalf("unexpected description parts: %+v", second)
	}
	if second.Partner != nil || second.Opponent.Players == nil || len(second.Opponent.Players) != 0 {
		t.Fatalf("missing subject must yield nil partner and empty opponents: %+v", second)
	}
	if len(second.Sets) != 0 {
		t.Fatalf("expected no sets, got=%+v", second.Sets)
	}
}

func TestParseDescription(t *testing.T) {
	t.Parallel()

	got := parseDescription("Division 12A - Lake Forest 1 vs. Glenview 2 - line 4")
	if got.division != "Division 12A" || got.homeTeam != "Lake Forest 1" || got.awayTeam != "Glenview 2" || got.line != 4 || got.venue != "" {
		t.Fatalf("unexpected parts: %+v", got)
	}

	got = parseDescription("Exhibition")
	if got.homeTeam != "Exhibition" || got.awayTeam != "" {
		t.Fatalf("unexpected parts: %+v", got)
	}
}

func TestParseMatchHistory_NoBlocks(t *testing.T) {
	t.Parallel()

	got, err := ParseMatchHistory("<html><body><p>No matches</p></body></html>", "x")
	if err != nil {
		t.Fatalf("parse match history: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got=%+v", got)
	}
}

const irregularMatchFixture = `<html><body>
<div class="match_block">
  <div class="match_result">W</div>
  <div class="match_desc">Winnetka 2 vs Skokie Valley 1</div>
  <div class="match_detail">
    <div class="match_players"><a>Ann Lee</a><a>Bob Ray</a><a>Kim Cho</a><a>Tom Hill</a><a>Jane Doe</a></div>
    <div class="match_scores">
      <span class="set_score">6</span><span class="set_score">ret</span><span class="set_score">0</span>
      <span class="row_break"></span>
      <span class="set_score">0</span><span class="set_score">2</span><span class="set_score">6</span>
    </div>
  </div>
</div>
</body></html>`

func TestParseMatchHistory_IrregularBlock(t *testing.T) {
	t.Parallel()

	got, err := ParseMatchHistory(irregularMatchFixture, "jane doe")
	if err != nil {
		t.Fatalf("parse match history: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one match, got %d", len(got))
	}
	match := got[0]

	if len(match.Players) != 4 {
		t.Fatalf("expected players capped at four, got %d", len(match.Players))
	}
	if match.Side != matchhistory.SideUnknown || match.Partner != nil {
		t.Fatalf("subject past the fourth anchor must not be placed: side=%s partner=%+v", match.Side, match.Partner)
	}

	wantSets := []matchhistory.SetScore{{Home: 6, Away: 0}, {Home: 0, Away: 6}}
	if len(match.Sets) != len(wantSets) {
		t.Fatalf("unexpected sets: %+v", match.Sets)
	}
	for i := range wantSets {
		if match.Sets[i] != wantSets[i] {
			t.Fatalf("set %d: got=%+v want=%+v", i, match.Sets[i], wantSets[i])
		}
	}
}
