package tenniscores

import (
	"errors"
	"testing"

	"github.com/riskibarqy/paddle-roster/internal/usecase"
)

const rosterFixture = `<html><body>
<table class="team_roster_table">
  <tr><th>Player</th><th>PTI</th></tr>
  <tr><td><a href="/player.php?p=101">Jane Doe (C)</a></td><td>41.3</td></tr>
  <tr><td><a href="/player.php?p=102">Bob Smith(CC)</a></td><td> 38 </td></tr>
  <tr><td><a href="/player.php?p=103">John Smith</a></td><td>N/A</td></tr>
  <tr><td>Subs</td><td></td></tr>
  <tr><td><a href="/team.php?team=1">Team link only</a></td><td>12</td></tr>
  <tr><td><a href="/player.php?p=104">Ann Lee</a></td></tr>
  <tr><td><a href="/player.php?p=105">Kim Cho</a></td><td>NaN</td></tr>
</table>
</body></html>`

func TestParseRoster(t *testing.T) {
	t.Parallel()

	got, err := ParseRoster(rosterFixture, RosterParseOptions{
		BaseURL:  "https://aptachicago.tenniscores.com",
		ClubName: "Winnetka 1",
	})
	if err != nil {
		t.Fatalf("parse roster: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("unexpected entry count: got=%d want=5 (%+v)", len(got), got)
	}

	if got[0].PlayerName != "Jane Doe" || got[0].Rating == nil || *got[0].Rating != 41.3 {
		t.Fatalf("captain marker should be stripped: %+v", got[0])
	}
	if got[0].ProfileURL != "https://aptachicago.tenniscores.com/player.php?p=101" || got[0].ClubName != "Winnetka 1" {
		t.Fatalf("unexpected profile or club: %+v", got[0])
	}
	if got[1].PlayerName != "Bob Smith" || got[1].Rating == nil || *got[1].Rating != 38 {
		t.Fatalf("co-captain marker should be stripped: %+v", got[1])
	}
	for _, idx := range []int{3, 4} {
		if got[idx].Rating != nil {
			t.Fatalf("entry %d should be unrated: %+v", idx, got[idx])
		}
	}
}

func TestParseRoster_RatingNullability(t *testing.T) {
	t.Parallel()

	html := `<table class="team_roster_table"><tr><td><a href="?p=1">John Smith</a></td><td>N/A</td></tr></table>`
	got, err := ParseRoster(html, RosterParseOptions{BaseURL: "https://example.com", ClubName: "Club"})
	if err != nil {
		t.Fatalf("parse roster: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("row must be kept: got=%d", len(got))
	}
	if got[0].PlayerName != "John Smith" || got[0].Rating != nil {
		t.Fatalf("unexpected entry: %+v", got[0])
	}
}

func TestParseRoster_MissingTable(t *testing.T) {
	t.Parallel()

	got, err := ParseRoster(`<table class="other"><tr><td><a href="?p=1">X</a></td></tr></table>`, RosterParseOptions{})
	if !errors.Is(err, usecase.ErrParseFailed) {
		t.Fatalf("expected ErrParseFailed, got=%v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got=%#v", got)
	}
}
