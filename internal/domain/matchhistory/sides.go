package matchhistory

import (
	"strings"

	"github.com/riskibarqy/paddle-roster/internal/platform/names"
)

// AssignSides locates subject among the match players and fills side, partner,
// opponent and the applicable team rating. When the subject cannot be found the
// match keeps a nil partner and an empty opponent list. Players past the
// fourth are never considered.
func AssignSides(subject string, match MatchRecord) MatchRecord {
	match.Partner = nil
	match.TeamRatingBefore = nil
	match.TeamRatingAfter = nil

	if len(match.Players) < 4 {
		match.Side = SideUnknown
		match.Opponent = Opponent{Players: []PlayerRating{}}
		return match
	}

	// Only the first two pairs are home and away; extra anchors are ignored.
	idx := locateSubject(subject, match.Players[:4])
	if idx < 0 {
		match.Side = SideUnknown
		match.Opponent = Opponent{Players: []PlayerRating{}}
		return match
	}

	mine, theirs := 0, 1
	match.Side = SideHome
	opponentTeam := match.AwayTeam
	opponents := match.Players[2:4]
	if idx >= 2 {
		mine, theirs = 1, 0
		match.Side = SideAway
		opponentTeam = match.HomeTeam
		opponents = match.Players[0:2]
	}

	partner := match.Players[idx^1]
	match.Partner = &partner
	match.TeamRatingBefore = match.TeamRatings.Before[mine]
	match.TeamRatingAfter = match.TeamRatings.After[mine]
	match.Opponent = Opponent{
		TeamName:     opponentTeam,
		Players:      append([]PlayerRating(nil), opponents...),
		RatingBefore: match.TeamRatings.Before[theirs],
		RatingAfter:  match.TeamRatings.After[theirs],
	}
	return match
}

func locateSubject(subject string, players []PlayerRating) int {
	key := names.Normalize(subject)
	if key == "" {
		return -1
	}
	for i, p := range players {
		if names.Normalize(p.Name) == key {
			return i
		}
	}

	last := names.LastName(subject)
	if last == "" {
		return -1
	}
	for i, p := range players {
		if strings.Contains(names.Normalize(p.Name), last) {
			return i
		}
	}
	return -1
}
