package matchhistory

import (
	"fmt"
	"strings"
	"time"
)

type Result string

const (
	ResultWin     Result = "W"
	ResultLoss    Result = "L"
	ResultUnknown Result = ""
)

type Side string

const (
	SideHome    Side = "home"
	SideAway    Side = "away"
	SideUnknown Side = "unknown"
)

// PlayerRating is a player name with the rating readings shown before and after the match.
type PlayerRating struct {
	Name   string
	Before *float64
	After  *float64
}

// SetScore holds games won by the home and away pair in one set.
type SetScore struct {
	Home int
	Away int
}

// TeamRatings is the team panel; index 0 of each pair is home, index 1 is away.
type TeamRatings struct {
	Before [2]*float64
	After  [2]*float64
}

type Opponent struct {
	TeamName     string
	Players      []PlayerRating
	RatingBefore *float64
	RatingAfter  *float64
}

// MatchRecord is one played match seen from the subject's profile page.
// Players keeps the page order: home pair then away pair.
type MatchRecord struct {
	Result       Result
	Date         string
	Description  string
	Division     string
	HomeTeam     string
	AwayTeam     string
	Line         int
	Venue        string
	RatingBefore *float64
	RatingAfter  *float64
	Players      []PlayerRating
	TeamRatings  TeamRatings
	Sets         []SetScore

	Side             Side
	Partner          *PlayerRating
	TeamRatingBefore *float64
	TeamRatingAfter  *float64
	Opponent         Opponent
}

// Document is the per-player match list, replaced wholesale on each scrape.
type Document struct {
	PlayerName     string
	NormalizedName string
	Matches        []MatchRecord
	ScrapedAt      time.Time
}

func (d Document) Validate() error {
	if strings.TrimSpace(d.NormalizedName) == "" {
		return fmt.Errorf("match history player name is required")
	}
	if d.ScrapedAt.IsZero() {
		return fmt.Errorf("match history scraped_at is required")
	}
	return nil
}

func (d Document) MatchCount() int {
	return len(d.Matches)
}
