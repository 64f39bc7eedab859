package tenniscores

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/riskibarqy/paddle-roster/internal/domain/matchhistory"
	"github.com/riskibarqy/paddle-roster/internal/usecase"
)

// Match page markers. Each match is a self-contained block; panels inside the detail
// region appear twice, before then after.
const (
	matchBlockSelector   = "div.match_block"
	matchResultSelector  = ".match_result"
	matchDateSelector    = ".match_date"
	matchDescSelector    = ".match_desc"
	ratingBeforeSelector = ".match_rating .rating_before"
	ratingAfterSelector  = ".match_rating .rating_after"
	matchPlayersSelector = ".match_players a"
	matchScoresSelector  = ".match_scores"
	setScoreClass        = "set_score"
	rowBreakClass        = "row_break"
	playerPanelSelector  = ".player_ratings"
	teamPanelSelector    = ".team_ratings"
	panelValueSelector   = ".rating"
)

var (
	venueSuffixRegex    = regexp.MustCompile(`\s*@\s*(.+)$`)
	lineSuffixRegex     = regexp.MustCompile(`(?i)\s*-?\s*line\s+(\d+)\s*$`)
	divisionPrefixRegex = regexp.MustCompile(`(?i)^\s*(division\s+\S+)\s*-\s*`)
	versusRegex         = regexp.MustCompile(`(?i)\s+vs\.?\s+`)
)

// ParseMatchHistory decomposes a player profile page into match records with sides
// assigned for subject. A page without match blocks yields an empty slice.
func ParseMatchHistory(html, subject string) ([]matchhistory.MatchRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return []matchhistory.MatchRecord{}, fmt.Errorf("%w: parse match page: %v", usecase.ErrParseFailed, err)
	}

	out := make([]matchhistory.MatchRecord, 0, 16)
	doc.Find(matchBlockSelector).Each(func(_ int, block *goquery.Selection) {
		out = append(out, matchhistory.AssignSides(subject, parseMatchBlock(block)))
	})
	return out, nil
}

func parseMatchBlock(block *goquery.Selection) matchhistory.MatchRecord {
	desc := cleanText(block.Find(matchDescSelector).First().Text())
	parts := parseDescription(desc)

	players := parsePlayers(block)
	before := parsePanel(block.Find(playerPanelSelector).Eq(0), len(players))
	after := parsePanel(block.Find(playerPanelSelector).Eq(1), len(players))
	for i := range players {
		players[i].Before = before[i]
		players[i].After = after[i]
	}

	return matchhistory.MatchRecord{
		Result:       parseResult(block),
		Date:         cleanText(block.Find(matchDateSelector).First().Text()),
		Description:  desc,
		Division:     parts.division,
		HomeTeam:     parts.homeTeam,
		AwayTeam:     parts.awayTeam,
		Line:         parts.line,
		Venue:        parts.venue,
		RatingBefore: parseRating(block.Find(ratingBeforeSelector).First().Text()),
		RatingAfter:  parseRating(block.Find(ratingAfterSelector).First().Text()),
		Players:      players,
		TeamRatings:  parseTeamRatings(block),
		Sets:         parseSetScores(block.Find(matchScoresSelector).First()),
	}
}

func parseResult(block *goquery.Selection) matchhistory.Result {
	marker := strings.ToUpper(cleanText(block.Find(matchResultSelector).First().Text()))
	switch {
	case strings.HasPrefix(marker, "W"):
		return matchhistory.ResultWin
	case strings.HasPrefix(marker, "L"):
		return matchhistory.ResultLoss
	case block.HasClass("win"):
		return matchhistory.ResultWin
	case block.HasClass("loss"):
		return matchhistory.ResultLoss
	default:
		return matchhistory.ResultUnknown
	}
}

type descriptionParts struct {
	division string
	homeTeam string
	awayTeam string
	line     int
	venue    string
}

// parseDescription splits "Division 4 - Home vs Away - Line 2 @ Venue". Every part is optional.
func parseDescription(desc string) descriptionParts {
	var parts descriptionParts
	rest := desc

	if m := venueSuffixRegex.FindStringSubmatch(rest); m != nil {
		parts.venue = strings.TrimSpace(m[1])
		rest = rest[:len(rest)-len(m[0])]
	}
	if m := lineSuffixRegex.FindStringSubmatch(rest); m != nil {
		parts.line, _ = strconv.Atoi(m[1])
		rest = rest[:len(rest)-len(m[0])]
	}
	if m := divisionPrefixRegex.FindStringSubmatch(rest); m != nil {
		parts.division = cleanText(m[1])
		rest = rest[len(m[0]):]
	}

	teams := versusRegex.Split(strings.TrimSpace(rest), 2)
	parts.homeTeam = strings.TrimSpace(teams[0])
	if len(teams) == 2 {
		parts.awayTeam = strings.TrimSpace(teams[1])
	}
	return parts
}

func parsePlayers(block *goquery.Selection) []matchhistory.PlayerRating {
	out := make([]matchhistory.PlayerRating, 0, 4)
	block.Find(matchPlayersSelector).EachWithBreak(func(i int, a *goquery.Selection) bool {
		if i >= 4 {
			return false
		}
		out = append(out, matchhistory.PlayerRating{Name: cleanText(a.Text())})
		return true
	})
	return out
}

// parsePanel reads up to n rating values from one panel; missing values are nil.
func parsePanel(panel *goquery.Selection, n int) []*float64 {
	out := make([]*float64, n)
	panel.Find(panelValueSelector).EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= n {
			return false
		}
		out[i] = parseRating(s.Text())
		return true
	})
	return out
}

func parseTeamRatings(block *goquery.Selection) matchhistory.TeamRatings {
	panels := block.Find(teamPanelSelector)
	before := parsePanel(panels.Eq(0), 2)
	after := parsePanel(panels.Eq(1), 2)
	return matchhistory.TeamRatings{
		Before: [2]*float64{before[0], before[1]},
		After:  [2]*float64{after[0], after[1]},
	}
}

// parseSetScores reads games in document order; values before the row break belong
// to the home row, values after it to the away row. Set i pairs the i-th of each row.
// A set with a non-numeric cell on either row is dropped rather than read as 0 games.
func parseSetScores(scores *goquery.Selection) []matchhistory.SetScore {
	var home, away []*int
	row := &home
	scores.Children().Each(func(_ int, s *goquery.Selection) {
		switch {
		case s.HasClass(rowBreakClass):
			row = &away
		case s.HasClass(setScoreClass):
			var games *int
			if v, err := strconv.Atoi(strings.TrimSpace(s.Text())); err == nil {
				games = &v
			}
			*row = append(*row, games)
		}
	})

	sets := max(len(home), len(away))
	out := make([]matchhistory.SetScore, 0, sets)
	for i := 0; i < sets; i++ {
		var set matchhistory.SetScore
		if i < len(home) {
			if home[i] == nil {
				continue
			}
			set.Home = *home[i]
		}
		if i < len(away) {
			if away[i] == nil {
				continue
			}
			set.Away = *away[i]
		}
		out = append(out, set)
	}
	return out
}
