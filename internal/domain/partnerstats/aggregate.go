package partnerstats

import (
	"math"
	"sort"

	"github.com/riskibarqy/paddle-roster/internal/domain/matchhistory"
)

type accumulator struct {
	stat    Stat
	ratings []float64
}

// Aggregate folds matches into partner stats keyed by the partner name exactly as it
// appears on the page. Spelling variants of one partner stay separate rows.
// Rows are sorted by matches played, descending; ties keep first-seen order.
func Aggregate(matches []matchhistory.MatchRecord) []Stat {
	order := make([]string, 0)
	byPartner := make(map[string]*accumulator)

	for _, match := range matches {
		if match.Partner == nil || match.Partner.Name == "" {
			continue
		}
		key := match.Partner.Name
		acc, ok := byPartner[key]
		if !ok {
			acc = &accumulator{stat: Stat{PartnerName: key}}
			byPartner[key] = acc
			order = append(order, key)
		}

		acc.stat.MatchesPlayed++
		switch match.Result {
		case matchhistory.ResultWin:
			acc.stat.Wins++
		case matchhistory.ResultLoss:
			acc.stat.Losses++
		}
		if match.Partner.Before != nil {
			acc.ratings = append(acc.ratings, *match.Partner.Before)
		}
	}

	out := make([]Stat, 0, len(order))
	for _, key := range order {
		acc := byPartner[key]
		stat := acc.stat
		stat.WinRate = roundTo(float64(stat.Wins)/float64(stat.MatchesPlayed)*100, 1)
		if len(acc.ratings) > 0 {
			var sum float64
			for _, r := range acc.ratings {
				sum += r
			}
			avg := roundTo(sum/float64(len(acc.ratings)), 2)
			stat.AverageRating = &avg
		}
		out = append(out, stat)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchesPlayed > out[j].MatchesPlayed
	})
	return out
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
