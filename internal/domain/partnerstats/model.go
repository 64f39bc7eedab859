package partnerstats

import (
	"fmt"
	"strings"
	"time"
)

// Stat is the per-partner fold of one player's matches.
// AverageRating is nil when no partner rating was observed.
type Stat struct {
	PartnerName   string
	MatchesPlayed int
	Wins          int
	Losses        int
	WinRate       float64
	AverageRating *float64
}

// Document embeds every partner of one player; it is recomputed whole on each refresh.
type Document struct {
	PlayerName     string
	NormalizedName string
	Partners       []Stat
	CalculatedAt   time.Time
}

func (d Document) Validate() error {
	if strings.TrimSpace(d.NormalizedName) == "" {
		return fmt.Errorf("partner stats player name is required")
	}
	return nil
}
