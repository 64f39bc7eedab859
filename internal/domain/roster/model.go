package roster

import (
	"fmt"
	"strings"
)

// RawEntry is one observation of a player on one club roster page.
// Rating is nil for unrated players.
type RawEntry struct {
	PlayerName string
	Rating     *float64
	ProfileURL string
	ClubName   string
}

func (e RawEntry) Validate() error {
	if strings.TrimSpace(e.PlayerName) == "" {
		return fmt.Errorf("roster entry player name is required")
	}
	if strings.TrimSpace(e.ClubName) == "" {
		return fmt.Errorf("roster entry club name is required")
	}
	return nil
}

// CanonicalRecord is the single deduplicated row per normalized player name.
type CanonicalRecord struct {
	NormalizedName  string
	DisplayName     string
	Rating          *float64
	Clubs           []string
	ProfileURL      string
	ProfileImageURL string
}

// HasClub reports whether club is among the record's canonical clubs, compared case-insensitively.
func (r CanonicalRecord) HasClub(club string) bool {
	for _, item := range r.Clubs {
		if strings.EqualFold(item, strings.TrimSpace(club)) {
			return true
		}
	}
	return false
}
