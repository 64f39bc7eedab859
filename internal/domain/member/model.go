package member

import (
	"strings"

	"github.com/riskibarqy/paddle-roster/internal/platform/names"
)

// Member is a registered user of the app. The directory is owned elsewhere; the pipeline only reads it.
type Member struct {
	ID              string
	Name            string
	HomeClub        string
	OtherClubs      []string
	Rating          *float64
	ProfileImageURL string
}

func (m Member) NormalizedName() string {
	return names.Normalize(m.Name)
}

// BelongsTo reports whether club is the member's home club or one of the others.
func (m Member) BelongsTo(club string) bool {
	club = strings.TrimSpace(club)
	if club == "" {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(m.HomeClub), club) {
		return true
	}
	for _, other := range m.OtherClubs {
		if strings.EqualFold(strings.TrimSpace(other), club) {
			return true
		}
	}
	return false
}
