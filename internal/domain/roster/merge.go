package roster

import (
	"strings"

	"github.com/riskibarqy/paddle-roster/internal/platform/names"
)

// ClubResolver maps a raw team display string onto its canonical club name.
type ClubResolver interface {
	Resolve(raw string) string
}

// Merge collapses raw entries into one canonical record per normalized player name.
// The first display name and profile URL win, the last non-nil rating wins, and clubs
// are an ordered union of resolved club names. Output follows first-appearance order.
func Merge(entries []RawEntry, resolver ClubResolver) []CanonicalRecord {
	index := make(map[string]int, len(entries))
	out := make([]CanonicalRecord, 0, len(entries))

	for _, entry := range entries {
		key := names.Normalize(entry.PlayerName)
		if key == "" {
			continue
		}

		pos, ok := index[key]
		if !ok {
			pos = len(out)
			index[key] = pos
			out = append(out, CanonicalRecord{
				NormalizedName: key,
				DisplayName:    strings.Join(strings.Fields(entry.PlayerName), " "),
				Clubs:          []string{},
			})
		}

		record := &out[pos]
		if entry.Rating != nil {
			rating := *entry.Rating
			record.Rating = &rating
		}
		if record.ProfileURL == "" {
			record.ProfileURL = strings.TrimSpace(entry.ProfileURL)
		}

		clubName := resolveClub(resolver, entry.ClubName)
		if clubName != "" && !containsFold(record.Clubs, clubName) {
			record.Clubs = append(record.Clubs, clubName)
		}
	}

	return out
}

func resolveClub(resolver ClubResolver, raw string) string {
	if resolver == nil {
		return strings.TrimSpace(raw)
	}
	return resolver.Resolve(raw)
}

func containsFold(items []string, value string) bool {
	for _, item := range items {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}
