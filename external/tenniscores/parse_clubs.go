package tenniscores

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/riskibarqy/paddle-roster/internal/domain/club"
	"github.com/riskibarqy/paddle-roster/internal/platform/names"
	"github.com/riskibarqy/paddle-roster/internal/usecase"
)

const defaultTeamParam = "team"

type ClubParseOptions struct {
	BaseURL string
	// Leagues is the h1 allow-list, compared case-insensitively. Empty accepts every h1.
	Leagues   []string
	TeamParam string
}

// ParseClubs walks h1, h2 and anchor elements of a standings page in document order.
// An allowed h1 opens a league, any other h1 closes it, and both reset the division.
// An h2 opens a division while a league is open. Anchors inside an open league and
// division whose href carries the team parameter become clubs.
func ParseClubs(html string, opts ClubParseOptions) ([]club.Club, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: parse standings page: %v", usecase.ErrParseFailed, err)
	}

	teamParam := strings.TrimSpace(opts.TeamParam)
	if teamParam == "" {
		teamParam = defaultTeamParam
	}
	allowed := make(map[string]struct{}, len(opts.Leagues))
	for _, league := range opts.Leagues {
		if key := names.Normalize(league); key != "" {
			allowed[key] = struct{}{}
		}
	}

	var league, division string
	seen := make(map[string]struct{})
	out := make([]club.Club, 0, 64)

	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		switch goquery.NodeName(s) {
		case "h1":
			division = ""
			text := cleanText(s.Text())
			if _, ok := allowed[names.Normalize(text)]; ok || (len(allowed) == 0 && text != "") {
				league = text
				return
			}
			league = ""
		case "h2":
			if league != "" {
				division = cleanText(s.Text())
			}
		case "a":
			if league == "" || division == "" {
				return
			}
			href, ok := s.Attr("href")
			if !ok {
				return
			}
			rosterURL, ok := teamLink(opts.BaseURL, href, teamParam)
			if !ok {
				return
			}
			name := cleanText(s.Text())
			if name == "" {
				return
			}
			item := club.Club{Name: name, League: league, Division: division, RosterURL: rosterURL}
			if _, dup := seen[item.Key()]; dup {
				return
			}
			seen[item.Key()] = struct{}{}
			out = append(out, item)
		}
	})

	return out, nil
}

func teamLink(baseURL, href, teamParam string) (string, bool) {
	abs, err := resolveURL(baseURL, href)
	if err != nil {
		return "", false
	}
	parsed, err := url.Parse(abs)
	if err != nil {
		return "", false
	}
	if strings.TrimSpace(parsed.Query().Get(teamParam)) == "" {
		return "", false
	}
	return abs, true
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
