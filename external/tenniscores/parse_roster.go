package tenniscores

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/riskibarqy/paddle-roster/internal/domain/roster"
	"github.com/riskibarqy/paddle-roster/internal/usecase"
)

const (
	defaultRosterTableSelector = "table.team_roster_table"
	defaultProfileParam        = "p"
)

var captainMarkerRegex = regexp.MustCompile(`\s*\([A-Za-z]{1,2}\)\s*$`)

type RosterParseOptions struct {
	BaseURL       string
	ClubName      string
	TableSelector string
	ProfileParam  string
}

// ParseRoster reads one club roster table. Rows without a profile link in the first
// cell are skipped. An unparseable rating cell yields a nil rating, not an error.
// A page without the roster table returns an empty slice and ErrParseFailed.
func ParseRoster(html string, opts RosterParseOptions) ([]roster.RawEntry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return []roster.RawEntry{}, fmt.Errorf("%w: parse roster page: %v", usecase.ErrParseFailed, err)
	}

	selector := strings.TrimSpace(opts.TableSelector)
	if selector == "" {
		selector = defaultRosterTableSelector
	}
	profileParam := strings.TrimSpace(opts.ProfileParam)
	if profileParam == "" {
		profileParam = defaultProfileParam
	}

	table := doc.Find(selector).First()
	if table.Length() == 0 {
		return []roster.RawEntry{}, fmt.Errorf("%w: roster table %q not found", usecase.ErrParseFailed, selector)
	}

	out := make([]roster.RawEntry, 0, 32)
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.ChildrenFiltered("td")
		if cells.Length() == 0 {
			return
		}

		link, profileURL, ok := profileLink(cells.Eq(0), opts.BaseURL, profileParam)
		if !ok {
			return
		}
		name := captainMarkerRegex.ReplaceAllString(cleanText(link.Text()), "")
		if name == "" {
			return
		}

		var rating *float64
		if cells.Length() > 1 {
			rating = parseRating(cells.Eq(1).Text())
		}

		out = append(out, roster.RawEntry{
			PlayerName: name,
			Rating:     rating,
			ProfileURL: profileURL,
			ClubName:   strings.TrimSpace(opts.ClubName),
		})
	})

	return out, nil
}

func profileLink(cell *goquery.Selection, baseURL, profileParam string) (*goquery.Selection, string, bool) {
	var (
		found      *goquery.Selection
		profileURL string
	)
	cell.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		abs, err := resolveURL(baseURL, href)
		if err != nil {
			return true
		}
		parsed, err := url.Parse(abs)
		if err != nil || strings.TrimSpace(parsed.Query().Get(profileParam)) == "" {
			return true
		}
		found = a
		profileURL = abs
		return false
	})
	return found, profileURL, found != nil
}

// parseRating returns nil for blank, non-numeric, NaN or infinite cells.
func parseRating(text string) *float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}
	return &value
}
