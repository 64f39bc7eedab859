package tenniscores

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/paddle-roster/internal/domain/club"
	"github.com/riskibarqy/paddle-roster/internal/domain/matchhistory"
	"github.com/riskibarqy/paddle-roster/internal/domain/roster"
	"github.com/riskibarqy/paddle-roster/internal/usecase"
)

type SourceConfig struct {
	StandingsPath       string
	Leagues             []string
	TeamParam           string
	ProfileParam        string
	RosterTableSelector string
}

// Source adapts the client and the parsers to usecase.ScrapeSource.
type Source struct {
	client *Client
	cfg    SourceConfig
}

var _ usecase.ScrapeSource = (*Source)(nil)

func NewSource(client *Client, cfg SourceConfig) *Source {
	if strings.TrimSpace(cfg.StandingsPath) == "" {
		cfg.StandingsPath = "/"
	}
	return &Source{client: client, cfg: cfg}
}

func (s *Source) DiscoverClubs(ctx context.Context) ([]club.Club, error) {
	page, err := s.client.Fetch(ctx, s.cfg.StandingsPath)
	if err != nil {
		return nil, fmt.Errorf("fetch standings page: %w", err)
	}
	return ParseClubs(page, ClubParseOptions{
		BaseURL:   s.client.BaseURL(),
		Leagues:   s.cfg.Leagues,
		TeamParam: s.cfg.TeamParam,
	})
}

func (s *Source) FetchRoster(ctx context.Context, item club.Club) ([]roster.RawEntry, error) {
	page, err := s.client.Fetch(ctx, item.RosterURL)
	if err != nil {
		return nil, fmt.Errorf("fetch roster club=%q: %w", item.Name, err)
	}
	return ParseRoster(page, RosterParseOptions{
		BaseURL:       s.client.BaseURL(),
		ClubName:      item.Name,
		TableSelector: s.cfg.RosterTableSelector,
		ProfileParam:  s.cfg.ProfileParam,
	})
}

func (s *Source) FetchMatchHistory(ctx context.Context, subject, profileURL string) ([]matchhistory.MatchRecord, error) {
	page, err := s.client.Fetch(ctx, profileURL)
	if err != nil {
		return nil, fmt.Errorf("fetch profile player=%q: %w", subject, err)
	}
	return ParseMatchHistory(page, subject)
}
