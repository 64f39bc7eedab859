package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/paddle-roster/internal/domain/club"
	"github.com/riskibarqy/paddle-roster/internal/domain/clubdirectory"
	"github.com/riskibarqy/paddle-roster/internal/domain/matchhistory"
	"github.com/riskibarqy/paddle-roster/internal/domain/member"
	"github.com/riskibarqy/paddle-roster/internal/domain/partnerstats"
	"github.com/riskibarqy/paddle-roster/internal/domain/ratinghistory"
	"github.com/riskibarqy/paddle-roster/internal/domain/roster"
	"github.com/riskibarqy/paddle-roster/internal/domain/syncrun"
	"github.com/riskibarqy/paddle-roster/internal/platform/names"
	"github.com/riskibarqy/paddle-roster/internal/platform/similarity"
)

const maxLookupSuggestions = 10

type LookupCandidate struct {
	Record roster.CanonicalRecord
	Score  int
}

// LookupResult carries the best match (nil below the threshold) and rated suggestions.
type LookupResult struct {
	Match       *LookupCandidate
	Suggestions []LookupCandidate
}

type ClubSummary struct {
	Name            string
	Leagues         []string
	Teams           []string
	RosterCount     int
	RegisteredCount int
}

type ClubRosterPlayer struct {
	Name            string
	NormalizedName  string
	Rating          *float64
	ProfileURL      string
	ProfileImageURL string
	IsRegistered    bool
	MemberID        string
}

type ClubRoster struct {
	Club    string
	Players []ClubRosterPlayer
}

type MatchHistoryView struct {
	Document matchhistory.Document
	Trend    *ratinghistory.Trend
}

type PartnerView struct {
	partnerstats.Stat
	IsRegistered    bool
	ProfileImageURL string
}

type PartnerChemistryView struct {
	PlayerName     string
	Partners       []PartnerView
	LastCalculated time.Time
}

// QueryService is the read-only projection over the pipeline's collections.
type QueryService struct {
	rosterRepo    roster.Repository
	clubRepo      club.Repository
	directoryRepo clubdirectory.Repository
	historyRepo   ratinghistory.Repository
	matchRepo     matchhistory.Repository
	partnerRepo   partnerstats.Repository
	memberRepo    member.Repository
	runRepo       syncrun.Repository
}

func NewQueryService(
	rosterRepo roster.Repository,
	clubRepo club.Repository,
	directoryRepo clubdirectory.Repository,
	historyRepo ratinghistory.Repository,
	matchRepo matchhistory.Repository,
	partnerRepo partnerstats.Repository,
	memberRepo member.Repository,
	runRepo syncrun.Repository,
) *QueryService {
	return &QueryService{
		rosterRepo:    rosterRepo,
		clubRepo:      clubRepo,
		directoryRepo: directoryRepo,
		historyRepo:   historyRepo,
		matchRepo:     matchRepo,
		partnerRepo:   partnerRepo,
		memberRepo:    memberRepo,
		runRepo:       runRepo,
	}
}

func (s *QueryService) LookupPlayer(ctx context.Context, name string) (LookupResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.LookupPlayer")
	defer span.End()

	if names.Normalize(name) == "" {
		return LookupResult{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	records, err := s.rosterRepo.ListCanonical(ctx)
	if err != nil {
		return LookupResult{}, fmt.Errorf("list canonical roster: %w", err)
	}

	ranked := similarity.Rank(name, records, func(r roster.CanonicalRecord) string { return r.DisplayName })
	result := LookupResult{Suggestions: make([]LookupCandidate, 0, maxLookupSuggestions)}
	if len(ranked) > 0 && ranked[0].Score >= similarity.MatchThreshold {
		best := LookupCandidate{Record: ranked[0].Item, Score: ranked[0].Score}
		result.Match = &best
	}
	for _, candidate := range ranked {
		if len(result.Suggestions) == maxLookupSuggestions {
			break
		}
		if candidate.Item.Rating == nil {
			continue
		}
		result.Suggestions = append(result.Suggestions, LookupCandidate{Record: candidate.Item, Score: candidate.Score})
	}

	return result, nil
}

func (s *QueryService) ListRoster(ctx context.Context) ([]roster.CanonicalRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.ListRoster")
	defer span.End()

	records, err := s.rosterRepo.ListCanonical(ctx)
	if err != nil {
		return nil, fmt.Errorf("list canonical roster: %w", err)
	}
	return records, nil
}

// ListClubs groups scraped teams under their canonical club name.
func (s *QueryService) ListClubs(ctx context.Context) ([]ClubSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.ListClubs")
	defer span.End()

	clubs, err := s.clubRepo.ListClubs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	resolver, err := loadResolver(ctx, s.directoryRepo)
	if err != nil {
		return nil, err
	}
	records, err := s.rosterRepo.ListCanonical(ctx)
	if err != nil {
		return nil, fmt.Errorf("list canonical roster: %w", err)
	}
	members, err := s.listMembers(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*ClubSummary)
	order := make([]string, 0)
	for _, item := range clubs {
		canonical := resolver.Resolve(item.Name)
		key := names.Normalize(canonical)
		summary, ok := byName[key]
		if !ok {
			summary = &ClubSummary{Name: canonical}
			byName[key] = summary
			order = append(order, key)
		}
		summary.Teams = appendUnique(summary.Teams, item.Name)
		summary.Leagues = appendUnique(summary.Leagues, item.League)
	}

	out := make([]ClubSummary, 0, len(order))
	for _, key := range order {
		summary := byName[key]
		for _, record := range records {
			if record.HasClub(summary.Name) {
				summary.RosterCount++
			}
		}
		for _, m := range members {
			if m.BelongsTo(summary.Name) {
				summary.RegisteredCount++
			}
		}
		out = append(out, *summary)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

// ClubRoster combines scraped players of a club with registered members who list it.
func (s *QueryService) ClubRoster(ctx context.Context, clubName string) (ClubRoster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.ClubRoster")
	defer span.End()

	if strings.TrimSpace(clubName) == "" {
		return ClubRoster{}, fmt.Errorf("%w: club name is required", ErrInvalidInput)
	}
	resolver, err := loadResolver(ctx, s.directoryRepo)
	if err != nil {
		return ClubRoster{}, err
	}
	canonicalClub := resolver.Resolve(clubName)

	records, err := s.rosterRepo.ListCanonical(ctx)
	if err != nil {
		return ClubRoster{}, fmt.Errorf("list canonical roster: %w", err)
	}
	members, err := s.listMembers(ctx)
	if err != nil {
		return ClubRoster{}, err
	}
	membersByName := make(map[string]member.Member, len(members))
	for _, m := range members {
		membersByName[m.NormalizedName()] = m
	}

	players := make([]ClubRosterPlayer, 0, 32)
	seen := make(map[string]struct{})
	for _, record := range records {
		if !record.HasClub(canonicalClub) {
			continue
		}
		player := ClubRosterPlayer{
			Name:            record.DisplayName,
			NormalizedName:  record.NormalizedName,
			Rating:          record.Rating,
			ProfileURL:      record.ProfileURL,
			ProfileImageURL: record.ProfileImageURL,
		}
		if m, ok := membersByName[record.NormalizedName]; ok {
			player.IsRegistered = true
			player.MemberID = m.ID
			if player.ProfileImageURL == "" {
				player.ProfileImageURL = m.ProfileImageURL
			}
		}
		seen[record.NormalizedName] = struct{}{}
		players = append(players, player)
	}
	for _, m := range members {
		key := m.NormalizedName()
		if key == "" || !m.BelongsTo(canonicalClub) {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		players = append(players, ClubRosterPlayer{
			Name:            strings.TrimSpace(m.Name),
			NormalizedName:  key,
			Rating:          m.Rating,
			ProfileImageURL: m.ProfileImageURL,
			IsRegistered:    true,
			MemberID:        m.ID,
		})
	}

	if len(players) == 0 {
		return ClubRoster{}, fmt.Errorf("%w: club %q has no roster", ErrNotFound, canonicalClub)
	}
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].NormalizedName < players[j].NormalizedName
	})
	return ClubRoster{Club: canonicalClub, Players: players}, nil
}

func (s *QueryService) MatchHistory(ctx context.Context, playerName string) (MatchHistoryView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.MatchHistory")
	defer span.End()

	key := names.Normalize(playerName)
	if key == "" {
		return MatchHistoryView{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	doc, ok, err := s.matchRepo.Get(ctx, key)
	if err != nil {
		return MatchHistoryView{}, fmt.Errorf("get match history: %w", err)
	}
	if !ok {
		return MatchHistoryView{}, fmt.Errorf("%w: no match history for %q", ErrNotFound, strings.TrimSpace(playerName))
	}

	view := MatchHistoryView{Document: doc}
	series, err := s.ratingSeries(ctx, key)
	if err != nil {
		return MatchHistoryView{}, err
	}
	if trend, ok := ratinghistory.ComputeTrend(series); ok {
		view.Trend = &trend
	}
	return view, nil
}

func (s *QueryService) PartnerChemistry(ctx context.Context, playerName string) (PartnerChemistryView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.PartnerChemistry")
	defer span.End()

	key := names.Normalize(playerName)
	if key == "" {
		return PartnerChemistryView{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	doc, ok, err := s.partnerRepo.Get(ctx, key)
	if err != nil {
		return PartnerChemistryView{}, fmt.Errorf("get partner stats: %w", err)
	}
	if !ok {
		return PartnerChemistryView{}, fmt.Errorf("%w: no partner stats for %q", ErrNotFound, strings.TrimSpace(playerName))
	}

	partnerKeys := make([]string, 0, len(doc.Partners))
	for _, p := range doc.Partners {
		partnerKeys = append(partnerKeys, names.Normalize(p.PartnerName))
	}
	membersByName := make(map[string]member.Member)
	if s.memberRepo != nil && len(partnerKeys) > 0 {
		members, err := s.memberRepo.ListByNormalizedNames(ctx, partnerKeys)
		if err != nil {
			return PartnerChemistryView{}, fmt.Errorf("list partner members: %w", err)
		}
		for _, m := range members {
			membersByName[m.NormalizedName()] = m
		}
	}

	view := PartnerChemistryView{
		PlayerName:     doc.PlayerName,
		Partners:       make([]PartnerView, 0, len(doc.Partners)),
		LastCalculated: doc.CalculatedAt,
	}
	for i, stat := range doc.Partners {
		item := PartnerView{Stat: stat}
		if m, ok := membersByName[partnerKeys[i]]; ok {
			item.IsRegistered = true
			item.ProfileImageURL = m.ProfileImageURL
		}
		view.Partners = append(view.Partners, item)
	}
	return view, nil
}

// RatingHistory returns the first record of each UTC day, oldest first.
func (s *QueryService) RatingHistory(ctx context.Context, playerName string) ([]ratinghistory.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.RatingHistory")
	defer span.End()

	key := names.Normalize(playerName)
	if key == "" {
		return nil, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	return s.ratingSeries(ctx, key)
}

func (s *QueryService) GetRun(ctx context.Context, runID string) (RunSummary, error) {
	if s.runRepo == nil {
		return RunSummary{}, fmt.Errorf("%w: sync run log is not configured", ErrDependencyUnavailable)
	}
	runID = strings.TrimSpace(runID)
	if runID == "" {
		return RunSummary{}, fmt.Errorf("%w: run id is required", ErrInvalidInput)
	}
	summary, ok, err := s.runRepo.Get(ctx, runID)
	if err != nil {
		return RunSummary{}, fmt.Errorf("get sync run: %w", err)
	}
	if !ok {
		return RunSummary{}, fmt.Errorf("%w: sync run %q", ErrNotFound, runID)
	}
	return summary, nil
}

func (s *QueryService) LatestRun(ctx context.Context, kind syncrun.Kind) (RunSummary, error) {
	if s.runRepo == nil {
		return RunSummary{}, fmt.Errorf("%w: sync run log is not configured", ErrDependencyUnavailable)
	}
	if !kind.Valid() {
		return RunSummary{}, fmt.Errorf("%w: unknown run kind %q", ErrInvalidInput, kind)
	}
	summary, ok, err := s.runRepo.Latest(ctx, kind)
	if err != nil {
		return RunSummary{}, fmt.Errorf("get latest sync run: %w", err)
	}
	if !ok {
		return RunSummary{}, fmt.Errorf("%w: no %s run recorded", ErrNotFound, kind)
	}
	return summary, nil
}

func (s *QueryService) ratingSeries(ctx context.Context, key string) ([]ratinghistory.Record, error) {
	records, err := s.historyRepo.ListByPlayer(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("list rating history: %w", err)
	}
	return ratinghistory.FirstPerDay(records), nil
}

func (s *QueryService) listMembers(ctx context.Context) ([]member.Member, error) {
	if s.memberRepo == nil {
		return nil, nil
	}
	members, err := s.memberRepo.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

func appendUnique(items []string, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return items
	}
	for _, item := range items {
		if item == value {
			return items
		}
	}
	return append(items, value)
}
