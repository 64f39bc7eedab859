package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/paddle-roster/internal/domain/matchhistory"
	"github.com/riskibarqy/paddle-roster/internal/domain/partnerstats"
	"github.com/riskibarqy/paddle-roster/internal/domain/roster"
	"github.com/riskibarqy/paddle-roster/internal/domain/syncrun"
	"github.com/riskibarqy/paddle-roster/internal/platform/id"
	"github.com/riskibarqy/paddle-roster/internal/platform/logging"
	"github.com/riskibarqy/paddle-roster/internal/platform/names"
	"github.com/riskibarqy/paddle-roster/internal/platform/resilience"
	"go.opentelemetry.io/otel/attribute"
)

const defaultMatchScrapeCooldown = 24 * time.Hour

type MatchHistoryConfig struct {
	Cooldown time.Duration
}

// MatchHistoryService scrapes per-player match pages and recomputes partner stats.
// It writes only the match and partner documents of the player being scraped.
type MatchHistoryService struct {
	source      ScrapeSource
	rosterRepo  roster.Repository
	matchRepo   matchhistory.Repository
	partnerRepo partnerstats.Repository
	runRepo     syncrun.Repository
	ids         id.Generator
	cfg         MatchHistoryConfig
	logger      *logging.Logger
	now         func() time.Time
	flight      resilience.SingleFlight[RunSummary]
}

func NewMatchHistoryService(
	source ScrapeSource,
	rosterRepo roster.Repository,
	matchRepo matchhistory.Repository,
	partnerRepo partnerstats.Repository,
	runRepo syncrun.Repository,
	ids id.Generator,
	cfg MatchHistoryConfig,
	logger *logging.Logger,
) *MatchHistoryService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = defaultMatchScrapeCooldown
	}

	return &MatchHistoryService{
		source:      source,
		rosterRepo:  rosterRepo,
		matchRepo:   matchRepo,
		partnerRepo: partnerRepo,
		runRepo:     runRepo,
		ids:         ids,
		cfg:         cfg,
		logger:      logger.With("component", "match-history"),
		now:         time.Now,
	}
}

func (s *MatchHistoryService) configured() error {
	if s.source == nil || s.rosterRepo == nil || s.matchRepo == nil || s.partnerRepo == nil {
		return fmt.Errorf("%w: match history scraping is not fully configured", ErrDependencyUnavailable)
	}
	return nil
}

// ScrapePlayer refreshes one player's match history. A call inside the cooldown window
// returns *CooldownError and leaves the stored document untouched. Concurrent calls for
// the same player share one scrape.
func (s *MatchHistoryService) ScrapePlayer(ctx context.Context, playerName string, trigger syncrun.Trigger) (RunSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchHistoryService.ScrapePlayer",
		attribute.String("player.name", playerName),
		attribute.String("sync.trigger", string(trigger)),
	)
	defer span.End()

	if err := s.configured(); err != nil {
		return RunSummary{}, err
	}
	key := names.Normalize(playerName)
	if key == "" {
		return RunSummary{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	record, ok, err := s.rosterRepo.GetCanonical(ctx, key)
	if err != nil {
		return RunSummary{}, fmt.Errorf("get roster record: %w", err)
	}
	if !ok {
		return RunSummary{}, fmt.Errorf("%w: player %q is not on the roster", ErrNotFound, strings.TrimSpace(playerName))
	}

	if err := s.checkCooldown(ctx, record); err != nil {
		return RunSummary{}, err
	}

	summary, err, _ := s.flight.Do(key, func() (RunSummary, error) {
		// A scrape for the same player may have finished between the check above
		// and this call; its document must not be replaced inside the window.
		if err := s.checkCooldown(ctx, record); err != nil {
			return RunSummary{}, err
		}
		run := newRunRecorder(ctx, s.runRepo, s.ids, syncrun.KindPlayerMatches, trigger, s.logger, s.now)
		run.enter(ctx, syncrun.StateScrapingPlayerMatches)
		unit, unitErr := s.scrapeOne(ctx, record)
		run.record(ctx, unit, unitErr)
		return run.succeed(ctx), nil
	})
	return summary, err
}

// RunRankingsSync scrapes every roster player with a profile link, one at a time.
// Players inside the cooldown window are skipped rather than rejected.
func (s *MatchHistoryService) RunRankingsSync(ctx context.Context, trigger syncrun.Trigger) (RunSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchHistoryService.RunRankingsSync",
		attribute.String("sync.trigger", string(trigger)))
	defer span.End()

	if err := s.configured(); err != nil {
		return RunSummary{}, err
	}

	run := newRunRecorder(ctx, s.runRepo, s.ids, syncrun.KindRankingsSync, trigger, s.logger, s.now)
	run.enter(ctx, syncrun.StateScrapingPlayerMatches)

	records, err := s.rosterRepo.ListCanonical(ctx)
	if err != nil {
		err = fmt.Errorf("list canonical roster: %w", err)
		return run.abort(ctx, err), err
	}
	run.summary.CanonicalCount = len(records)

	for _, record := range records {
		if record.ProfileURL == "" {
			run.record(ctx, syncrun.UnitResult{
				Unit:    playerUnit(record),
				Status:  syncrun.UnitSkipped,
				Reason:  syncrun.SkipReasonMissingProfile,
				Message: "roster record has no profile link",
			}, nil)
			continue
		}

		if err := s.checkCooldown(ctx, record); err != nil {
			unit := syncrun.UnitResult{Unit: playerUnit(record), Status: syncrun.UnitFailed, Reason: syncrun.SkipReasonStoreFailed, Message: err.Error()}
			if cooldown, ok := asCooldown(err); ok {
				unit.Status = syncrun.UnitSkipped
				unit.Reason = syncrun.SkipReasonCooldown
				unit.Message = "retry at " + cooldown.RetryAt.UTC().Format(time.RFC3339)
				err = nil
			}
			run.record(ctx, unit, err)
			continue
		}

		unit, unitErr := s.scrapeOne(ctx, record)
		run.record(ctx, unit, unitErr)
	}

	return run.succeed(ctx), nil
}

func (s *MatchHistoryService) checkCooldown(ctx context.Context, record roster.CanonicalRecord) error {
	doc, ok, err := s.matchRepo.Get(ctx, record.NormalizedName)
	if err != nil {
		return fmt.Errorf("get match history: %w", err)
	}
	if !ok || doc.ScrapedAt.IsZero() {
		return nil
	}

	retryAt := doc.ScrapedAt.Add(s.cfg.Cooldown)
	remaining := retryAt.Sub(s.now())
	if remaining <= 0 {
		return nil
	}
	return &CooldownError{
		PlayerName:    record.DisplayName,
		LastScrapedAt: doc.ScrapedAt,
		RetryAt:       retryAt,
		Remaining:     remaining,
	}
}

func (s *MatchHistoryService) scrapeOne(ctx context.Context, record roster.CanonicalRecord) (syncrun.UnitResult, error) {
	start := s.now()
	unit := playerUnit(record)

	if record.ProfileURL == "" {
		return syncrun.UnitResult{
			Unit:    unit,
			Status:  syncrun.UnitSkipped,
			Reason:  syncrun.SkipReasonMissingProfile,
			Message: "roster record has no profile link",
		}, nil
	}

	matches, err := s.source.FetchMatchHistory(ctx, record.DisplayName, record.ProfileURL)
	if err != nil {
		return unitFromError(unit, start, s.now(), err), err
	}

	scrapedAt := s.now().UTC()
	doc := matchhistory.Document{
		PlayerName:     record.DisplayName,
		NormalizedName: record.NormalizedName,
		Matches:        matches,
		ScrapedAt:      scrapedAt,
	}
	if err := s.matchRepo.Replace(ctx, doc); err != nil {
		return storeFailure(unit, start, s.now(), err), err
	}

	stats := partnerstats.Document{
		PlayerName:     record.DisplayName,
		NormalizedName: record.NormalizedName,
		Partners:       partnerstats.Aggregate(matches),
		CalculatedAt:   scrapedAt,
	}
	if err := s.partnerRepo.Replace(ctx, stats); err != nil {
		return storeFailure(unit, start, s.now(), err), err
	}

	return syncrun.UnitResult{
		Unit:       unit,
		Status:     syncrun.UnitSuccess,
		Records:    len(matches),
		DurationMs: s.now().Sub(start).Milliseconds(),
	}, nil
}

func storeFailure(unit string, start, now time.Time, err error) syncrun.UnitResult {
	return syncrun.UnitResult{
		Unit:       unit,
		Status:     syncrun.UnitFailed,
		Reason:     syncrun.SkipReasonStoreFailed,
		DurationMs: now.Sub(start).Milliseconds(),
		Message:    err.Error(),
	}
}

func playerUnit(record roster.CanonicalRecord) string {
	return "player:" + record.NormalizedName
}
