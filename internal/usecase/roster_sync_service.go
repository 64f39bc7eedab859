package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/paddle-roster/internal/domain/club"
	"github.com/riskibarqy/paddle-roster/internal/domain/clubdirectory"
	"github.com/riskibarqy/paddle-roster/internal/domain/ratinghistory"
	"github.com/riskibarqy/paddle-roster/internal/domain/roster"
	"github.com/riskibarqy/paddle-roster/internal/domain/syncrun"
	"github.com/riskibarqy/paddle-roster/internal/platform/id"
	"github.com/riskibarqy/paddle-roster/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// RosterSyncService runs the weekly pass: discover clubs, scrape every roster,
// merge into the canonical roster and append rating history.
// Concurrent runs are not deconflicted here; the scheduler runs jobs in singleton mode.
type RosterSyncService struct {
	source        ScrapeSource
	directoryRepo clubdirectory.Repository
	clubRepo      club.Repository
	rosterRepo    roster.Repository
	historyRepo   ratinghistory.Repository
	runRepo       syncrun.Repository
	ids           id.Generator
	logger        *logging.Logger
	now           func() time.Time
}

func NewRosterSyncService(
	source ScrapeSource,
	directoryRepo clubdirectory.Repository,
	clubRepo club.Repository,
	rosterRepo roster.Repository,
	historyRepo ratinghistory.Repository,
	runRepo syncrun.Repository,
	ids id.Generator,
	logger *logging.Logger,
) *RosterSyncService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RosterSyncService{
		source:        source,
		directoryRepo: directoryRepo,
		clubRepo:      clubRepo,
		rosterRepo:    rosterRepo,
		historyRepo:   historyRepo,
		runRepo:       runRepo,
		ids:           ids,
		logger:        logger.With("component", "roster-sync"),
		now:           time.Now,
	}
}

// RunRosterSync executes one full roster pass. Unit failures are collected in the summary.
// Only a failed discovery page or a storage error aborts the run; the partial summary
// is returned alongside the error.
func (s *RosterSyncService) RunRosterSync(ctx context.Context, trigger syncrun.Trigger) (RunSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterSyncService.RunRosterSync",
		attribute.String("sync.trigger", string(trigger)))
	defer span.End()

	if s.source == nil || s.clubRepo == nil || s.rosterRepo == nil || s.historyRepo == nil {
		return RunSummary{}, fmt.Errorf("%w: roster sync is not fully configured", ErrDependencyUnavailable)
	}

	run := newRunRecorder(ctx, s.runRepo, s.ids, syncrun.KindRosterSync, trigger, s.logger, s.now)

	run.enter(ctx, syncrun.StateDiscoveringClubs)
	clubs, err := s.source.DiscoverClubs(ctx)
	if err != nil {
		err = fmt.Errorf("discover clubs: %w", err)
		return run.abort(ctx, err), err
	}
	scrapedAt := s.now().UTC()
	for i := range clubs {
		clubs[i].LastScrapedAt = scrapedAt
	}
	if err := s.clubRepo.UpsertClubs(ctx, clubs); err != nil {
		err = fmt.Errorf("upsert clubs: %w", err)
		return run.abort(ctx, err), err
	}
	run.summary.ClubCount = len(clubs)

	run.enter(ctx, syncrun.StateScrapingRosters)
	entries := s.scrapeRosters(ctx, run, clubs)
	if err := s.rosterRepo.ReplaceRawEntries(ctx, entries); err != nil {
		err = fmt.Errorf("replace raw roster entries: %w", err)
		return run.abort(ctx, err), err
	}
	run.summary.RawEntryCount = len(entries)

	run.enter(ctx, syncrun.StateDeduplicating)
	resolver, err := loadResolver(ctx, s.directoryRepo)
	if err != nil {
		return run.abort(ctx, err), err
	}
	canonical := roster.Merge(entries, resolver)
	if err := s.rosterRepo.ReplaceCanonical(ctx, canonical); err != nil {
		err = fmt.Errorf("replace canonical roster: %w", err)
		return run.abort(ctx, err), err
	}
	run.summary.CanonicalCount = len(canonical)

	run.enter(ctx, syncrun.StateRecordingHistory)
	history := historyRecords(canonical, s.now().UTC())
	if len(history) > 0 {
		if err := s.historyRepo.Append(ctx, history); err != nil {
			err = fmt.Errorf("append rating history: %w", err)
			return run.abort(ctx, err), err
		}
	}
	run.summary.HistoryCount = len(history)

	return run.succeed(ctx), nil
}

func (s *RosterSyncService) scrapeRosters(ctx context.Context, run *runRecorder, clubs []club.Club) []roster.RawEntry {
	entries := make([]roster.RawEntry, 0, len(clubs)*12)
	for _, item := range clubs {
		start := s.now()
		unit := "club:" + item.League + "/" + item.Name

		rows, err := s.source.FetchRoster(ctx, item)
		if err != nil {
			run.record(ctx, unitFromError(unit, start, s.now(), err), err)
			continue
		}

		result := syncrun.UnitResult{
			Unit:       unit,
			Status:     syncrun.UnitSuccess,
			Records:    len(rows),
			DurationMs: s.now().Sub(start).Milliseconds(),
		}
		if len(rows) == 0 {
			result.Status = syncrun.UnitSkipped
			result.Reason = syncrun.SkipReasonNoRecords
			result.Message = "roster table has no player rows"
		}
		run.record(ctx, result, nil)
		entries = append(entries, rows...)
	}
	return entries
}

func historyRecords(canonical []roster.CanonicalRecord, at time.Time) []ratinghistory.Record {
	out := make([]ratinghistory.Record, 0, len(canonical))
	for _, record := range canonical {
		if record.Rating == nil {
			continue
		}
		out = append(out, ratinghistory.Record{
			NormalizedName: record.NormalizedName,
			Rating:         *record.Rating,
			RecordedAt:     at,
		})
	}
	return out
}
