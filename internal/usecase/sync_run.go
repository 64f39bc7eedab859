package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/paddle-roster/internal/domain/clubdirectory"
	"github.com/riskibarqy/paddle-roster/internal/domain/syncrun"
	"github.com/riskibarqy/paddle-roster/internal/platform/id"
	"github.com/riskibarqy/paddle-roster/internal/platform/logging"
)

type (
	RunSummary = syncrun.Summary
	UnitResult = syncrun.UnitResult
	SkipReason = syncrun.SkipReason
)

// runRecorder owns the summary of one run and persists it at each state change.
type runRecorder struct {
	repo    syncrun.Repository
	logger  *logging.Logger
	now     func() time.Time
	summary syncrun.Summary
}

func newRunRecorder(ctx context.Context, repo syncrun.Repository, ids id.Generator, kind syncrun.Kind, trigger syncrun.Trigger, logger *logging.Logger, now func() time.Time) *runRecorder {
	runID := ""
	if ids != nil {
		generated, err := ids.NewID()
		if err != nil {
			logger.WarnContext(ctx, "generate sync run id failed", "kind", string(kind), "error", err)
		}
		runID = generated
	}
	if runID == "" {
		runID = fmt.Sprintf("%s_%d", kind, now().UnixNano())
	}
	if trigger == "" {
		trigger = syncrun.TriggerManual
	}

	return &runRecorder{
		repo:   repo,
		logger: logger,
		now:    now,
		summary: syncrun.Summary{
			RunID:     runID,
			Kind:      kind,
			Trigger:   trigger,
			State:     syncrun.StateIdle,
			Status:    syncrun.StatusRunning,
			StartedAt: now().UTC(),
			Units:     []syncrun.UnitResult{},
		},
	}
}

func (r *runRecorder) enter(ctx context.Context, state syncrun.State) {
	r.summary.State = state
	r.logger.InfoContext(ctx, "sync run state changed", "run_id", r.summary.RunID, "kind", string(r.summary.Kind), "state", string(state))
	r.save(ctx)
}

func (r *runRecorder) record(ctx context.Context, unit syncrun.UnitResult, err error) {
	r.summary.Record(unit)
	if unit.Status != syncrun.UnitSuccess {
		r.logger.WarnContext(ctx, "sync unit not completed",
			"run_id", r.summary.RunID,
			"unit", unit.Unit,
			"status", string(unit.Status),
			"reason", string(unit.Reason),
			"error", err,
		)
	}
}

func (r *runRecorder) succeed(ctx context.Context) syncrun.Summary {
	r.summary.State = syncrun.StateIdle
	r.summary.Status = syncrun.StatusSucceeded
	r.summary.FinishedAt = r.now().UTC()
	r.save(ctx)
	r.logger.InfoContext(ctx, "sync run finished",
		"run_id", r.summary.RunID,
		"kind", string(r.summary.Kind),
		"success", r.summary.SuccessCount,
		"failed", r.summary.FailedCount,
		"skipped", r.summary.SkippedCount,
	)
	return r.summary
}

// abort keeps the state the run failed in so the log shows where it stopped.
func (r *runRecorder) abort(ctx context.Context, err error) syncrun.Summary {
	r.summary.Status = syncrun.StatusAborted
	r.summary.Error = err.Error()
	r.summary.FinishedAt = r.now().UTC()
	r.save(ctx)
	r.logger.ErrorContext(ctx, "sync run aborted", "run_id", r.summary.RunID, "state", string(r.summary.State), "error", err)
	return r.summary
}

func (r *runRecorder) save(ctx context.Context) {
	if r.repo == nil {
		return
	}
	if err := r.repo.Save(ctx, r.summary); err != nil {
		r.logger.WarnContext(ctx, "persist sync run failed", "run_id", r.summary.RunID, "error", err)
	}
}

// unitFromError maps a scrape error onto a failed unit.
func unitFromError(unit string, start time.Time, now time.Time, err error) syncrun.UnitResult {
	reason := syncrun.SkipReasonFetchFailed
	if errors.Is(err, ErrParseFailed) {
		reason = syncrun.SkipReasonParseFailed
	}
	return syncrun.UnitResult{
		Unit:       unit,
		Status:     syncrun.UnitFailed,
		Reason:     reason,
		DurationMs: now.Sub(start).Milliseconds(),
		Message:    err.Error(),
	}
}

func loadResolver(ctx context.Context, repo clubdirectory.Repository) (*clubdirectory.Resolver, error) {
	if repo == nil {
		return clubdirectory.NewResolver(nil), nil
	}
	entries, err := repo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list club directory: %w", err)
	}
	return clubdirectory.NewResolver(entries), nil
}
