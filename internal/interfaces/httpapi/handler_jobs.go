package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/paddle-roster/internal/domain/syncrun"
	"github.com/riskibarqy/paddle-roster/internal/usecase"
)

type scrapePlayerRequest struct {
	PlayerName string `json:"player_name" validate:"required,max=200"`
}

type syncRunKindQuery struct {
	Kind string `validate:"required,oneof=roster_sync rankings_sync player_matches"`
}

func (h *Handler) RunRosterSyncJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRosterSyncJob")
	defer span.End()

	summary, err := h.rosterSyncService.RunRosterSync(ctx, syncrun.TriggerManual)
	if err != nil {
		h.logger.WarnContext(ctx, "roster sync job failed", "run_id", summary.RunID, "state", summary.State, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summary)
}

func (h *Handler) RunRankingsSyncJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRankingsSyncJob")
	defer span.End()

	summary, err := h.matchHistoryService.RunRankingsSync(ctx, syncrun.TriggerManual)
	if err != nil {
		h.logger.WarnContext(ctx, "rankings sync job failed", "run_id", summary.RunID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summary)
}

func (h *Handler) RunPlayerScrapeJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunPlayerScrapeJob")
	defer span.End()

	req, err := decodeScrapePlayerRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.matchHistoryService.ScrapePlayer(ctx, req.PlayerName, syncrun.TriggerManual)
	if err != nil {
		h.logger.WarnContext(ctx, "player scrape job rejected", "player", req.PlayerName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summary)
}

func (h *Handler) GetSyncRun(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSyncRun")
	defer span.End()

	summary, err := h.queryService.GetRun(ctx, r.PathValue("runID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summary)
}

func (h *Handler) GetLatestSyncRun(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLatestSyncRun")
	defer span.End()

	query := syncRunKindQuery{Kind: strings.TrimSpace(r.URL.Query().Get("kind"))}
	if query.Kind == "" {
		query.Kind = string(syncrun.KindRosterSync)
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.queryService.LatestRun(ctx, syncrun.Kind(query.Kind))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summary)
}

func decodeScrapePlayerRequest(r *http.Request) (scrapePlayerRequest, error) {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var req scrapePlayerRequest
	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return scrapePlayerRequest{}, fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
		return scrapePlayerRequest{}, fmt.Errorf("%w: invalid JSON payload", usecase.ErrInvalidInput)
	}
	req.PlayerName = strings.TrimSpace(req.PlayerName)
	return req, nil
}
