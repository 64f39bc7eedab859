package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/paddle-roster/internal/platform/logging"
	"github.com/riskibarqy/paddle-roster/internal/usecase"
)

type Handler struct {
	queryService        *usecase.QueryService
	rosterSyncService   *usecase.RosterSyncService
	matchHistoryService *usecase.MatchHistoryService
	directoryService    *usecase.ClubDirectoryService
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	queryService *usecase.QueryService,
	rosterSyncService *usecase.RosterSyncService,
	matchHistoryService *usecase.MatchHistoryService,
	directoryService *usecase.ClubDirectoryService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		queryService:        queryService,
		rosterSyncService:   rosterSyncService,
		matchHistoryService: matchHistoryService,
		directoryService:    directoryService,
		logger:              logger,
		validator:           validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type lookupPlayerQuery struct {
	Name string `validate:"required,max=200"`
}

type playerPathParams struct {
	PlayerName string `validate:"required,max=200"`
}

type clubPathParams struct {
	ClubName string `validate:"required,max=200"`
}
