package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) LookupPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LookupPlayer")
	defer span.End()

	query := lookupPlayerQuery{Name: strings.TrimSpace(r.URL.Query().Get("name"))}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.queryService.LookupPlayer(ctx, query.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "lookup player failed", "name", query.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toLookupResponseDTO(result))
}

func (h *Handler) ListRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRoster")
	defer span.End()

	records, err := h.queryService.ListRoster(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list roster failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(records))
	for _, record := range records {
		items = append(items, toPlayerDTO(record, 0))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubs")
	defer span.End()

	clubs, err := h.queryService.ListClubs(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list clubs failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]clubDTO, 0, len(clubs))
	for _, item := range clubs {
		items = append(items, toClubDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetClubRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClubRoster")
	defer span.End()

	params := clubPathParams{ClubName: strings.TrimSpace(r.PathValue("clubName"))}
	if err := h.validateRequest(ctx, params); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.queryService.ClubRoster(ctx, params.ClubName)
	if err != nil {
		h.logger.WarnContext(ctx, "get club roster failed", "club", params.ClubName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toClubRosterDTO(result))
}

func (h *Handler) ListClubDirectory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubDirectory")
	defer span.End()

	entries, err := h.directoryService.ListEntries(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list club directory failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]clubDirectoryEntryDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, toClubDirectoryEntryDTO(entry))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatchHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchHistory")
	defer span.End()

	params := playerPathParams{PlayerName: strings.TrimSpace(r.PathValue("playerName"))}
	if err := h.validateRequest(ctx, params); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.queryService.MatchHistory(ctx, params.PlayerName)
	if err != nil {
		h.logger.WarnContext(ctx, "get match history failed", "player", params.PlayerName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toMatchHistoryDTO(view))
}

func (h *Handler) GetPartnerChemistry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPartnerChemistry")
	defer span.End()

	params := playerPathParams{PlayerName: strings.TrimSpace(r.PathValue("playerName"))}
	if err := h.validateRequest(ctx, params); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.queryService.PartnerChemistry(ctx, params.PlayerName)
	if err != nil {
		h.logger.WarnContext(ctx, "get partner chemistry failed", "player", params.PlayerName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toPartnerChemistryDTO(view))
}

func (h *Handler) GetRatingHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRatingHistory")
	defer span.End()

	params := playerPathParams{PlayerName: strings.TrimSpace(r.PathValue("playerName"))}
	if err := h.validateRequest(ctx, params); err != nil {
		writeError(ctx, w, err)
		return
	}

	records, err := h.queryService.RatingHistory(ctx, params.PlayerName)
	if err != nil {
		h.logger.WarnContext(ctx, "get rating history failed", "player", params.PlayerName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toRatingPointDTOs(records))
}
