package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /healthz", h.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /v1/players/lookup", h.LookupPlayer)
	mux.HandleFunc("GET /v1/roster", h.ListRoster)
	mux.HandleFunc("GET /v1/clubs", h.ListClubs)
	mux.HandleFunc("GET /v1/clubs/{clubName}/roster", h.GetClubRoster)
	mux.HandleFunc("GET /v1/club-directory", h.ListClubDirectory)
	mux.HandleFunc("GET /v1/players/{playerName}/match-history", h.GetMatchHistory)
	mux.HandleFunc("GET /v1/players/{playerName}/partner-chemistry", h.GetPartnerChemistry)
	mux.HandleFunc("GET /v1/players/{playerName}/rating-history", h.GetRatingHistory)
}

func registerInternalJobRoutes(mux *http.ServeMux, h *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/sync-rosters", RequireInternalJobToken(internalJobToken, http.HandlerFunc(h.RunRosterSyncJob)))
	mux.Handle("POST /v1/internal/jobs/sync-rankings", RequireInternalJobToken(internalJobToken, http.HandlerFunc(h.RunRankingsSyncJob)))
	mux.Handle("POST /v1/internal/jobs/scrape-player", RequireInternalJobToken(internalJobToken, http.HandlerFunc(h.RunPlayerScrapeJob)))
	mux.Handle("GET /v1/internal/sync/runs/latest", RequireInternalJobToken(internalJobToken, http.HandlerFunc(h.GetLatestSyncRun)))
	mux.Handle("GET /v1/internal/sync/runs/{runID}", RequireInternalJobToken(internalJobToken, http.HandlerFunc(h.GetSyncRun)))
}
