package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/game-formats", handler.ListGameFormats)
	mux.HandleFunc("GET /v1/game-formats/{formatID}/formations", handler.ListFormationsByGameFormat)
	mux.HandleFunc("GET /v1/formations/{formationID}", handler.GetFormation)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("POST /v1/teams", handler.CreateTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("PUT /v1/teams/{teamID}", handler.UpdateTeam)
	mux.HandleFunc("DELETE /v1/teams/{teamID}", handler.DeleteTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/stats", handler.GetTeamStats)
	mux.HandleFunc("POST /v1/teams/{teamID}/results", handler.RecordTeamResult)
}

// Setup sessions hold an in-progress configuration until it is saved onto the team.
func registerSetupSessionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/teams/{teamID}/setup-sessions", handler.StartSetupSession)
	mux.HandleFunc("GET /v1/setup-sessions/{sessionID}", handler.GetSetupSession)
	mux.HandleFunc("DELETE /v1/setup-sessions/{sessionID}", handler.DiscardSetupSession)
	mux.HandleFunc("PUT /v1/setup-sessions/{sessionID}/game-format", handler.SelectGameFormat)
	mux.HandleFunc("PUT /v1/setup-sessions/{sessionID}/formation", handler.SelectFormation)
	mux.HandleFunc("POST /v1/setup-sessions/{sessionID}/positions", handler.AddPosition)
	mux.HandleFunc("PATCH /v1/setup-sessions/{sessionID}/positions/{positionID}", handler.UpdatePosition)
	mux.HandleFunc("DELETE /v1/setup-sessions/{sessionID}/positions/{positionID}", handler.RemovePosition)
	mux.HandleFunc("POST /v1/setup-sessions/{sessionID}/reset", handler.ResetSetupSession)
	mux.HandleFunc("POST /v1/setup-sessions/{sessionID}/save", handler.SaveSetupSession)
}
