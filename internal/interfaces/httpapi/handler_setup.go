package httpapi

import (
	"net/http"
)

func (h *Handler) StartSetupSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartSetupSession")
	defer span.End()

	teamID := pathValue(r, "teamID")
	view, err := h.setupService.Start(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "start setup session failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, toSetupSessionDTO(view))
}

func (h *Handler) GetSetupSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSetupSession")
	defer span.End()

	sessionID := pathValue(r, "sessionID")
	view, err := h.setupService.Get(ctx, sessionID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toSetupSessionDTO(view))
}

func (h *Handler) SelectGameFormat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectGameFormat")
	defer span.End()

	sessionID := pathValue(r, "sessionID")
	var req selectGameFormatRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.setupService.SelectGameFormat(ctx, sessionID, req.GameFormatID)
	if err != nil {
		h.logger.WarnContext(ctx, "select game format failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toSetupSessionDTO(view))
}

func (h *Handler) SelectFormation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectFormation")
	defer span.End()

	sessionID := pathValue(r, "sessionID")
	var req selectFormationRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.setupService.SelectFormation(ctx, sessionID, req.FormationID)
	if err != nil {
		h.logger.WarnContext(ctx, "select formation failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toSetupSessionDTO(view))
}

func (h *Handler) AddPosition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPosition")
	defer span.End()

	sessionID := pathValue(r, "sessionID")
	var req addPositionRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.setupService.AddPosition(ctx, sessionID, req.toPosition())
	if err != nil {
		h.logger.WarnContext(ctx, "add position failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, toSetupSessionDTO(view))
}

func (h *Handler) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePosition")
	defer span.End()

	sessionID := pathValue(r, "sessionID")
	positionID := pathValue(r, "positionID")
	var req updatePositionRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.setupService.UpdatePosition(ctx, sessionID, positionID, req.toUpdate())
	if err != nil {
		h.logger.WarnContext(ctx, "update position failed",
			"session_id", sessionID,
			"position_id", positionID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toSetupSessionDTO(view))
}

func (h *Handler) RemovePosition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemovePosition")
	defer span.End()

	sessionID := pathValue(r, "sessionID")
	positionID := pathValue(r, "positionID")
	view, err := h.setupService.RemovePosition(ctx, sessionID, positionID)
	if err != nil {
		h.logger.WarnContext(ctx, "remove position failed",
			"session_id", sessionID,
			"position_id", positionID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toSetupSessionDTO(view))
}

func (h *Handler) ResetSetupSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResetSetupSession")
	defer span.End()

	sessionID := pathValue(r, "sessionID")
	view, err := h.setupService.Reset(ctx, sessionID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toSetupSessionDTO(view))
}

func (h *Handler) SaveSetupSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveSetupSession")
	defer span.End()

	sessionID := pathValue(r, "sessionID")
	item, err := h.setupService.Save(ctx, sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "save setup session failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toTeamDTO(item))
}

func (h *Handler) DiscardSetupSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DiscardSetupSession")
	defer span.End()

	sessionID := pathValue(r, "sessionID")
	if err := h.setupService.Discard(ctx, sessionID); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": sessionID})
}
