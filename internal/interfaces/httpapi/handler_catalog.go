package httpapi

import (
	"net/http"
)

func (h *Handler) ListGameFormats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGameFormats")
	defer span.End()

	items, err := h.catalogService.ListGameFormats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list game formats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]gameFormatDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toGameFormatDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListFormationsByGameFormat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFormationsByGameFormat")
	defer span.End()

	formatID := pathValue(r, "formatID")
	items, err := h.catalogService.ListFormations(ctx, formatID)
	if err != nil {
		h.logger.WarnContext(ctx, "list formations failed", "game_format_id", formatID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toFormationDTOs(items))
}

func (h *Handler) GetFormation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFormation")
	defer span.End()

	formationID := pathValue(r, "formationID")
	item, err := h.catalogService.GetFormation(ctx, formationID)
	if err != nil {
		h.logger.WarnContext(ctx, "get formation failed", "formation_id", formationID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toFormationDTO(item))
}
