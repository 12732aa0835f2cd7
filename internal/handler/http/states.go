package http

import (
	"net/http"

	"github.com/MKhiriev/go-sync-keeper/internal/app"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

func (h *Handler) getSyncState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	mapping, err := pathParam(r, "mapping")
	if err != nil {
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	state, err := h.services.SyncStateService.GetState(ctx, mapping)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSyncState").Str("mapping", mapping).Msg("error getting sync state")
		utils.WriteJSONError(w, app.MsgErrorGettingSyncState, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.SyncStateResponse{
		Mapping:   state.Mapping.Name,
		Timestamp: state.Timestamp,
	}, http.StatusOK)
}

func (h *Handler) getDeletions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	mapping, err := pathParam(r, "mapping")
	if err != nil {
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	from, err := fromTimestamp(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getDeletions").Msg("invalid query")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	deletions, err := h.services.SyncStateService.GetDeletions(ctx, mapping, from)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getDeletions").Str("mapping", mapping).Msg("error getting deletions")
		utils.WriteJSONError(w, app.MsgErrorGettingDeletions, statusFromError(err))
		return
	}
	if deletions == nil {
		deletions = []models.SyncDeleteState{}
	}

	utils.WriteJSON(w, models.DeletionsResponse{
		Mapping: mapping,
		From:    from,
		Items:   deletions,
		Length:  len(deletions),
	}, http.StatusOK)
}
