package http

import (
	"net/http"

	"github.com/MKhiriev/go-sync-keeper/internal/app"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

func (h *Handler) getFailedItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	mapping, err := pathParam(r, "mapping")
	if err != nil {
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	from, err := fromTimestamp(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getFailedItems").Msg("invalid query")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	items, err := h.services.SyncFailedItemService.FindFromTimestampAndMapping(ctx, mapping, from)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getFailedItems").Str("mapping", mapping).Msg("error getting failed items")
		utils.WriteJSONError(w, app.MsgErrorGettingFailedItems, statusFromError(err))
		return
	}
	if items == nil {
		items = []models.SyncFailedItemState{}
	}

	utils.WriteJSON(w, models.FailedItemsResponse{
		Mapping: mapping,
		From:    from,
		Items:   items,
		Length:  len(items),
	}, http.StatusOK)
}

// getFailedItem answers 404 both for an unknown uuid and for a uuid shared
// by several items.
func (h *Handler) getFailedItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	uuid, err := pathParam(r, "uuid")
	if err != nil {
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	item, found, err := h.services.SyncFailedItemService.FindByUUID(ctx, uuid)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getFailedItem").Str("uuid", uuid).Msg("error getting failed item")
		utils.WriteJSONError(w, app.MsgErrorGettingFailedItem, statusFromError(err))
		return
	}
	if !found {
		utils.WriteJSONError(w, app.MsgFailedItemNotFound, http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}
