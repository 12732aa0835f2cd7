package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

const traceIDHeader = "X-Trace-ID"

type httpSyncAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPSyncAdapter builds the REST implementation of [SyncServerAdapter].
// A scheme-less address such as "localhost:8080" is treated as http.
func NewHTTPSyncAdapter(cfg config.Adapter, logger *logger.Logger) (SyncServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpSyncAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request forwards the caller's trace id so server logs can be correlated.
func (h *httpSyncAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json")

	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}

func (h *httpSyncAdapter) GetState(ctx context.Context, mapping string) (models.SyncStateResponse, error) {
	var state models.SyncStateResponse

	resp, err := h.request(ctx).
		SetPathParam("mapping", mapping).
		SetResult(&state).
		Get("/api/sync/states/{mapping}")
	if err != nil {
		return models.SyncStateResponse{}, fmt.Errorf("get state request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncStateResponse{}, err
	}

	return state, nil
}

func (h *httpSyncAdapter) GetDeletions(ctx context.Context, mapping string, from int64) ([]models.SyncDeleteState, error) {
	var deletions models.DeletionsResponse

	resp, err := h.request(ctx).
		SetPathParam("mapping", mapping).
		SetQueryParam("from", strconv.FormatInt(from, 10)).
		SetResult(&deletions).
		Get("/api/sync/deletes/{mapping}")
	if err != nil {
		return nil, fmt.Errorf("get deletions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return deletions.Items, nil
}

func (h *httpSyncAdapter) GetFailedItems(ctx context.Context, mapping string, from int64) ([]models.SyncFailedItemState, error) {
	var items models.FailedItemsResponse

	resp, err := h.request(ctx).
		SetPathParam("mapping", mapping).
		SetQueryParam("from", strconv.FormatInt(from, 10)).
		SetResult(&items).
		Get("/api/sync/failed/{mapping}")
	if err != nil {
		return nil, fmt.Errorf("get failed items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().
		Str("func", "*httpSyncAdapter.GetFailedItems").
		Str("mapping", mapping).
		Int("length", items.Length).
		Msg("failed items fetched")

	return items.Items, nil
}

func (h *httpSyncAdapter) GetFailedItem(ctx context.Context, uuid string) (models.SyncFailedItemState, bool, error) {
	var item models.SyncFailedItemState

	resp, err := h.request(ctx).
		SetPathParam("uuid", uuid).
		SetResult(&item).
		Get("/api/sync/failed/item/{uuid}")
	if err != nil {
		return models.SyncFailedItemState{}, false, fmt.Errorf("get failed item request: %w", err)
	}

	err = mapHTTPError(resp)
	switch {
	case errors.Is(err, ErrNotFound):
		return models.SyncFailedItemState{}, false, nil
	case err != nil:
		return models.SyncFailedItemState{}, false, err
	}

	return item, true, nil
}
