// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/metrics"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// maxOutstanding bounds the failed items watched for resolution.
const maxOutstanding = 1024

// FailedItemsReporter polls the failed items of each mapping, logs every new
// one once and later logs when a reported item is gone from the server.
type FailedItemsReporter struct {
	client   adapter.SyncServerAdapter
	mappings []string
	interval time.Duration

	windows     map[string]*window
	outstanding *lru.Cache[string, models.SyncFailedItemState]

	logger *logger.Logger
}

func NewFailedItemsReporter(client adapter.SyncServerAdapter, cfg config.Workers, logger *logger.Logger) *FailedItemsReporter {
	windows := make(map[string]*window, len(cfg.Mappings))
	for _, mapping := range cfg.Mappings {
		windows[mapping] = newWindow()
	}

	// size is a positive constant, New cannot fail
	outstanding, _ := lru.New[string, models.SyncFailedItemState](maxOutstanding)

	return &FailedItemsReporter{
		client:      client,
		mappings:    cfg.Mappings,
		interval:    cfg.ReportInterval,
		windows:     windows,
		outstanding: outstanding,
		logger:      logger,
	}
}

func (r *FailedItemsReporter) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.reportOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Str("func", "*FailedItemsReporter.Run").Msg("failed items reporter stopped")
			return
		case <-ticker.C:
			r.reportOnce(ctx)
		}
	}
}

func (r *FailedItemsReporter) reportOnce(ctx context.Context) {
	for _, mapping := range r.mappings {
		if err := r.reportMapping(ctx, mapping); err != nil {
			r.logger.Err(err).
				Str("func", "*FailedItemsReporter.reportOnce").
				Str("mapping", mapping).
				Msg("error fetching failed items")
		}
	}
	r.checkResolved(ctx)
}

func (r *FailedItemsReporter) reportMapping(ctx context.Context, mapping string) error {
	w := r.windows[mapping]

	items, err := r.client.GetFailedItems(ctx, mapping, w.from)
	if err != nil {
		return err
	}

	var reported int
	for _, item := range items {
		if w.seen(item.UUID, item.Timestamp) {
			continue
		}

		r.logger.Warn().
			Str("mapping", mapping).
			Str("uuid", item.UUID).
			Int64("timestamp", item.Timestamp).
			Msg("failed sync item")

		w.advance(item.UUID, item.Timestamp)
		r.outstanding.Add(item.UUID, item)
		reported++
	}

	if reported > 0 {
		metrics.FailedItemsReported.WithLabelValues(mapping).Add(float64(reported))
	}
	return nil
}

// checkResolved drops reported items the server no longer knows about.
func (r *FailedItemsReporter) checkResolved(ctx context.Context) {
	for _, uuid := range r.outstanding.Keys() {
		_, found, err := r.client.GetFailedItem(ctx, uuid)
		if err != nil {
			r.logger.Err(err).
				Str("func", "*FailedItemsReporter.checkResolved").
				Str("uuid", uuid).
				Msg("error looking failed item up")
			return
		}
		if found {
			continue
		}

		item, _ := r.outstanding.Peek(uuid)
		r.outstanding.Remove(uuid)
		r.logger.Info().
			Str("mapping", item.Mapping.Name).
			Str("uuid", uuid).
			Msg("failed sync item resolved")
	}
}
