package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

// DeletionsReporter logs the deletion ledger of each mapping as it grows.
// The ledger is only read once the mapping's sync state moved into the
// current window, since every recorded deletion also stamps that state.
type DeletionsReporter struct {
	client   adapter.SyncServerAdapter
	mappings []string
	interval time.Duration

	windows map[string]*window

	logger *logger.Logger
}

func NewDeletionsReporter(client adapter.SyncServerAdapter, cfg config.Workers, logger *logger.Logger) *DeletionsReporter {
	windows := make(map[string]*window, len(cfg.Mappings))
	for _, mapping := range cfg.Mappings {
		windows[mapping] = newWindow()
	}

	return &DeletionsReporter{
		client:   client,
		mappings: cfg.Mappings,
		interval: cfg.ReportInterval,
		windows:  windows,
		logger:   logger,
	}
}

func (r *DeletionsReporter) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.reportOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Str("func", "*DeletionsReporter.Run").Msg("deletions reporter stopped")
			return
		case <-ticker.C:
			r.reportOnce(ctx)
		}
	}
}

func (r *DeletionsReporter) reportOnce(ctx context.Context) {
	for _, mapping := range r.mappings {
		if err := r.reportMapping(ctx, mapping); err != nil {
			r.logger.Err(err).
				Str("func", "*DeletionsReporter.reportOnce").
				Str("mapping", mapping).
				Msg("error fetching deletions")
		}
	}
}

func (r *DeletionsReporter) reportMapping(ctx context.Context, mapping string) error {
	w := r.windows[mapping]

	state, err := r.client.GetState(ctx, mapping)
	if err != nil {
		return err
	}
	if state.Timestamp == 0 || state.Timestamp < w.from {
		return nil
	}

	deletions, err := r.client.GetDeletions(ctx, mapping, w.from)
	if err != nil {
		return err
	}

	for _, deletion := range deletions {
		if w.seen(deletion.Identifier, deletion.Timestamp) {
			continue
		}

		r.logger.Info().
			Str("mapping", mapping).
			Str("class", deletion.Class).
			Str("identifier", deletion.Identifier).
			Int64("timestamp", deletion.Timestamp).
			Msg("entity deleted")

		w.advance(deletion.Identifier, deletion.Timestamp)
	}
	return nil
}
