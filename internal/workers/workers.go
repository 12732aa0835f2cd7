package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the reporter workers of every configured mapping.
func NewWorkers(client adapter.SyncServerAdapter, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		NewFailedItemsReporter(client, cfg, logger),
		NewDeletionsReporter(client, cfg, logger),
	}}
}

// Run starts every worker in its own goroutine and returns once all of them
// have stopped.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
