package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/metadata"
	"github.com/MKhiriev/go-sync-keeper/internal/metrics"
	"github.com/MKhiriev/go-sync-keeper/internal/uow"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// SyncSubscriber is the [uow.Listener] that drives propagation and deletion
// bookkeeping for every flush.
type SyncSubscriber struct {
	propagator *SyncStatePropagator
	recorder   *DeletionRecorder

	now func() time.Time
}

func NewSyncSubscriber(propagator *SyncStatePropagator, recorder *DeletionRecorder) *SyncSubscriber {
	return &SyncSubscriber{
		propagator: propagator,
		recorder:   recorder,
		now:        time.Now,
	}
}

// OnFlush implements [uow.Listener]. Any error aborts the flush.
func (s *SyncSubscriber) OnFlush(ctx context.Context, event uow.FlushEvent) error {
	log := logger.FromContext(ctx)

	ledger, err := s.handle(ctx, event)
	if err != nil {
		metrics.FlushesProcessed.WithLabelValues(metrics.OutcomeError).Inc()
		log.Err(err).Str("func", "*SyncSubscriber.OnFlush").Msg("sync bookkeeping failed, aborting flush")
		return err
	}

	if err := s.stageLedger(event.UnitOfWork, ledger); err != nil {
		metrics.FlushesProcessed.WithLabelValues(metrics.OutcomeError).Inc()
		log.Err(err).Str("func", "*SyncSubscriber.OnFlush").Msg("failed to stage deletion ledger")
		return err
	}

	metrics.FlushesProcessed.WithLabelValues(metrics.OutcomeOK).Inc()
	log.Debug().
		Str("func", "*SyncSubscriber.OnFlush").
		Int("updates", len(event.Updates)).
		Int("insertions", len(event.Insertions)).
		Int("deletions", len(event.Deletions)).
		Int("ledger_entries", ledger.Len()).
		Msg("flush processed")

	return nil
}

func (s *SyncSubscriber) handle(ctx context.Context, event uow.FlushEvent) (*DeletionLedger, error) {
	batch := s.propagator.NewBatch(event.UnitOfWork)
	ledger := &DeletionLedger{}

	for _, bucket := range [][]any{event.Updates, event.Insertions} {
		for _, entity := range bucket {
			if err := batch.ProcessEntity(ctx, entity, false); err != nil {
				return nil, err
			}
		}
	}

	for _, entity := range event.Deletions {
		if err := s.processDeletion(ctx, event.UnitOfWork, batch, ledger, entity); err != nil {
			return nil, err
		}
	}

	for _, collection := range event.CollectionUpdates {
		for _, member := range collection.Members() {
			if err := batch.ProcessEntity(ctx, member, false); err != nil {
				return nil, err
			}
		}
	}

	for _, collection := range event.CollectionDeletions {
		for _, member := range collection.Members() {
			if !metadata.IsEntity(member) {
				continue
			}
			if err := s.processDeletion(ctx, event.UnitOfWork, batch, ledger, member); err != nil {
				return nil, err
			}
		}
	}

	return ledger, nil
}

func (s *SyncSubscriber) processDeletion(ctx context.Context, unit uow.UnitOfWork, batch *PropagationBatch, ledger *DeletionLedger, entity any) error {
	if err := batch.ProcessEntity(ctx, entity, true); err != nil {
		return err
	}
	return s.recorder.Record(ctx, unit, ledger, entity)
}

// stageLedger persists the ledger entries into the commit being flushed.
func (s *SyncSubscriber) stageLedger(unit uow.UnitOfWork, ledger *DeletionLedger) error {
	if ledger.Len() == 0 {
		return nil
	}

	timestamp := s.now().Unix()
	for _, entry := range ledger.Entries() {
		state := &models.SyncDeleteState{
			Class:      entry.Class,
			Identifier: entry.Identifier,
			Timestamp:  timestamp,
		}

		unit.Persist(state)
		if unit.State(state) == uow.StateManaged {
			if err := unit.RecomputeChangeSet(state); err != nil {
				return fmt.Errorf("%w: %w", ErrStagingDeletionLedger, err)
			}
		}
	}

	return nil
}
