// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/metadata"
	"github.com/MKhiriev/go-sync-keeper/internal/metrics"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/uow"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// SyncStatePropagator stamps changed sync-enabled objects, their mapping's
// sync state and, through declared parent relations, their ancestors.
//
// The propagator itself holds no per-flush state; every flush works on its
// own [PropagationBatch].
type SyncStatePropagator struct {
	resolver MetadataResolver
	filter   *ChangeFilter
	mappings store.SyncMappingRepository
	states   store.SyncStateRepository

	now func() time.Time
}

func NewSyncStatePropagator(
	resolver MetadataResolver,
	filter *ChangeFilter,
	mappings store.SyncMappingRepository,
	states store.SyncStateRepository,
) *SyncStatePropagator {
	return &SyncStatePropagator{
		resolver: resolver,
		filter:   filter,
		mappings: mappings,
		states:   states,
		now:      time.Now,
	}
}

// NewBatch starts the propagation of one flush of unit.
func (p *SyncStatePropagator) NewBatch(unit uow.UnitOfWork) *PropagationBatch {
	return &PropagationBatch{
		propagator: p,
		unit:       unit,
		states:     make(map[int64]*models.SyncState),
	}
}

// PropagationBatch is the propagation scope of a single flush. It keeps the
// sync states touched so far, so every mapping gets at most one state per
// commit. A batch is not safe for concurrent use.
type PropagationBatch struct {
	propagator *SyncStatePropagator
	unit       uow.UnitOfWork
	states     map[int64]*models.SyncState
}

type visitKey struct {
	class    string
	identity any
}

// ProcessEntity stamps entity when it is being deleted or its own change set
// is significant, and its class is sync-enabled, then cascades to its parents. Parents are stamped
// as changed regardless of their own change sets, and never as deleted.
// Each object is visited at most once per call, so cyclic parent graphs
// terminate.
func (b *PropagationBatch) ProcessEntity(ctx context.Context, entity any, deleting bool) error {
	return b.process(ctx, entity, deleting, true, make(map[visitKey]struct{}))
}

func (b *PropagationBatch) process(ctx context.Context, entity any, deleting, topLevel bool, visited map[visitKey]struct{}) error {
	if !metadata.IsEntity(entity) {
		return nil
	}

	object := b.unit.Resolve(entity)
	if !metadata.IsEntity(object) {
		return nil
	}

	class := b.unit.RealClassOf(object)
	key := visitKey{class: class, identity: object}
	if _, seen := visited[key]; seen {
		return nil
	}
	visited[key] = struct{}{}

	// a removal always counts as a change; cascade steps carry no change set
	if topLevel && !deleting && !b.propagator.filter.HasSignificantChange(class, b.unit.ChangeSet(object)) {
		metrics.ChangesSkipped.WithLabelValues(class).Inc()
		return nil
	}

	resolver := b.propagator.resolver
	if !resolver.IsSyncEnabled(class) {
		return nil
	}

	timestamp := b.propagator.now().Unix()

	if err := b.stampSyncState(ctx, class, timestamp); err != nil {
		return err
	}

	if setter, ok := object.(LastTimestampSetter); ok && !deleting {
		setter.SetLastTimestamp(timestamp)
		if b.unit.State(object) == uow.StateManaged {
			if err := b.unit.RecomputeChangeSet(object); err != nil {
				return fmt.Errorf("%w: %s: %w", ErrRecomputingChangeSet, class, err)
			}
		}
	}

	for _, relation := range resolver.ParentRelationsOf(class) {
		if !relation.IsParent() {
			continue
		}

		parent, err := relation.Parent(object)
		if err != nil {
			return fmt.Errorf("%w: %s.%s: %w", ErrParentAccessor, class, relation.Property, err)
		}
		if parent == nil {
			continue
		}

		parentClass := b.unit.RealClassOf(parent)
		if !resolver.IsSyncEnabled(parentClass) {
			continue
		}

		metrics.CascadeSteps.WithLabelValues(parentClass).Inc()
		if err := b.process(ctx, parent, false, false, visited); err != nil {
			return err
		}
	}

	return nil
}

// stampSyncState sets timestamp on the sync state of class's mapping and
// stages it into the current commit. A class without a mapping is skipped.
func (b *PropagationBatch) stampSyncState(ctx context.Context, class string, timestamp int64) error {
	log := logger.FromContext(ctx)

	mapping, err := b.propagator.mappings.FindByClass(ctx, class)
	if errors.Is(err, store.ErrSyncMappingNotFound) {
		log.Debug().Str("func", "*PropagationBatch.stampSyncState").Str("class", class).Msg("no sync mapping for class")
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrStampingSyncState, class, err)
	}

	state, err := b.syncStateOf(ctx, mapping)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrStampingSyncState, class, err)
	}

	state.Timestamp = timestamp
	if b.unit.State(state) == uow.StateManaged {
		if err := b.unit.RecomputeChangeSet(state); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrRecomputingChangeSet, models.SyncStateClass, err)
		}
	}

	metrics.StatesStamped.WithLabelValues(mapping.Name).Inc()
	log.Debug().
		Str("func", "*PropagationBatch.stampSyncState").
		Str("mapping", mapping.Name).
		Int64("timestamp", timestamp).
		Msg("sync state stamped")

	return nil
}

// syncStateOf returns the batch's state of mapping, loading it or creating
// it on first use. The state is persisted into the unit of work either way;
// the writer upserts by mapping.
func (b *PropagationBatch) syncStateOf(ctx context.Context, mapping models.SyncMapping) (*models.SyncState, error) {
	if state, ok := b.states[mapping.ID]; ok {
		return state, nil
	}

	loaded, err := b.propagator.states.FindByMappingID(ctx, mapping.ID)
	switch {
	case errors.Is(err, store.ErrSyncStateNotFound):
		loaded = models.SyncState{Mapping: mapping}
	case err != nil:
		return nil, err
	}

	state := &loaded
	b.unit.Persist(state)
	b.states[mapping.ID] = state

	return state, nil
}
