package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type syncStateService struct {
	mappings store.SyncMappingRepository
	states   store.SyncStateRepository
	deletes  store.SyncDeleteStateRepository
	logger   *logger.Logger
}

func NewSyncStateService(storages *store.Storages, logger *logger.Logger) SyncStateService {
	return &syncStateService{
		mappings: storages.SyncMappingRepository,
		states:   storages.SyncStateRepository,
		deletes:  storages.SyncDeleteStateRepository,
		logger:   logger,
	}
}

// GetState returns the sync state of mappingName. A mapping that never
// changed reports timestamp 0.
func (s *syncStateService) GetState(ctx context.Context, mappingName string) (models.SyncState, error) {
	mapping, err := s.mapping(ctx, mappingName)
	if err != nil {
		return models.SyncState{}, err
	}

	state, err := s.states.FindByMappingID(ctx, mapping.ID)
	if errors.Is(err, store.ErrSyncStateNotFound) {
		return models.SyncState{Mapping: mapping}, nil
	}
	if err != nil {
		return models.SyncState{}, err
	}

	return state, nil
}

// GetDeletions returns the ledger entries of mappingName recorded at or
// after from, oldest first.
func (s *syncStateService) GetDeletions(ctx context.Context, mappingName string, from int64) ([]models.SyncDeleteState, error) {
	if _, err := s.mapping(ctx, mappingName); err != nil {
		return nil, err
	}

	return s.deletes.FindFromTimestampAndMapping(ctx, mappingName, from)
}

func (s *syncStateService) mapping(ctx context.Context, mappingName string) (models.SyncMapping, error) {
	mapping, err := s.mappings.FindByName(ctx, mappingName)
	if errors.Is(err, store.ErrSyncMappingNotFound) {
		logger.FromContextOr(ctx, s.logger).Debug().
			Str("func", "*syncStateService.mapping").
			Str("mapping", mappingName).
			Msg("unknown mapping requested")
		return models.SyncMapping{}, fmt.Errorf("%w: %s", ErrMappingNotFound, mappingName)
	}
	return mapping, err
}
