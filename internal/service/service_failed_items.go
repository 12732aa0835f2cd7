package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type syncFailedItemService struct {
	repository store.SyncFailedItemStateRepository
	logger     *logger.Logger
}

func NewSyncFailedItemService(repository store.SyncFailedItemStateRepository, logger *logger.Logger) SyncFailedItemService {
	return &syncFailedItemService{
		repository: repository,
		logger:     logger,
	}
}

func (s *syncFailedItemService) FindFromTimestampAndMapping(ctx context.Context, mappingName string, timestamp int64) ([]models.SyncFailedItemState, error) {
	return s.repository.FindFromTimestampAndMapping(ctx, mappingName, timestamp)
}

// FindByUUID degrades duplicate matches to "not found"; uuids are unique by
// contract, so a duplicate is a data problem the caller cannot act on.
func (s *syncFailedItemService) FindByUUID(ctx context.Context, uuid string) (models.SyncFailedItemState, bool, error) {
	log := logger.FromContextOr(ctx, s.logger)

	item, err := s.repository.FindByUUID(ctx, uuid)
	switch {
	case errors.Is(err, store.ErrSyncFailedItemNotFound):
		return models.SyncFailedItemState{}, false, nil
	case errors.Is(err, store.ErrNonUniqueResult):
		log.Warn().
			Str("func", "*syncFailedItemService.FindByUUID").
			Str("uuid", uuid).
			Msg("several failed items share one uuid, treating as not found")
		return models.SyncFailedItemState{}, false, nil
	case err != nil:
		return models.SyncFailedItemState{}, false, err
	}

	return item, true, nil
}
