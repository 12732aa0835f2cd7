package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// syncFailedItemStateRepository reads "sync_failed_item_states". Rows are
// written by the external failure-reporting path.
type syncFailedItemStateRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncFailedItemStateRepository(db *DB, logger *logger.Logger) SyncFailedItemStateRepository {
	logger.Debug().Msg("creating sync failed item state repository")
	return &syncFailedItemStateRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *syncFailedItemStateRepository) FindFromTimestampAndMapping(ctx context.Context, mappingName string, timestamp int64) ([]models.SyncFailedItemState, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildFindFailedItemsFromTimestampQuery(r.builder(), mappingName, timestamp)
	if err != nil {
		log.Err(err).Str("func", "*syncFailedItemStateRepository.FindFromTimestampAndMapping").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	items, err := r.query(ctx, query, args)
	if err != nil {
		log.Err(err).
			Str("func", "*syncFailedItemStateRepository.FindFromTimestampAndMapping").
			Str("mapping", mappingName).
			Int64("timestamp", timestamp).
			Msg("failed to query failed items")
		return nil, err
	}

	return items, nil
}

func (r *syncFailedItemStateRepository) FindByUUID(ctx context.Context, uuid string) (models.SyncFailedItemState, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildFindFailedItemByUUIDQuery(r.builder(), uuid)
	if err != nil {
		log.Err(err).Str("func", "*syncFailedItemStateRepository.FindByUUID").Msg("failed to build query")
		return models.SyncFailedItemState{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	items, err := r.query(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "*syncFailedItemStateRepository.FindByUUID").Str("uuid", uuid).Msg("failed to query failed item")
		return models.SyncFailedItemState{}, err
	}

	switch len(items) {
	case 0:
		return models.SyncFailedItemState{}, ErrSyncFailedItemNotFound
	case 1:
		return items[0], nil
	default:
		return models.SyncFailedItemState{}, fmt.Errorf("%w: uuid=%s", ErrNonUniqueResult, uuid)
	}
}

func (r *syncFailedItemStateRepository) query(ctx context.Context, query string, args []any) ([]models.SyncFailedItemState, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.SyncFailedItemState, 0)
	for rows.Next() {
		var item models.SyncFailedItemState
		if err := rows.Scan(
			&item.ID,
			&item.UUID,
			&item.Timestamp,
			&item.Mapping.ID,
			&item.Mapping.Name,
			&item.Mapping.Class,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}
