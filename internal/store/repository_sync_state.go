package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// syncStateRepository reads the "sync_states" table joined with its mapping.
type syncStateRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncStateRepository(db *DB, logger *logger.Logger) SyncStateRepository {
	logger.Debug().Msg("creating sync state repository")
	return &syncStateRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *syncStateRepository) FindByMappingID(ctx context.Context, mappingID int64) (models.SyncState, error) {
	return r.findBy(ctx, "*syncStateRepository.FindByMappingID", sq.Eq{"s.mapping_id": mappingID})
}

func (r *syncStateRepository) FindByMappingName(ctx context.Context, mappingName string) (models.SyncState, error) {
	return r.findBy(ctx, "*syncStateRepository.FindByMappingName", sq.Eq{"m.name": mappingName})
}

func (r *syncStateRepository) findBy(ctx context.Context, funcName string, where sq.Eq) (models.SyncState, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildFindSyncStateQuery(r.builder(), where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.SyncState{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var state models.SyncState
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&state.ID,
		&state.Timestamp,
		&state.Mapping.ID,
		&state.Mapping.Name,
		&state.Mapping.Class,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		log.Debug().Str("func", funcName).Any("filter", where).Msg("sync state not found")
		return models.SyncState{}, ErrSyncStateNotFound
	case err != nil:
		log.Err(err).Str("func", funcName).Any("filter", where).Msg("failed to query sync state")
		return models.SyncState{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return state, nil
}
