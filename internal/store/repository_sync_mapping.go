package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// syncMappingRepository is the SQL-backed implementation of
// [SyncMappingRepository] over the "sync_mappings" table.
type syncMappingRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncMappingRepository constructs a [SyncMappingRepository] backed by db.
func NewSyncMappingRepository(db *DB, logger *logger.Logger) SyncMappingRepository {
	logger.Debug().Msg("creating sync mapping repository")
	return &syncMappingRepository{
		DB:     db,
		logger: logger,
	}
}

// FindByClass returns the mapping whose class matches the real class name.
func (r *syncMappingRepository) FindByClass(ctx context.Context, class string) (models.SyncMapping, error) {
	return r.findBy(ctx, "*syncMappingRepository.FindByClass", "class", class)
}

// FindByName returns the mapping with the given name.
func (r *syncMappingRepository) FindByName(ctx context.Context, name string) (models.SyncMapping, error) {
	return r.findBy(ctx, "*syncMappingRepository.FindByName", "name", name)
}

func (r *syncMappingRepository) findBy(ctx context.Context, funcName, column, value string) (models.SyncMapping, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildFindSyncMappingQuery(r.builder(), column, value)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.SyncMapping{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var mapping models.SyncMapping
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&mapping.ID, &mapping.Name, &mapping.Class)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		log.Debug().Str("func", funcName).Str(column, value).Msg("sync mapping not found")
		return models.SyncMapping{}, fmt.Errorf("%w: %s=%s", ErrSyncMappingNotFound, column, value)
	case err != nil:
		log.Err(err).Str("func", funcName).Str(column, value).Msg("failed to query sync mapping")
		return models.SyncMapping{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return mapping, nil
}
