package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/uow"
)

// Storages aggregates every repository and the flush writer over one
// connection pool.
type Storages struct {
	SyncMappingRepository         SyncMappingRepository
	SyncStateRepository           SyncStateRepository
	SyncFailedItemStateRepository SyncFailedItemStateRepository
	SyncDeleteStateRepository     SyncDeleteStateRepository
	Writer                        uow.Writer

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return newStorages(db, cfg.MappingCache, log), nil
}

func newStorages(db *DB, cacheCfg config.MappingCache, log *logger.Logger) *Storages {
	mappings := NewSyncMappingRepository(db, log)
	if cacheCfg.Size >= 0 {
		mappings = NewCachedSyncMappingRepository(mappings, cacheCfg.Size, cacheCfg.TTL)
	}

	return &Storages{
		SyncMappingRepository:         mappings,
		SyncStateRepository:           NewSyncStateRepository(db, log),
		SyncFailedItemStateRepository: NewSyncFailedItemStateRepository(db, log),
		SyncDeleteStateRepository:     NewSyncDeleteStateRepository(db, log),
		Writer:                        NewSyncWriter(db, log),
		db:                            db,
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
