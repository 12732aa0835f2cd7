package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type syncDeleteStateRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncDeleteStateRepository(db *DB, logger *logger.Logger) SyncDeleteStateRepository {
	logger.Debug().Msg("creating sync delete state repository")
	return &syncDeleteStateRepository{
		DB:     db,
		logger: logger,
	}
}

// FindFromTimestampAndMapping returns the ledger entries whose class belongs
// to mappingName, recorded at or after timestamp, oldest first.
func (r *syncDeleteStateRepository) FindFromTimestampAndMapping(ctx context.Context, mappingName string, timestamp int64) ([]models.SyncDeleteState, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildFindDeleteStatesFromTimestampQuery(r.builder(), mappingName, timestamp)
	if err != nil {
		log.Err(err).Str("func", "*syncDeleteStateRepository.FindFromTimestampAndMapping").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*syncDeleteStateRepository.FindFromTimestampAndMapping").
			Str("mapping", mappingName).
			Msg("failed to query delete states")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.SyncDeleteState, 0)
	for rows.Next() {
		var entry models.SyncDeleteState
		if err := rows.Scan(&entry.ID, &entry.Class, &entry.Identifier, &entry.Timestamp); err != nil {
			log.Err(err).
				Str("func", "*syncDeleteStateRepository.FindFromTimestampAndMapping").
				Msg("failed to scan delete state row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*syncDeleteStateRepository.FindFromTimestampAndMapping").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
