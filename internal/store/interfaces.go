package store

import (
	"context"

	"github.com/MKhiriev/go-sync-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SyncMappingRepository reads the externally administered mapping table.
type SyncMappingRepository interface {
	FindByClass(ctx context.Context, class string) (models.SyncMapping, error)
	FindByName(ctx context.Context, name string) (models.SyncMapping, error)
}

// SyncStateRepository reads the per-mapping sync states. Writes go through
// the flush writer.
type SyncStateRepository interface {
	FindByMappingID(ctx context.Context, mappingID int64) (models.SyncState, error)
	FindByMappingName(ctx context.Context, mappingName string) (models.SyncState, error)
}

// SyncFailedItemStateRepository reads failed synchronization records.
type SyncFailedItemStateRepository interface {
	// FindFromTimestampAndMapping returns the items of mappingName whose
	// timestamp is at or after timestamp, oldest first.
	FindFromTimestampAndMapping(ctx context.Context, mappingName string, timestamp int64) ([]models.SyncFailedItemState, error)

	// FindByUUID returns [ErrSyncFailedItemNotFound] for no match and
	// [ErrNonUniqueResult] for more than one.
	FindByUUID(ctx context.Context, uuid string) (models.SyncFailedItemState, error)
}

// SyncDeleteStateRepository reads the persisted deletion ledger.
type SyncDeleteStateRepository interface {
	FindFromTimestampAndMapping(ctx context.Context, mappingName string, timestamp int64) ([]models.SyncDeleteState, error)
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
