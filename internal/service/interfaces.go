package service

import (
	"context"

	"github.com/MKhiriev/go-sync-keeper/internal/metadata"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// SyncFailedItemService answers the read-side queries of the retry and
// reporting process.
type SyncFailedItemService interface {
	// FindFromTimestampAndMapping returns the failed items of mappingName at
	// or after timestamp, oldest first. No match is an empty slice.
	FindFromTimestampAndMapping(ctx context.Context, mappingName string, timestamp int64) ([]models.SyncFailedItemState, error)

	// FindByUUID reports found=false both when no item and when more than one
	// item carries uuid.
	FindByUUID(ctx context.Context, uuid string) (item models.SyncFailedItemState, found bool, err error)
}

// SyncStateService exposes the bookkeeping written during flushes to
// downstream consumers.
type SyncStateService interface {
	GetState(ctx context.Context, mappingName string) (models.SyncState, error)
	GetDeletions(ctx context.Context, mappingName string, from int64) ([]models.SyncDeleteState, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// MetadataResolver is the part of [metadata.Registry] the propagator reads.
type MetadataResolver interface {
	IsSyncEnabled(class string) bool
	ParentRelationsOf(class string) []metadata.Relation
}

// AccessorResolver is the part of [metadata.Registry] the deletion recorder
// reads.
type AccessorResolver interface {
	Accessor(class string, entity any, name string) (metadata.Accessor, error)
}

// LastTimestampSetter is implemented by entities that keep their own copy of
// the last sync timestamp.
type LastTimestampSetter interface {
	SetLastTimestamp(timestamp int64)
}
