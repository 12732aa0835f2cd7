package service

import (
	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/metadata"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/uow"
)

type Services struct {
	SyncFailedItemService SyncFailedItemService
	SyncStateService      SyncStateService
	AppInfoService        AppInfoService

	// Subscriber is registered as a flush listener on every unit of work
	// whose changes must be tracked. It only sees the classes described in
	// the registry given to [NewServices]; a host embedding the core
	// registers a [metadata.TypeDescriptor] per entity type and opens its
	// units of work through [Services.NewSession], or adds Subscriber to its
	// own [uow.UnitOfWork] implementation with storages.Writer as the writer.
	Subscriber *SyncSubscriber
}

// NewSession opens a unit of work that runs Subscriber on every flush and
// commits through writer, normally [store.Storages.Writer].
func (s *Services) NewSession(writer uow.Writer) *uow.Session {
	return uow.NewSession(writer, s.Subscriber)
}

func NewServices(storages *store.Storages, registry *metadata.Registry, cfg config.Sync, version string, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(version, logger)
	if err != nil {
		return nil, err
	}

	propagator := NewSyncStatePropagator(
		registry,
		NewChangeFilter(cfg.LastTimestamp.IgnoreProperties.Rules),
		storages.SyncMappingRepository,
		storages.SyncStateRepository,
	)

	return &Services{
		SyncFailedItemService: NewSyncFailedItemService(storages.SyncFailedItemStateRepository, logger),
		SyncStateService:      NewSyncStateService(storages, logger),
		AppInfoService:        appInfo,
		Subscriber:            NewSyncSubscriber(propagator, NewDeletionRecorder(registry, cfg.Deletes)),
	}, nil
}
