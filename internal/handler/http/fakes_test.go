package http

import (
	"context"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// ── Service fakes ───────────────────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

type fakeSyncStateService struct {
	getState     func(ctx context.Context, mappingName string) (models.SyncState, error)
	getDeletions func(ctx context.Context, mappingName string, from int64) ([]models.SyncDeleteState, error)
}

func (f *fakeSyncStateService) GetState(ctx context.Context, mappingName string) (models.SyncState, error) {
	return f.getState(ctx, mappingName)
}

func (f *fakeSyncStateService) GetDeletions(ctx context.Context, mappingName string, from int64) ([]models.SyncDeleteState, error) {
	return f.getDeletions(ctx, mappingName, from)
}

type fakeFailedItemService struct {
	findFrom   func(ctx context.Context, mappingName string, timestamp int64) ([]models.SyncFailedItemState, error)
	findByUUID func(ctx context.Context, uuid string) (models.SyncFailedItemState, bool, error)
}

func (f *fakeFailedItemService) FindFromTimestampAndMapping(ctx context.Context, mappingName string, timestamp int64) ([]models.SyncFailedItemState, error) {
	return f.findFrom(ctx, mappingName, timestamp)
}

func (f *fakeFailedItemService) FindByUUID(ctx context.Context, uuid string) (models.SyncFailedItemState, bool, error) {
	return f.findByUUID(ctx, uuid)
}

func newTestHandler(services *service.Services) *Handler {
	if services == nil {
		services = &service.Services{}
	}
	return NewHandler(services, logger.Nop())
}
