package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/metadata"
	"github.com/MKhiriev/go-sync-keeper/internal/mock"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/models"
)

func newTestServices(t *testing.T, registry *metadata.Registry) (*Services, *mock.MockSyncMappingRepository, *mock.MockSyncStateRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mappings := mock.NewMockSyncMappingRepository(ctrl)
	states := mock.NewMockSyncStateRepository(ctrl)

	services, err := NewServices(&store.Storages{
		SyncMappingRepository:         mappings,
		SyncStateRepository:           states,
		SyncFailedItemStateRepository: mock.NewMockSyncFailedItemStateRepository(ctrl),
		SyncDeleteStateRepository:     mock.NewMockSyncDeleteStateRepository(ctrl),
	}, registry, config.Sync{}, "v1.2.3", logger.Nop())
	require.NoError(t, err)

	return services, mappings, states
}

func TestNewServices_MissingVersion(t *testing.T) {
	_, err := NewServices(&store.Storages{}, metadata.NewRegistry(), config.Sync{}, "", logger.Nop())
	require.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestServices_NewSession_StampsRegisteredClasses(t *testing.T) {
	services, mappings, states := newTestServices(t, shopRegistry())
	mappings.EXPECT().FindByClass(gomock.Any(), "shop.Order").Return(ordersMapping, nil)
	states.EXPECT().FindByMappingID(gomock.Any(), ordersMapping.ID).Return(models.SyncState{}, store.ErrSyncStateNotFound)

	writer := &recordingWriter{}
	session := services.NewSession(writer)

	o := &order{ID: 10}
	require.NoError(t, session.Attach(o))
	o.Code = "A-1"
	require.NoError(t, session.Flush(context.Background()))

	require.Len(t, writer.commits, 1)
	assert.Contains(t, syncStatesOf(writer.last().Insertions), "orders")
	assert.NotZero(t, o.LastTimestamp)
}

func TestServices_NewSession_EmptyRegistryTracksNothing(t *testing.T) {
	services, _, _ := newTestServices(t, metadata.NewRegistry())

	writer := &recordingWriter{}
	session := services.NewSession(writer)

	o := &order{ID: 10}
	require.NoError(t, session.Attach(o))
	o.Code = "A-1"
	require.NoError(t, session.Flush(context.Background()))

	require.Len(t, writer.commits, 1)
	assert.Empty(t, writer.last().Insertions)
	assert.Zero(t, o.LastTimestamp)
}
