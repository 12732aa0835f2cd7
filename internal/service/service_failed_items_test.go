package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/mock"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/models"
)

func TestSyncFailedItemService_FindFromTimestampAndMapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	repository := mock.NewMockSyncFailedItemStateRepository(ctrl)
	service := NewSyncFailedItemService(repository, logger.Nop())

	items := []models.SyncFailedItemState{
		{ID: 1, UUID: "a", Mapping: ordersMapping, Timestamp: 100},
		{ID: 2, UUID: "b", Mapping: ordersMapping, Timestamp: 150},
	}

	t.Run("items are passed through in order", func(t *testing.T) {
		repository.EXPECT().FindFromTimestampAndMapping(gomock.Any(), "orders", int64(100)).Return(items, nil)

		got, err := service.FindFromTimestampAndMapping(context.Background(), "orders", 100)
		require.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("no match", func(t *testing.T) {
		repository.EXPECT().FindFromTimestampAndMapping(gomock.Any(), "orders", int64(300)).Return([]models.SyncFailedItemState{}, nil)

		got, err := service.FindFromTimestampAndMapping(context.Background(), "orders", 300)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("storage error", func(t *testing.T) {
		repository.EXPECT().FindFromTimestampAndMapping(gomock.Any(), "orders", int64(0)).Return(nil, errStorageDown)

		_, err := service.FindFromTimestampAndMapping(context.Background(), "orders", 0)
		require.ErrorIs(t, err, errStorageDown)
	})
}

func TestSyncFailedItemService_FindByUUID(t *testing.T) {
	item := models.SyncFailedItemState{ID: 1, UUID: "u-1", Mapping: ordersMapping, Timestamp: 100}

	tests := []struct {
		name      string
		repoItem  models.SyncFailedItemState
		repoErr   error
		want      models.SyncFailedItemState
		wantFound bool
		wantErr   error
	}{
		{name: "found", repoItem: item, want: item, wantFound: true},
		{name: "not found", repoErr: store.ErrSyncFailedItemNotFound},
		{name: "duplicate uuid is reported as absent", repoErr: store.ErrNonUniqueResult},
		{name: "storage error", repoErr: errStorageDown, wantErr: errStorageDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repository := mock.NewMockSyncFailedItemStateRepository(ctrl)
			repository.EXPECT().FindByUUID(gomock.Any(), "u-1").Return(tt.repoItem, tt.repoErr)

			got, found, err := NewSyncFailedItemService(repository, logger.Nop()).FindByUUID(context.Background(), "u-1")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSyncFailedItemService_FindByUUID_DuplicateWarnsOnServiceLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	repository := mock.NewMockSyncFailedItemStateRepository(ctrl)
	repository.EXPECT().FindByUUID(gomock.Any(), "u-1").Return(models.SyncFailedItemState{}, store.ErrNonUniqueResult)

	var buf bytes.Buffer
	service := NewSyncFailedItemService(repository, logger.NewLoggerTo("sync-server", &buf))

	_, found, err := service.FindByUUID(context.Background(), "u-1")
	require.NoError(t, err)
	assert.False(t, found)

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"uuid":"u-1"`)
}
