package store

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/uow"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type hostEntity struct{ ID int64 }

func TestSyncWriter_Write(t *testing.T) {
	ctx := context.Background()
	upsert := regexp.QuoteMeta("INSERT INTO sync_states (mapping_id,timestamp) VALUES ($1,$2) ON CONFLICT (mapping_id)")
	insertDelete := regexp.QuoteMeta("INSERT INTO sync_delete_states (class,identifier,timestamp) VALUES ($1,$2,$3) RETURNING id")

	t.Run("writes states and ledger in one transaction", func(t *testing.T) {
		db, mock := newTestDB(t)
		w := NewSyncWriter(db, logger.Nop())

		fresh := &models.SyncState{Mapping: models.SyncMapping{ID: 1}, Timestamp: 100}
		existing := &models.SyncState{ID: 9, Mapping: models.SyncMapping{ID: 2}, Timestamp: 100}
		entry := &models.SyncDeleteState{Class: "shop.Line", Identifier: "7", Timestamp: 100}

		mock.ExpectBegin()
		mock.ExpectQuery(upsert).WithArgs(int64(1), int64(100)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
		mock.ExpectQuery(upsert).WithArgs(int64(2), int64(100)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
		mock.ExpectQuery(insertDelete).WithArgs("shop.Line", "7", int64(100)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectCommit()

		err := w.Write(ctx, uow.CommitSet{
			Insertions: []uow.Change{
				{Entity: fresh, Class: models.SyncStateClass},
				{Entity: &hostEntity{ID: 1}, Class: "store.hostEntity"},
				{Entity: entry, Class: models.SyncDeleteStateClass},
			},
			Updates: []uow.Change{
				{Entity: existing, Class: models.SyncStateClass, Properties: []string{"Timestamp"}},
			},
			Deletions: []uow.Change{
				{Entity: &hostEntity{ID: 2}, Class: "store.hostEntity"},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, int64(4), fresh.ID, "generated id is written back")
		assert.Equal(t, int64(11), entry.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing to write opens no transaction", func(t *testing.T) {
		db, mock := newTestDB(t)
		w := NewSyncWriter(db, logger.Nop())

		err := w.Write(ctx, uow.CommitSet{
			Updates: []uow.Change{{Entity: &hostEntity{}, Class: "store.hostEntity"}},
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("updated ledger rows are not inserted again", func(t *testing.T) {
		db, mock := newTestDB(t)
		w := NewSyncWriter(db, logger.Nop())

		err := w.Write(ctx, uow.CommitSet{
			Updates: []uow.Change{{Entity: &models.SyncDeleteState{ID: 3}, Class: models.SyncDeleteStateClass}},
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("statement failure rolls back", func(t *testing.T) {
		db, mock := newTestDB(t)
		w := NewSyncWriter(db, logger.Nop())

		mock.ExpectBegin()
		mock.ExpectQuery(upsert).WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
		mock.ExpectRollback()

		err := w.Write(ctx, uow.CommitSet{
			Insertions: []uow.Change{{Entity: &models.SyncState{Mapping: models.SyncMapping{ID: 404}}}},
		})
		require.ErrorIs(t, err, ErrExecutingStatement)
		assert.False(t, errors.Is(err, ErrTransientFailure))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("retryable failure is marked transient", func(t *testing.T) {
		db, mock := newTestDB(t)
		w := NewSyncWriter(db, logger.Nop())

		mock.ExpectBegin()
		mock.ExpectQuery(insertDelete).WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
		mock.ExpectRollback()

		err := w.Write(ctx, uow.CommitSet{
			Insertions: []uow.Change{{Entity: &models.SyncDeleteState{Class: "shop.Line", Identifier: "1"}}},
		})
		require.ErrorIs(t, err, ErrExecutingStatement)
		require.ErrorIs(t, err, ErrTransientFailure)
	})

	t.Run("begin failure", func(t *testing.T) {
		db, mock := newTestDB(t)
		w := NewSyncWriter(db, logger.Nop())

		mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		err := w.Write(ctx, uow.CommitSet{
			Insertions: []uow.Change{{Entity: &models.SyncState{}}},
		})
		require.ErrorIs(t, err, ErrBeginningTransaction)
	})

	t.Run("commit failure", func(t *testing.T) {
		db, mock := newTestDB(t)
		w := NewSyncWriter(db, logger.Nop())

		mock.ExpectBegin()
		mock.ExpectQuery(upsert).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit().WillReturnError(errors.New("connection lost"))

		err := w.Write(ctx, uow.CommitSet{
			Insertions: []uow.Change{{Entity: &models.SyncState{}}},
		})
		require.ErrorIs(t, err, ErrCommitingTransaction)
	})
}

func TestSyncWriter_Write_LogsToOwnLoggerWithoutRequestLogger(t *testing.T) {
	db, mock := newTestDB(t)
	var buf bytes.Buffer
	w := NewSyncWriter(db, logger.NewLoggerTo("sync-server", &buf))

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	err := w.Write(context.Background(), uow.CommitSet{
		Insertions: []uow.Change{{Entity: &models.SyncState{}}},
	})
	require.ErrorIs(t, err, ErrBeginningTransaction)

	assert.Contains(t, buf.String(), "failed to begin transaction")
}
