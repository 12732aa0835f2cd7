// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/uow"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// syncWriter is the [uow.Writer] for the bookkeeping entities staged during
// a flush. Sync states are upserted per mapping and ledger entries are
// appended, all in one transaction. Entities of any other class belong to
// the host application and are ignored.
type syncWriter struct {
	*DB
	logger *logger.Logger
}

// NewSyncWriter constructs the flush writer for sync bookkeeping.
func NewSyncWriter(db *DB, logger *logger.Logger) uow.Writer {
	return &syncWriter{
		DB:     db,
		logger: logger,
	}
}

func (w *syncWriter) Write(ctx context.Context, commit uow.CommitSet) error {
	log := logger.FromContextOr(ctx, w.logger)

	states, deletes := partitionCommit(commit)
	if len(states) == 0 && len(deletes) == 0 {
		return nil
	}

	tx, err := w.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*syncWriter.Write").Msg("failed to begin transaction")
		return w.wrap(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for idx, state := range states {
		if err := w.upsertState(ctx, tx, state); err != nil {
			log.Err(err).
				Str("func", "*syncWriter.Write").
				Int("iteration", idx+1).
				Int64("mapping_id", state.Mapping.ID).
				Msg("failed to upsert sync state")
			return err
		}
	}

	for idx, entry := range deletes {
		if err := w.insertDeleteState(ctx, tx, entry); err != nil {
			log.Err(err).
				Str("func", "*syncWriter.Write").
				Int("iteration", idx+1).
				Str("class", entry.Class).
				Str("identifier", entry.Identifier).
				Msg("failed to insert delete state")
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*syncWriter.Write").Msg("failed to commit transaction")
		return w.wrap(ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "*syncWriter.Write").
		Int("sync_states", len(states)).
		Int("delete_states", len(deletes)).
		Msg("sync bookkeeping written")

	return nil
}

func (w *syncWriter) upsertState(ctx context.Context, tx *sql.Tx, state *models.SyncState) error {
	query, args, err := buildUpsertSyncStateQuery(w.builder(), *state)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := tx.QueryRowContext(ctx, query, args...).Scan(&state.ID); err != nil {
		return w.wrap(ErrExecutingStatement, err)
	}
	return nil
}

func (w *syncWriter) insertDeleteState(ctx context.Context, tx *sql.Tx, entry *models.SyncDeleteState) error {
	query, args, err := buildInsertSyncDeleteStateQuery(w.builder(), *entry)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := tx.QueryRowContext(ctx, query, args...).Scan(&entry.ID); err != nil {
		return w.wrap(ErrExecutingStatement, err)
	}
	return nil
}

// wrap adds [ErrTransientFailure] to errors the classifier deems retryable.
func (w *syncWriter) wrap(sentinel, err error) error {
	if w.classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", sentinel, ErrTransientFailure, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

func partitionCommit(commit uow.CommitSet) ([]*models.SyncState, []*models.SyncDeleteState) {
	var (
		states  []*models.SyncState
		deletes []*models.SyncDeleteState
	)

	for _, change := range commit.Insertions {
		switch e := change.Entity.(type) {
		case *models.SyncState:
			states = append(states, e)
		case *models.SyncDeleteState:
			deletes = append(deletes, e)
		}
	}

	// ledger rows are append-only; only states are rewritten on update
	for _, change := range commit.Updates {
		if e, ok := change.Entity.(*models.SyncState); ok {
			states = append(states, e)
		}
	}

	return states, deletes
}
